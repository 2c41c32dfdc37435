package fbdev

import "github.com/openrescue/display/pixel"

// inferFormat derives the stored pixel format from the mode's bit
// depth and red-channel placement.
//
// Channel metadata reported by embedded display controllers is
// frequently wrong: some report XBGR yet scan out correct colors when
// written RGBX. Beyond the 16-bit case this therefore trusts only the
// red offset and falls back by red length. The precedence encodes
// known device quirks; keep it as is.
func inferFormat(vi *VarScreenInfo) pixel.Format {
	switch {
	case vi.BitsPerPixel == 16:
		return pixel.RGB565
	case vi.Red.Offset == 8:
		return pixel.BGRA8888
	case vi.Red.Offset == 0:
		return pixel.RGBA8888
	case vi.Red.Offset == 24:
		return pixel.RGBX8888
	case vi.Red.Length == 8:
		return pixel.RGBX8888
	default:
		return pixel.RGB565
	}
}

// forceRGB565 overwrites the reported channel layout with a fixed
// 5-6-5 layout. Compatibility escape hatch for devices whose reported
// mode cannot be used at all.
func forceRGB565(vi *VarScreenInfo, fix *FixScreenInfo) {
	vi.Blue = BitField{Offset: 0, Length: 5}
	vi.Green = BitField{Offset: 5, Length: 6}
	vi.Red = BitField{Offset: 11, Length: 5}
	vi.Transp = BitField{}
	vi.BitsPerPixel = 16
	vi.XresVirtual = fix.LineLength / 2
}

// fitsTwoFrames reports whether the mapped extent can hold two full
// frames, the condition for double-buffered presentation.
func fitsTwoFrames(vi *VarScreenInfo, fix *FixScreenInfo) bool {
	return vi.Yres*fix.LineLength*2 <= fix.SmemLen
}
