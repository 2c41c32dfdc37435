package fbdev

import (
	"testing"

	"github.com/openrescue/display/pixel"
)

func TestInferFormat(t *testing.T) {
	tests := []struct {
		name      string
		bpp       uint32
		redOffset uint32
		redLength uint32
		want      pixel.Format
	}{
		{"16 bpp is 565", 16, 11, 5, pixel.RGB565},
		{"16 bpp wins over red offset", 16, 8, 8, pixel.RGB565},
		{"red at 8 is BGRA", 32, 8, 8, pixel.BGRA8888},
		{"red at 0 is RGBA", 32, 0, 8, pixel.RGBA8888},
		{"red at 24 is RGBX", 32, 24, 8, pixel.RGBX8888},
		{"odd offset with 8-bit red falls back to RGBX", 32, 16, 8, pixel.RGBX8888},
		{"odd offset with narrow red falls back to 565", 32, 16, 5, pixel.RGB565},
		{"24 bpp with odd offset and narrow red falls back to 565", 24, 4, 6, pixel.RGB565},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vi := &VarScreenInfo{
				BitsPerPixel: tt.bpp,
				Red:          BitField{Offset: tt.redOffset, Length: tt.redLength},
			}
			if got := inferFormat(vi); got != tt.want {
				t.Errorf("inferFormat(bpp=%d, red.offset=%d, red.length=%d) = %s, expected %s",
					tt.bpp, tt.redOffset, tt.redLength, got, tt.want)
			}
		})
	}
}

func TestForceRGB565(t *testing.T) {
	vi := &VarScreenInfo{
		BitsPerPixel: 32,
		Red:          BitField{Offset: 16, Length: 8, MsbRight: 1},
		Transp:       BitField{Offset: 24, Length: 8},
	}
	fix := &FixScreenInfo{LineLength: 1440}

	forceRGB565(vi, fix)

	if vi.BitsPerPixel != 16 {
		t.Errorf("bits per pixel = %d, expected 16", vi.BitsPerPixel)
	}
	if vi.Red != (BitField{Offset: 11, Length: 5}) {
		t.Errorf("red channel = %+v, expected offset 11 length 5", vi.Red)
	}
	if vi.Green != (BitField{Offset: 5, Length: 6}) {
		t.Errorf("green channel = %+v, expected offset 5 length 6", vi.Green)
	}
	if vi.Blue != (BitField{Offset: 0, Length: 5}) {
		t.Errorf("blue channel = %+v, expected offset 0 length 5", vi.Blue)
	}
	if vi.Transp != (BitField{}) {
		t.Errorf("transparency channel = %+v, expected none", vi.Transp)
	}
	if vi.XresVirtual != 720 {
		t.Errorf("virtual X resolution = %d, expected 720", vi.XresVirtual)
	}
	if got := inferFormat(vi); got != pixel.RGB565 {
		t.Errorf("format after override = %s, expected RGB_565", got)
	}
}

func TestFitsTwoFrames(t *testing.T) {
	tests := []struct {
		name       string
		yres       uint32
		lineLength uint32
		smemLen    uint32
		want       bool
	}{
		{"ample memory", 480, 1280, 4 * 480 * 1280, true},
		{"exactly two frames", 480, 1280, 2 * 480 * 1280, true},
		{"one byte short", 480, 1280, 2*480*1280 - 1, false},
		{"single frame only", 480, 1280, 480 * 1280, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vi := &VarScreenInfo{Yres: tt.yres}
			fix := &FixScreenInfo{LineLength: tt.lineLength, SmemLen: tt.smemLen}
			if got := fitsTwoFrames(vi, fix); got != tt.want {
				t.Errorf("fitsTwoFrames(yres=%d, line=%d, smem=%d) = %v, expected %v",
					tt.yres, tt.lineLength, tt.smemLen, got, tt.want)
			}
		})
	}
}
