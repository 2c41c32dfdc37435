package fbdev

// Blanking levels, from <linux/fb.h>.
const (
	fbBlankUnblank   = 0 // screen and sync on
	fbBlankPowerdown = 4 // screen and sync off
)

// FixScreenInfo mirrors struct fb_fix_screeninfo: device properties
// that are fixed for the lifetime of the current mode.
type FixScreenInfo struct {
	ID         [16]byte  // Identification string, eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem (physical address)
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// BitField describes the position of one color channel within a pixel.
type BitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0: most significant bit is right
}

// VarScreenInfo mirrors struct fb_var_screeninfo: the negotiated video
// mode. The Yoffset and YresVirtual fields are rewritten on every
// buffer swap; everything else stays as queried at init.
type VarScreenInfo struct {
	Xres         uint32
	Yres         uint32
	XresVirtual  uint32
	YresVirtual  uint32
	Xoffset      uint32
	Yoffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          BitField
	Green        BitField
	Blue         BitField
	Transp       BitField
	Nonstd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	Pixclock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HsyncLen     uint32
	VsyncLen     uint32
	Sync         uint32
	Vmode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}
