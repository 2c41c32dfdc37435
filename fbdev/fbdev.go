// Package fbdev implements a display backend on top of a memory-mapped
// Linux framebuffer device (fbdev).
//
// The backend maps the device's memory once at Init, renders through a
// single heap-allocated drawing surface, and presents by copying that
// surface into device memory. When the mapped extent holds two full
// frames it page-flips between them by moving the virtual Y offset;
// otherwise it writes straight into the visible frame and accepts
// tearing. The device mode is fixed at boot and never renegotiated.
package fbdev

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/openrescue/display"
	"github.com/openrescue/display/pixel"
)

// DefaultDevice is the framebuffer device used when none is configured.
const DefaultDevice = "/dev/fb0"

// Errors
var (
	ErrDeviceUnavailable = errors.New("fbdev: device unavailable")
	ErrMappingFailure    = errors.New("fbdev: mapping device memory failed")
	ErrAllocationFailure = errors.New("fbdev: surface allocation failed")
	ErrNotOpen           = errors.New("fbdev: backend not initialized")
)

// Config is the framebuffer backend configuration. All fields are
// fixed for the lifetime of the backend.
type Config struct {
	// Device is the framebuffer device path, typically /dev/fb0 (or
	// /dev/graphics/fb0 on Android-derived systems). Defaults to
	// DefaultDevice.
	Device string

	// ForceRGB565 overwrites the queried channel layout with a fixed
	// 16-bit 5-6-5 layout before use, for devices whose reported mode
	// is unusable.
	ForceRGB565 bool

	// SwapRedBlue runs a red/blue byte exchange over the drawing
	// surface on every double-buffered flip, for panels whose native
	// channel order is the complement of the rendered one.
	SwapRedBlue bool

	// BrightnessPath selects backlight-brightness blanking through the
	// given sysfs file instead of the FBIOBLANK ioctl. Empty means use
	// the ioctl.
	BrightnessPath string

	// MaxBrightness is the value written to BrightnessPath on unblank,
	// clamped to 0..255. Zero means 255.
	MaxBrightness int

	// Logger receives diagnostics for non-fatal failures. Nil means
	// discard.
	Logger *zap.Logger
}

// device is the raw framebuffer device. The swap and lifecycle logic
// runs against this interface so it can be exercised with a fake.
type device interface {
	FixScreenInfo() (FixScreenInfo, error)
	VarScreenInfo() (VarScreenInfo, error)
	PutVarScreenInfo(*VarScreenInfo) error
	Blank(mode uint32) error
	Map(length int) ([]byte, error)
	Unmap(mem []byte) error
	Close() error
}

type backend struct {
	cfg  Config
	log  *zap.Logger
	open func(path string) (device, error)

	dev device
	vi  VarScreenInfo
	mem []byte // mapped device memory, unmapped with this exact slice

	front   [2]*pixel.Surface // views into mem; front[1] only when double buffered
	drawing *pixel.Surface    // owned; the only surface callers see

	doubleBuffered bool
	visible        int
}

// New returns a framebuffer-backed display.Backend. The device is not
// touched until Init.
func New(cfg Config) display.Backend {
	if cfg.Device == "" {
		cfg.Device = DefaultDevice
	}
	if cfg.MaxBrightness <= 0 {
		cfg.MaxBrightness = 255
	} else if cfg.MaxBrightness > 255 {
		cfg.MaxBrightness = 255
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &backend{cfg: cfg, log: log, open: newDevice}
}

// Init opens and maps the device, derives the surface geometry and
// pixel format, and returns the drawing surface. Any failure releases
// everything acquired so far; partial success is not observable.
func (b *backend) Init() (*pixel.Surface, error) {
	if b.dev != nil {
		return nil, fmt.Errorf("fbdev: already initialized")
	}

	dev, err := b.open(b.cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDeviceUnavailable, b.cfg.Device, err)
	}
	fix, err := dev.FixScreenInfo()
	if err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	vi, err := dev.VarScreenInfo()
	if err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	// Informational only; see inferFormat for why this is not trusted.
	b.log.Info("framebuffer reports (possibly inaccurate)",
		zap.Uint32("xres", vi.Xres),
		zap.Uint32("yres", vi.Yres),
		zap.Uint32("bits_per_pixel", vi.BitsPerPixel),
		zap.Uint32("red_offset", vi.Red.Offset),
		zap.Uint32("red_length", vi.Red.Length),
		zap.Uint32("green_offset", vi.Green.Offset),
		zap.Uint32("blue_offset", vi.Blue.Offset),
	)

	mem, err := dev.Map(int(fix.SmemLen))
	if err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrMappingFailure, fix.SmemLen, err)
	}
	// Eliminate stale scanout contents before the first present.
	clear(mem)

	fail := func(err error) (*pixel.Surface, error) {
		_ = dev.Unmap(mem)
		_ = dev.Close()
		return nil, err
	}

	if b.cfg.ForceRGB565 {
		b.log.Info("forcing pixel format RGB_565")
		forceRGB565(&vi, &fix)
	}
	format := inferFormat(&vi)

	var (
		width      = int(vi.Xres)
		height     = int(vi.Yres)
		rowBytes   = int(fix.LineLength)
		pixelBytes = int(vi.BitsPerPixel) / 8
		frameSize  = height * rowBytes
	)
	if frameSize <= 0 || frameSize > len(mem) {
		return fail(fmt.Errorf("%w: %dx%d frame (%d bytes) does not fit %d mapped bytes",
			ErrAllocationFailure, width, height, frameSize, len(mem)))
	}

	front0, err := pixel.NewSurfaceView(mem[:frameSize], width, height, rowBytes, pixelBytes, format)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrAllocationFailure, err))
	}
	front0.Clear()

	// Drawing directly into device memory is several times slower than
	// drawing into ordinary memory and copying, so callers render into
	// a separate surface.
	drawing, err := pixel.NewSurface(width, height, rowBytes, pixelBytes, format)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrAllocationFailure, err))
	}

	b.doubleBuffered = fitsTwoFrames(&vi, &fix)
	b.front[0] = front0
	b.front[1] = nil
	if b.doubleBuffered {
		front1, err := pixel.NewSurfaceView(mem[frameSize:2*frameSize], width, height, rowBytes, pixelBytes, format)
		if err != nil {
			return fail(fmt.Errorf("%w: %v", ErrAllocationFailure, err))
		}
		b.front[1] = front1
	}

	b.dev = dev
	b.vi = vi
	b.mem = mem
	b.drawing = drawing
	b.setVisible(0)

	b.log.Info("framebuffer ready",
		zap.String("device", b.cfg.Device),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("row_bytes", rowBytes),
		zap.Stringer("format", format),
		zap.Bool("double_buffered", b.doubleBuffered),
	)

	// Conservative panel reset before first use.
	_ = b.Blank(false)
	_ = b.Blank(true)
	_ = b.Blank(false)

	return b.drawing, nil
}

// setVisible repoints the display scanout origin at device buffer n by
// moving the virtual Y offset. No-op when single buffered.
func (b *backend) setVisible(n int) {
	if n > 1 || !b.doubleBuffered {
		return
	}
	height := uint32(b.front[0].Height)
	b.vi.YresVirtual = height * 2
	b.vi.Yoffset = uint32(n) * height
	b.vi.BitsPerPixel = uint32(b.front[0].PixelBytes) * 8
	if err := b.dev.PutVarScreenInfo(&b.vi); err != nil {
		// Non-fatal; the previous frame stays visible.
		b.log.Error("active buffer swap failed", zap.Int("buffer", n), zap.Error(err))
	}
	b.visible = n
}

// Flip presents the drawing surface. Double buffered, the bytes go
// into the currently invisible device buffer which is then flipped in;
// single buffered they go straight into the one visible buffer.
func (b *backend) Flip() (*pixel.Surface, error) {
	if b.dev == nil {
		return nil, ErrNotOpen
	}
	if b.doubleBuffered {
		if b.cfg.SwapRedBlue {
			b.drawing.SwapRedBlue()
		}
		next := 1 - b.visible
		b.front[next].CopyFrom(b.drawing)
		b.setVisible(next)
	} else {
		b.front[0].CopyFrom(b.drawing)
	}
	return b.drawing, nil
}

// Blank powers the display down (true) or up (false), through the
// configured brightness file or the native blanking ioctl. Failures
// are logged and the display state is left as is.
func (b *backend) Blank(on bool) error {
	if b.dev == nil {
		return ErrNotOpen
	}
	if b.cfg.BrightnessPath != "" {
		b.setBrightness(on)
		return nil
	}
	mode := uint32(fbBlankUnblank)
	if on {
		mode = fbBlankPowerdown
	}
	if err := b.dev.Blank(mode); err != nil {
		b.log.Error("blank ioctl failed", zap.Bool("blank", on), zap.Error(err))
	}
	return nil
}

func (b *backend) setBrightness(blank bool) {
	value := "000"
	if !blank {
		value = fmt.Sprintf("%03d", b.cfg.MaxBrightness)
	}
	f, err := os.OpenFile(b.cfg.BrightnessPath, os.O_WRONLY, 0)
	if err != nil {
		b.log.Error("cannot open LCD backlight", zap.String("path", b.cfg.BrightnessPath), zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.WriteString(value); err != nil {
		b.log.Error("cannot set LCD backlight", zap.String("path", b.cfg.BrightnessPath), zap.Error(err))
	}
}

// Close releases the device handle, the drawing surface and the
// mapping. Safe after a failed Init and safe to call twice.
func (b *backend) Close() error {
	dev := b.dev
	if dev == nil {
		return nil
	}
	b.dev = nil
	cerr := dev.Close()

	b.drawing = nil
	b.front = [2]*pixel.Surface{}
	b.doubleBuffered = false
	b.visible = 0

	var merr error
	if b.mem != nil {
		merr = dev.Unmap(b.mem)
		b.mem = nil
	}
	if cerr != nil {
		return cerr
	}
	return merr
}
