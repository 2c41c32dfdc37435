//go:build linux

package fbdev

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/openrescue/display/internal/ioctl"
)

// ioctl requests from <linux/fb.h>.
const (
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioPutVScreenInfo ioctl.Command = 0x4601
	fbioGetFScreenInfo ioctl.Command = 0x4602
	fbioBlank          ioctl.Command = 0x4611
)

// fbDevice is the real framebuffer character device.
type fbDevice struct {
	f *os.File
}

func newDevice(path string) (device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}
	return &fbDevice{f: f}, nil
}

func (d *fbDevice) FixScreenInfo() (FixScreenInfo, error) {
	var fix FixScreenInfo
	err := ioctl.Do(d.f.Fd(), fbioGetFScreenInfo, &fix)
	return fix, err
}

func (d *fbDevice) VarScreenInfo() (VarScreenInfo, error) {
	var vi VarScreenInfo
	err := ioctl.Do(d.f.Fd(), fbioGetVScreenInfo, &vi)
	return vi, err
}

func (d *fbDevice) PutVarScreenInfo(vi *VarScreenInfo) error {
	return ioctl.Do(d.f.Fd(), fbioPutVScreenInfo, vi)
}

func (d *fbDevice) Blank(mode uint32) error {
	return ioctl.Call(d.f.Fd(), fbioBlank, uintptr(mode))
}

func (d *fbDevice) Map(length int) ([]byte, error) {
	return unix.Mmap(int(d.f.Fd()), 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

func (d *fbDevice) Unmap(mem []byte) error {
	return unix.Munmap(mem)
}

func (d *fbDevice) Close() error {
	return d.f.Close()
}
