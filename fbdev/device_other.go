//go:build !linux

package fbdev

import "github.com/openrescue/display"

func newDevice(_ string) (device, error) {
	return nil, display.ErrNotSupported
}
