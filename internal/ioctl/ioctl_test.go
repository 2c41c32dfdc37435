package ioctl

import "testing"

func TestCommandString(t *testing.T) {
	tests := []struct {
		command Command
		want    string
	}{
		{0x4600, "ioctl (0 bytes) 0x4600"},                  // legacy request, no encoded size
		{2<<30 | 16<<16 | 0x4a02, "ioctl read (16 bytes) 0x4a02"},
		{1<<30 | 4<<16 | 0x0001, "ioctl write (4 bytes) 0x0001"},
	}
	for _, tt := range tests {
		if got := tt.command.String(); got != tt.want {
			t.Errorf("Command(%#x).String() = %q, expected %q", uintptr(tt.command), got, tt.want)
		}
	}
}
