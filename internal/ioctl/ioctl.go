// Package ioctl wraps the ioctl system call used to drive character
// devices.
package ioctl

import (
	"fmt"
	"reflect"
	"syscall"
)

// Command is an ioctl request number.
type Command uintptr

func (c Command) String() string {
	var (
		mode = c >> 30 & 0x03
		size = c >> 16 & 0x3fff
		cmd  = c & 0xffff
		str  string
	)
	if mode&1 != 0 {
		str += " write"
	}
	if mode&2 != 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, size, uintptr(cmd))
}

// Do executes the ioctl call with a pointer argument.
func Do(fd uintptr, command Command, ref interface{}) error {
	var p uintptr
	if ref != nil {
		p = reflect.ValueOf(ref).Pointer()
	}
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), p); errno != 0 {
		return fmt.Errorf("%s failed: %v", command, errno)
	}
	return nil
}

// Call executes the ioctl call with an immediate argument.
func Call(fd uintptr, command Command, arg uintptr) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), arg); errno != 0 {
		return fmt.Errorf("%s failed: %v", command, errno)
	}
	return nil
}
