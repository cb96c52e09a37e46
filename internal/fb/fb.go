// Copyright 2018 Axel Wagner
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fb implements Linux frame buffer interaction via ioctls and mmap.
//
// This package is originally based on Axel Wagner’s
// https://pkg.go.dev/github.com/Merovius/srvfb/internal/fb package.
package fb

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// A Device is an open frame buffer device. Mapping is left to the caller so
// that the mapped size can be derived from the screen geometry.
type Device struct {
	fd uintptr
}

func Open(dev string) (*Device, error) {
	fd, err := unix.Open(dev, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	if int(uintptr(fd)) != fd {
		unix.Close(fd)
		return nil, errors.New("fd overflows")
	}
	return &Device{fd: uintptr(fd)}, nil
}

func (d *Device) FixScreeninfo() (FixScreeninfo, error) {
	var finfo FixScreeninfo
	_, _, eno := unix.Syscall(unix.SYS_IOCTL, d.fd, FBIOGET_FSCREENINFO, uintptr(unsafe.Pointer(&finfo)))
	if eno != 0 {
		return finfo, fmt.Errorf("FBIOGET_FSCREENINFO: %v", eno)
	}
	return finfo, nil
}

func (d *Device) VarScreeninfo() (VarScreeninfo, error) {
	var vinfo VarScreeninfo
	_, _, eno := unix.Syscall(unix.SYS_IOCTL, d.fd, FBIOGET_VSCREENINFO, uintptr(unsafe.Pointer(&vinfo)))
	if eno != 0 {
		return vinfo, fmt.Errorf("FBIOGET_VSCREENINFO: %v", eno)
	}
	return vinfo, nil
}

// Map maps size bytes of frame buffer memory, shared and writable.
func (d *Device) Map(size int) ([]byte, error) {
	b, err := unix.Mmap(int(d.fd), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %v", err)
	}
	return b, nil
}

func (d *Device) Unmap(b []byte) error {
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("munmap: %v", err)
	}
	return nil
}

func (d *Device) Close() error {
	return unix.Close(int(d.fd))
}
