// Package console allows switching Linux consoles between text and graphics
// mode, typically for drawing on the Linux frame buffer.
package console

import (
	"errors"
	"fmt"
	"os"

	"github.com/gokrazy/fbgrad/internal/linuxvt"
	"golang.org/x/sys/unix"
)

// Display modes accepted by SetMode.
const (
	Text     = linuxvt.KD_TEXT
	Graphics = linuxvt.KD_GRAPHICS
)

// A Handle represents an open Linux console device.
type Handle struct {
	f *os.File
}

// Open opens the console device at path for reading and writing. The
// console is left in whatever display mode it is currently in. Errors do
// not repeat the path, callers report it.
func Open(path string) (*Handle, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		var perr *os.PathError
		if errors.As(err, &perr) {
			return nil, perr.Err
		}
		return nil, err
	}
	return &Handle{f: f}, nil
}

// SetMode switches the console into Text or Graphics mode. In graphics mode
// the kernel stops drawing the text console, so frame buffer contents stay
// visible.
func (h *Handle) SetMode(mode int) error {
	if err := unix.IoctlSetInt(int(h.f.Fd()), linuxvt.KDSETMODE, mode); err != nil {
		return fmt.Errorf("KDSETMODE: %v", err)
	}
	return nil
}

func (h *Handle) Close() error {
	return h.f.Close()
}
