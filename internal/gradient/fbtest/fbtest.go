// Package fbtest provides in-memory console and frame buffer devices that
// record every call made on them.
package fbtest

import (
	"fmt"

	"github.com/gokrazy/fbgrad/internal/console"
	"github.com/gokrazy/fbgrad/internal/fb"
	"github.com/gokrazy/fbgrad/internal/gradient"
)

// Devices implements gradient.Opener. Calls are recorded in order as
// strings like "open /dev/fb0", "set-mode graphics" or "map 192000"; an
// entry in Fail makes the call of that name return the error.
type Devices struct {
	Fix fb.FixScreeninfo
	Var fb.VarScreeninfo

	Fail  map[string]error
	Calls []string

	// Buffer holds the memory handed out by the last Map call. It stays
	// readable after Unmap.
	Buffer []byte
}

// RGB24 returns devices reporting a 24 bpp frame buffer with red in the
// lowest byte, green in the middle and blue in the highest.
func RGB24(width, height, stride uint32) *Devices {
	return &Devices{
		Fix: fb.FixScreeninfo{
			Line_length: stride,
			Smem_len:    stride * height,
		},
		Var: fb.VarScreeninfo{
			Xres:           width,
			Yres:           height,
			Xres_virtual:   width,
			Yres_virtual:   height,
			Bits_per_pixel: 24,
			Red:            fb.Bitfield{Offset: 0, Length: 8},
			Green:          fb.Bitfield{Offset: 8, Length: 8},
			Blue:           fb.Bitfield{Offset: 16, Length: 8},
		},
	}
}

func (d *Devices) call(name string) error {
	d.Calls = append(d.Calls, name)
	return d.Fail[name]
}

func (d *Devices) OpenTerminal(path string) (gradient.Terminal, error) {
	if err := d.call("open " + path); err != nil {
		return nil, err
	}
	return &terminal{d: d, path: path}, nil
}

func (d *Devices) OpenFramebuffer(path string) (gradient.Framebuffer, error) {
	if err := d.call("open " + path); err != nil {
		return nil, err
	}
	return &framebuffer{d: d, path: path}, nil
}

type terminal struct {
	d    *Devices
	path string
}

func (t *terminal) SetMode(mode int) error {
	switch mode {
	case console.Graphics:
		return t.d.call("set-mode graphics")
	case console.Text:
		return t.d.call("set-mode text")
	}
	return t.d.call(fmt.Sprintf("set-mode %d", mode))
}

func (t *terminal) Close() error { return t.d.call("close " + t.path) }

type framebuffer struct {
	d    *Devices
	path string
}

func (f *framebuffer) FixScreeninfo() (fb.FixScreeninfo, error) {
	return f.d.Fix, f.d.call("fix-info")
}

func (f *framebuffer) VarScreeninfo() (fb.VarScreeninfo, error) {
	return f.d.Var, f.d.call("var-info")
}

func (f *framebuffer) Map(size int) ([]byte, error) {
	if err := f.d.call(fmt.Sprintf("map %d", size)); err != nil {
		return nil, err
	}
	f.d.Buffer = make([]byte, size)
	return f.d.Buffer, nil
}

func (f *framebuffer) Unmap(b []byte) error {
	if len(b) != len(f.d.Buffer) {
		return fmt.Errorf("unmap of %d bytes, %d mapped", len(b), len(f.d.Buffer))
	}
	return f.d.call("unmap")
}

func (f *framebuffer) Close() error { return f.d.call("close " + f.path) }
