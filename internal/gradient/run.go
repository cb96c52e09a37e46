package gradient

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gokrazy/fbgrad/internal/console"
	"github.com/gokrazy/fbgrad/internal/fb"
)

const (
	// DefaultTTY is the controlling terminal switched into graphics mode.
	DefaultTTY = "/dev/tty"
	// DefaultFramebuffer is the frame buffer device drawn into.
	DefaultFramebuffer = "/dev/fb0"

	// Steps is the number of animation frames. The blue channel of frame t
	// is t, so it must not exceed 256.
	Steps = 255
)

// Terminal is the console device switched into graphics mode while drawing.
type Terminal interface {
	SetMode(mode int) error
	Close() error
}

// Framebuffer is the frame buffer device drawn into.
type Framebuffer interface {
	FixScreeninfo() (fb.FixScreeninfo, error)
	VarScreeninfo() (fb.VarScreeninfo, error)
	Map(size int) ([]byte, error)
	Unmap(b []byte) error
	Close() error
}

// An Opener opens the devices Run works with.
type Opener interface {
	OpenTerminal(path string) (Terminal, error)
	OpenFramebuffer(path string) (Framebuffer, error)
}

// System opens the real Linux console and frame buffer devices.
type System struct{}

// OpenTerminal opens the console device at path.
func (System) OpenTerminal(path string) (Terminal, error) {
	h, err := console.Open(path)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// OpenFramebuffer opens the frame buffer device at path.
func (System) OpenFramebuffer(path string) (Framebuffer, error) {
	d, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// A DeviceError reports a failed device call. Op completes the sentence
// "cannot <Op> <Path>".
type DeviceError struct {
	Op   string
	Path string
	Err  error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("cannot %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// Config holds the device paths and the clock and output Run uses.
type Config struct {
	TTY         string
	Framebuffer string
	Steps       int

	// Now is sampled before and after drawing.
	Now func() time.Time
	// Stdout receives the frame rate line.
	Stdout io.Writer
}

// DefaultConfig returns the configuration of the fbgrad program: the
// default devices, Steps frames, the wall clock and standard output.
func DefaultConfig() Config {
	return Config{
		TTY:         DefaultTTY,
		Framebuffer: DefaultFramebuffer,
		Steps:       Steps,
		Now:         time.Now,
		Stdout:      os.Stdout,
	}
}

// Run switches the terminal into graphics mode, draws cfg.Steps gradient
// frames into the frame buffer, restores text mode and prints the frame
// rate.
//
// Errors during setup are returned right away: the terminal stays in
// graphics mode and opened devices stay open until the process exits.
func Run(cfg Config, o Opener) error {
	tty, err := o.OpenTerminal(cfg.TTY)
	if err != nil {
		return &DeviceError{Op: "open", Path: cfg.TTY, Err: err}
	}
	if err := tty.SetMode(console.Graphics); err != nil {
		return &DeviceError{Op: "set tty into graphics mode on", Path: cfg.TTY, Err: err}
	}

	dev, err := o.OpenFramebuffer(cfg.Framebuffer)
	if err != nil {
		return &DeviceError{Op: "open", Path: cfg.Framebuffer, Err: err}
	}
	finfo, err := dev.FixScreeninfo()
	if err != nil {
		return &DeviceError{Op: "open fixed screen info for", Path: cfg.Framebuffer, Err: err}
	}
	vinfo, err := dev.VarScreeninfo()
	if err != nil {
		return &DeviceError{Op: "open variable screen info for", Path: cfg.Framebuffer, Err: err}
	}
	if err := Validate(finfo, vinfo); err != nil {
		return err
	}

	s := NewScreen(finfo, vinfo)
	log.Printf("framebuffer %s: %dx%d, %d bytes per pixel, %d bytes per line",
		cfg.Framebuffer, s.Width, s.Height, s.BytesPerPixel, s.BytesPerLine)

	s.Buffer, err = dev.Map(s.Size)
	if err != nil {
		return &DeviceError{Op: "map frame buffer", Path: cfg.Framebuffer, Err: err}
	}

	start := cfg.Now()
	for t := 0; t < cfg.Steps; t++ {
		s.Fill(uint8(t))
	}
	end := cfg.Now()

	if err := dev.Unmap(s.Buffer); err != nil {
		log.Print(err)
	}
	s.Buffer = nil

	if err := tty.SetMode(console.Text); err != nil {
		return &DeviceError{Op: "set tty into text mode on", Path: cfg.TTY, Err: err}
	}

	if err := dev.Close(); err != nil {
		log.Print(err)
	}
	if err := tty.Close(); err != nil {
		log.Print(err)
	}

	// Elapsed time is measured in whole seconds.
	elapsed := end.Unix() - start.Unix()
	_, err = fmt.Fprintf(cfg.Stdout, "FPS: %.2f.\n", Rate(cfg.Steps, elapsed))
	return err
}
