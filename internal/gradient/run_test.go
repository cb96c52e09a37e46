package gradient_test

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/gokrazy/fbgrad/internal/gradient"
	"github.com/gokrazy/fbgrad/internal/gradient/fbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock returns a Now function that advances by step on every call.
func clock(step time.Duration) func() time.Time {
	now := time.Unix(1500000000, 0)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func testConfig(out *bytes.Buffer, step time.Duration) gradient.Config {
	return gradient.Config{
		TTY:         "/dev/tty-test",
		Framebuffer: "/dev/fb-test",
		Steps:       gradient.Steps,
		Now:         clock(step),
		Stdout:      out,
	}
}

var setupCalls = []string{
	"open /dev/tty-test",
	"set-mode graphics",
	"open /dev/fb-test",
	"fix-info",
	"var-info",
}

func TestRun(t *testing.T) {
	devs := fbtest.RGB24(320, 200, 960)
	var out bytes.Buffer
	require.NoError(t, gradient.Run(testConfig(&out, 5*time.Second), devs))

	want := append(append([]string{}, setupCalls...),
		"map 192000",
		"unmap",
		"set-mode text",
		"close /dev/fb-test",
		"close /dev/tty-test",
	)
	assert.Equal(t, want, devs.Calls)
	assert.Equal(t, "FPS: 51.00.\n", out.String())

	// The last frame drawn is t=254.
	require.Len(t, devs.Buffer, 192000)
	for _, tt := range []struct {
		x, y    int
		r, g, b byte
	}{
		{x: 0, y: 0, r: 0, g: 0, b: 254},
		{x: 319, y: 0, r: 254, g: 0, b: 254},
		{x: 160, y: 100, r: 127, g: 127, b: 254},
		{x: 319, y: 199, r: 254, g: 253, b: 254},
	} {
		off := tt.x*3 + tt.y*960
		assert.Equal(t, []byte{tt.r, tt.g, tt.b}, devs.Buffer[off:off+3], "pixel (%d,%d)", tt.x, tt.y)
	}
}

func TestRunSubSecond(t *testing.T) {
	devs := fbtest.RGB24(4, 4, 12)
	var out bytes.Buffer
	require.NoError(t, gradient.Run(testConfig(&out, 0), devs))
	assert.Equal(t, "FPS: +Inf.\n", out.String())
}

func TestRunDeviceErrors(t *testing.T) {
	errBoom := errors.New("boom")
	for _, tt := range []struct {
		fail    string
		wantMsg string
	}{
		{fail: "open /dev/tty-test", wantMsg: `cannot open "/dev/tty-test": boom`},
		{fail: "set-mode graphics", wantMsg: `cannot set tty into graphics mode on "/dev/tty-test": boom`},
		{fail: "open /dev/fb-test", wantMsg: `cannot open "/dev/fb-test": boom`},
		{fail: "fix-info", wantMsg: `cannot open fixed screen info for "/dev/fb-test": boom`},
		{fail: "var-info", wantMsg: `cannot open variable screen info for "/dev/fb-test": boom`},
		{fail: "map 192000", wantMsg: `cannot map frame buffer "/dev/fb-test": boom`},
		{fail: "set-mode text", wantMsg: `cannot set tty into text mode on "/dev/tty-test": boom`},
	} {
		t.Run(tt.fail, func(t *testing.T) {
			devs := fbtest.RGB24(320, 200, 960)
			devs.Fail = map[string]error{tt.fail: errBoom}
			var out bytes.Buffer

			err := gradient.Run(testConfig(&out, time.Second), devs)
			require.Error(t, err)
			var derr *gradient.DeviceError
			require.True(t, errors.As(err, &derr), "error %v is not a *gradient.DeviceError", err)
			assert.ErrorIs(t, err, errBoom)
			assert.Equal(t, tt.wantMsg, err.Error())

			// Nothing is cleaned up after a failure, and the failing call
			// is the last one made.
			require.NotEmpty(t, devs.Calls)
			assert.Equal(t, tt.fail, devs.Calls[len(devs.Calls)-1])
			assert.Empty(t, out.String())
		})
	}
}

func TestRunTeardownErrorsAreNotFatal(t *testing.T) {
	devs := fbtest.RGB24(8, 8, 24)
	devs.Fail = map[string]error{
		"unmap":               errors.New("munmap: EINVAL"),
		"close /dev/fb-test":  errors.New("close: EIO"),
		"close /dev/tty-test": errors.New("close: EIO"),
	}
	var out bytes.Buffer
	require.NoError(t, gradient.Run(testConfig(&out, 2*time.Second), devs))
	assert.Equal(t, fmt.Sprintf("FPS: %.2f.\n", 255.0/2), out.String())
	assert.Equal(t, "close /dev/tty-test", devs.Calls[len(devs.Calls)-1])
}

func TestRunAssumptionFailure(t *testing.T) {
	devs := fbtest.RGB24(320, 200, 960)
	devs.Var.Transp.Length = 8
	var out bytes.Buffer

	err := gradient.Run(testConfig(&out, time.Second), devs)
	var aerr *gradient.AssumptionError
	require.True(t, errors.As(err, &aerr), "error %v is not a *gradient.AssumptionError", err)
	assert.Equal(t, []string{"transparency channel at offset 0 with length 8"}, aerr.Violations)

	// The terminal is left in graphics mode.
	assert.Equal(t, setupCalls, devs.Calls)
	assert.Nil(t, devs.Buffer)
}

func TestRunSystemMissingTerminal(t *testing.T) {
	dir := t.TempDir()
	cfg := gradient.DefaultConfig()
	cfg.TTY = filepath.Join(dir, "tty")
	cfg.Framebuffer = filepath.Join(dir, "fb0")

	err := gradient.Run(cfg, gradient.System{})
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("cannot open %q: no such file or directory", cfg.TTY), err.Error())
}
