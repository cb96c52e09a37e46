package gradient

import (
	"fmt"
	"strings"

	"github.com/gokrazy/fbgrad/internal/fb"
)

const pixelFormat = "Color masks are 8bit, byte aligned, little endian, no transparency"

// An AssumptionError reports a frame buffer whose pixel format differs from
// the one the gradient is drawn in.
type AssumptionError struct {
	Violations []string
}

func (e *AssumptionError) Error() string {
	return fmt.Sprintf("failed assumption: %s (%s)", pixelFormat, strings.Join(e.Violations, "; "))
}

// Validate checks that pixels are 8 bit per channel, byte aligned RGB
// without alpha, stored least significant bit first, and that the visible
// area is not panned. All violations are reported together.
func Validate(finfo fb.FixScreeninfo, vinfo fb.VarScreeninfo) error {
	var v []string

	bpp := int(vinfo.Bits_per_pixel)
	if bpp == 0 || bpp%8 != 0 {
		v = append(v, fmt.Sprintf("%d bits per pixel is not a whole number of bytes", bpp))
	}
	bytesPerPixel := bpp / 8

	for _, ch := range []struct {
		name string
		bf   fb.Bitfield
	}{
		{"red", vinfo.Red},
		{"green", vinfo.Green},
		{"blue", vinfo.Blue},
	} {
		if ch.bf.Length != 8 {
			v = append(v, fmt.Sprintf("%s length is %d, want 8", ch.name, ch.bf.Length))
		}
		if ch.bf.Offset%8 != 0 {
			v = append(v, fmt.Sprintf("%s offset %d is not byte aligned", ch.name, ch.bf.Offset))
		} else if bytesPerPixel > 0 && int(ch.bf.Offset/8) >= bytesPerPixel {
			v = append(v, fmt.Sprintf("%s offset %d lies outside a %d byte pixel", ch.name, ch.bf.Offset, bytesPerPixel))
		}
		if ch.bf.Msb_right != 0 {
			v = append(v, fmt.Sprintf("%s is stored most significant bit first", ch.name))
		}
	}

	if vinfo.Transp.Offset != 0 || vinfo.Transp.Length != 0 {
		v = append(v, fmt.Sprintf("transparency channel at offset %d with length %d", vinfo.Transp.Offset, vinfo.Transp.Length))
	}
	if vinfo.Xoffset != 0 || vinfo.Yoffset != 0 {
		v = append(v, fmt.Sprintf("panned to %d,%d", vinfo.Xoffset, vinfo.Yoffset))
	}

	if vinfo.Xres == 0 || vinfo.Yres == 0 {
		v = append(v, fmt.Sprintf("resolution is %dx%d", vinfo.Xres, vinfo.Yres))
	}
	if visible := int(vinfo.Xres) * bytesPerPixel; int(finfo.Line_length) < visible {
		v = append(v, fmt.Sprintf("line length %d is shorter than %d visible bytes", finfo.Line_length, visible))
	}

	if len(v) > 0 {
		return &AssumptionError{Violations: v}
	}
	return nil
}
