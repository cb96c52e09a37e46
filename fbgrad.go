// Program fbgrad draws an animated color gradient on the Linux frame buffer
// and reports how many frames per second it managed to write.
//
// Run it on a text console: a display server would immediately draw over
// the frame buffer contents.
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/gokrazy/fbgrad/internal/gradient"
	"github.com/gokrazy/gokrazy"
)

// Exit codes.
const (
	exitOK         = 0
	exitDevice     = 1
	exitAssumption = 2
)

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var aerr *gradient.AssumptionError
	if errors.As(err, &aerr) {
		return exitAssumption
	}
	return exitDevice
}

func fbgrad(cfg gradient.Config, o gradient.Opener) int {
	err := gradient.Run(cfg, o)
	if err != nil {
		log.Print(err)
	}
	return exitCode(err)
}

// setupLogging directs diagnostics and error reports to w, one
// "fbgrad: "-prefixed line each.
func setupLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetFlags(0)
	log.SetPrefix("fbgrad: ")
}

func main() {
	setupLogging(os.Stderr)

	if model := gokrazy.Model(); model != "" {
		log.Printf("running on %s", model)
	}

	os.Exit(fbgrad(gradient.DefaultConfig(), gradient.System{}))
}
