// Package clipboard copies row text to the system clipboard, falling back to
// the OSC52 terminal escape when no system clipboard is reachable (SSH,
// headless sessions).
package clipboard

import (
	"errors"
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"

	"github.com/andareed/siftly-swipe/logging"
)

var ErrUnavailable = errors.New("clipboard unavailable")

// Method names the path a copy took.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

// Copy places text on the clipboard.
func Copy(text string) (Method, error) {
	var system func(string) error
	if !sysclip.Unsupported {
		system = sysclip.WriteAll
	}
	return copyTo(text, system, os.Stdout, osc52Supported())
}

func copyTo(text string, system func(string) error, term io.Writer, osc52 bool) (Method, error) {
	if system != nil {
		err := system(text)
		if err == nil {
			return MethodSystem, nil
		}
		logging.Debugf("clipboard: system copy failed: %v", err)
	}

	if !osc52 {
		logging.Warnf("clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return "", ErrUnavailable
	}
	if err := copyOSC52(text, term); err != nil {
		return "", err
	}
	return MethodOSC52, nil
}
