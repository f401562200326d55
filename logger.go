package wadlevel

import (
	"io"
	"log"
)

var discard = log.New(io.Discard, "", log.LstdFlags)

var logger = discard

// SetLogger sets the logger used for progress messages while reading
// archives and building levels. Nothing is logged by default; passing nil
// restores that.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = discard
	}
	logger = l
}
