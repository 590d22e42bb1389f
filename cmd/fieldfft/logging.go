package main

import (
	"fmt"
	"io"
	"os"
)

var logWriter io.Writer = os.Stderr

// SetLogWriter redirects progress messages. A nil writer silences them.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

func logf(format string, args ...any) {
	if logWriter == nil {
		return
	}
	fmt.Fprintf(logWriter, format+"\n", args...)
}
