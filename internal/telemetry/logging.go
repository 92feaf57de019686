package telemetry

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// NewLogger returns a structured logger writing to w. Messages logged with
// V(n) are emitted only when n <= verbosity.
func NewLogger(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.NewWithOptions(log.New(w, "", log.LstdFlags), stdr.Options{LogCaller: stdr.Error}).
		WithName(serviceName)
}
