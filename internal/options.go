package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options for the hull algorithms. The zero value is ready to use.
type Options struct {
	// Receives debug level tracing of the algorithm's decisions. Nothing is
	// logged when this is nil.
	Log logrus.FieldLogger
}

var discardLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	log.SetLevel(logrus.PanicLevel)
	return log
}

func (o Options) logger() logrus.FieldLogger {
	if o.Log == nil {
		return discardLogger
	}
	return o.Log
}
