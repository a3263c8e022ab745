package logger

import (
	"bytes"
	"io"
	"log"

	"github.com/gin-gonic/gin"
)

// AdapterLevel selects which leveled method a writer adapter forwards to.
type AdapterLevel int

const (
	AdapterLevelDebug AdapterLevel = iota
	AdapterLevelInfo
	AdapterLevelWarn
	AdapterLevelError
)

// writerAdapter implements io.Writer and forwards each line to our logger.
type writerAdapter struct {
	l     Interface
	level AdapterLevel
}

func (w writerAdapter) Write(p []byte) (n int, err error) {
	msg := string(bytes.TrimRight(p, "\r\n"))

	switch w.level {
	case AdapterLevelDebug:
		w.l.Debug(msg)
	case AdapterLevelInfo:
		w.l.Info(msg)
	case AdapterLevelWarn:
		w.l.Warn(msg)
	case AdapterLevelError:
		w.l.Error(msg)
	}

	return len(p), nil
}

// Writer returns an io.Writer that logs every write at level.
func Writer(l Interface, level AdapterLevel) io.Writer {
	return writerAdapter{l: l, level: level}
}

// StdLogger returns a standard library logger backed by l, for APIs such as
// http.Server.ErrorLog that only accept *log.Logger.
func StdLogger(l Interface, level AdapterLevel) *log.Logger {
	return log.New(Writer(l, level), "", 0)
}

// SetupStdLog routes the standard library log output through our JSON logger.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(Writer(l, AdapterLevelWarn))
}

// SetupGin routes Gin's logs through our JSON logger.
func SetupGin(l Interface) {
	gin.DefaultWriter = Writer(l, AdapterLevelDebug)
	gin.DefaultErrorWriter = Writer(l, AdapterLevelError)
}
