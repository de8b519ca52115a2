// Copyright Safing ICS Technologies GmbH. Use of this source code is governed by the AGPL license that can be found in the LICENSE file.

package log

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tevino/abool"
)

// concept
/*
- Logging function:
  - check if logging is started and the level is active
  - send data to backend via big buffered channel
- Backend:
  - wait until there are logs to write
  - write logs to the configured output, stderr by default
- Channel overbuffering protection:
  - if buffer is full, trigger write
- Generated data is written to stdout by the CLI, so logs must never go there by default.
*/

// Severity describes a log level.
type Severity uint32

type logLine struct {
	msg       string
	level     Severity
	timestamp time.Time
	file      string
	line      int
}

// Log Levels
const (
	TraceLevel    Severity = 1
	DebugLevel    Severity = 2
	InfoLevel     Severity = 3
	WarningLevel  Severity = 4
	ErrorLevel    Severity = 5
	CriticalLevel Severity = 6
)

var (
	// ErrAlreadyStarted is returned when Start is called more than once.
	ErrAlreadyStarted = errors.New("logging already started")

	logBuffer             chan *logLine
	forceEmptyingOfBuffer = make(chan bool, 4)

	logLevelInt = uint32(InfoLevel)
	logLevel    = &logLevelInt

	logsWaiting     = make(chan bool, 1)
	logsWaitingFlag = abool.NewBool(false)

	outputLock sync.Mutex
	output     io.Writer = os.Stderr
	useColor             = abool.NewBool(false)

	started        = abool.NewBool(false)
	shutdownSignal chan struct{}
	writerDone     chan struct{}
)

// SetLogLevel sets a new log level.
func SetLogLevel(level Severity) {
	atomic.StoreUint32(logLevel, uint32(level))
}

// GetLogLevel returns the current log level.
func GetLogLevel() Severity {
	return Severity(atomic.LoadUint32(logLevel))
}

// ParseLevel returns the level severity of a log level name. It returns 0 for unknown names.
func ParseLevel(level string) Severity {
	switch strings.ToLower(level) {
	case "trace":
		return TraceLevel
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warning":
		return WarningLevel
	case "error":
		return ErrorLevel
	case "critical":
		return CriticalLevel
	}
	return 0
}

// SetOutput sets the writer logs are written to. Colors are only used if enabled with SetColor.
func SetOutput(w io.Writer) {
	outputLock.Lock()
	defer outputLock.Unlock()
	output = w
}

// SetColor enables or disables colored log output.
func SetColor(enabled bool) {
	useColor.SetTo(enabled)
}

// Start starts the logging system. Until Start is called, log messages are discarded.
func Start() error {
	if !started.SetToIf(false, true) {
		return ErrAlreadyStarted
	}

	logBuffer = make(chan *logLine, 1024)
	shutdownSignal = make(chan struct{})
	writerDone = make(chan struct{})

	go writer()
	return nil
}

// Shutdown writes all buffered logs and stops the logging system.
func Shutdown() {
	if !started.SetToIf(true, false) {
		return
	}
	close(shutdownSignal)
	<-writerDone
}
