package errors

import (
	"log"
	"os"
)

// LogHandler is an ErrorHandler that logs errors through a *log.Logger.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Logger receives the output. A nil Logger writes to stderr.
	Logger *log.Logger
}

var stderrLogger = log.New(os.Stderr, "", log.LstdFlags)

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return stderrLogger
}

// HandleError logs a SheetError.
func (h *LogHandler) HandleError(err *SheetError) {
	if err == nil {
		return
	}
	l := h.logger()
	if !h.Verbose {
		l.Printf("[anchorsheet error] %s: %v", err.Op, err.Err)
		return
	}
	if err.Key != "" {
		l.Printf("[anchorsheet error] %s [%s] key=%s: %v", err.Op, err.Kind, err.Key, err.Err)
	} else {
		l.Printf("[anchorsheet error] %s [%s]: %v", err.Op, err.Kind, err.Err)
	}
	if err.StackTrace != "" {
		l.Printf("Stack trace:\n%s", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	if err.Op != "" {
		l.Printf("[anchorsheet panic] %s: %v", err.Op, err.Value)
	} else {
		l.Printf("[anchorsheet panic] %v", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		l.Printf("Stack trace:\n%s", err.StackTrace)
	}
}
