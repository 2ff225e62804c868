package errors

import (
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	handler ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide handler and returns the one it
// replaced. A nil h restores a quiet LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	mu.Lock()
	defer mu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	mu.RLock()
	defer mu.RUnlock()
	return handler
}

// Report stamps err and passes it to the installed handler.
func Report(err *SheetError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportMeasurement reports a measurement the sheet refused to apply.
func ReportMeasurement(op, key, name string, value float64) {
	Report(&SheetError{
		Op:   op,
		Kind: KindMeasurement,
		Key:  key,
		Err:  &MeasurementError{Name: name, Value: value},
	})
}

// ReportPanic passes a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress. It must be deferred directly:
//
//	defer errors.Recover("sheet.Tick")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r), which lets the
// caller repair its return values.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack returns the calling goroutine's stack without the header
// line and the frames inside this package.
func CaptureStack() string {
	lines := strings.Split(strings.TrimSpace(string(debug.Stack())), "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "goroutine ") {
		lines = lines[1:]
	}
	// Frames come in pairs: function line, then its file line.
	for len(lines) >= 2 && isOwnFrame(lines[0]) {
		lines = lines[2:]
	}
	return strings.Join(lines, "\n")
}

func isOwnFrame(fn string) bool {
	return strings.HasPrefix(fn, "runtime/debug.") ||
		strings.HasPrefix(fn, "github.com/go-drift/anchorsheet/pkg/errors.")
}
