// Package testing provides deterministic drivers for sheet tests.
//
// # Quick Start
//
// Create a tester, report measurements, then drag:
//
//	func TestSnap(t *testing.T) {
//	    tester := sheettest.NewSheetTester(t, sheet.WithStops(300, 500), 800)
//	    tester.ReportHeader(100)
//
//	    tester.Drag(-180, 6, 300*time.Millisecond)
//	    if got := tester.Sheet.Snapshot().ContainerHeight; got != 300 {
//	        t.Errorf("height = %v, want 300", got)
//	    }
//	}
//
// # Time
//
// NewSheetTester installs a [FakeClock] as the animation clock for the
// duration of the test, so drag velocities depend only on the step
// durations passed to Drag and Fling.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import sheettest "github.com/go-drift/anchorsheet/pkg/testing"
package testing
