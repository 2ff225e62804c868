// Package sheet implements the drag-to-snap state machine of a multi-stop
// bottom sheet.
//
// A [Sheet] owns its [State] and changes it only through two transitions,
// [Sheet.OnDragChange] and [Sheet.OnDragEnd], and through measurement
// callbacks for the header height, the content height and anchor positions.
// Rendering code reads committed values with [Sheet.Snapshot] and animated
// values with [Sheet.Presentation].
//
// Stops are the header height followed by either anchor-derived stops or
// fixed stops, chosen once at construction:
//
//	s := sheet.New(sheet.WithStops(320, 560))
//	s.SetViewport(sheet.Viewport{Height: 800})
//	s.SetHeaderHeight(64)
//	s.Stops() // [64 320 560]
//
// During a drag, the sheet either resizes (content pinned to the top) or,
// once fully expanded, scrolls its content. On release it snaps to the stop
// closest to the predicted resting height, the viewport height always being
// an extra candidate.
//
// A Sheet is not safe for concurrent use; drive it from the UI goroutine.
package sheet
