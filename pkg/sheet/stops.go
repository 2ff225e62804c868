package sheet

import "math"

// MainContentThreshold is how far above the header stop the container must
// be before the main content is shown.
const MainContentThreshold = 10

// ComposeStops returns [header] followed by extra.
func ComposeStops(header float64, extra []float64) []float64 {
	stops := make([]float64, 0, len(extra)+1)
	stops = append(stops, header)
	return append(stops, extra...)
}

// CandidateStops returns stops followed by the viewport height, the implicit
// fully-expanded stop.
func CandidateStops(stops []float64, viewportHeight float64) []float64 {
	out := make([]float64, 0, len(stops)+1)
	out = append(out, stops...)
	return append(out, viewportHeight)
}

// ResolveSnap returns the candidate closest to predictedHeight. Ties go to
// the earliest candidate. candidates must not be empty.
func ResolveSnap(candidates []float64, predictedHeight float64) float64 {
	best := 0
	bestDist := math.Abs(candidates[0] - predictedHeight)
	for i := 1; i < len(candidates); i++ {
		if d := math.Abs(candidates[i] - predictedHeight); d < bestDist {
			best, bestDist = i, d
		}
	}
	return candidates[best]
}

// PredictedHeight is the container height a released drag is heading to.
func PredictedHeight(startContainerHeight, startContentOffset, contentOffset, predictedEndTranslation float64) float64 {
	offsetDelta := contentOffset - startContentOffset
	return startContainerHeight - startContentOffset - (predictedEndTranslation + offsetDelta)
}

// ClampScrollOffset turns a target scroll distance (positive scrolls content
// up) into a content offset in [-(contentHeight - viewportHeight + headerHeight), 0].
func ClampScrollOffset(targetOffset, contentHeight, viewportHeight, headerHeight float64) float64 {
	maxScroll := contentHeight - viewportHeight + headerHeight
	end := -math.Max(0, math.Min(maxScroll, targetOffset))
	if end == 0 {
		return 0
	}
	return end
}

// MainContentShown reports whether containerHeight is far enough above the
// first stop to show the main content.
func MainContentShown(containerHeight float64, stops []float64) bool {
	if len(stops) == 0 {
		return false
	}
	return containerHeight >= stops[0]+MainContentThreshold
}
