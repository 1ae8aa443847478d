package fcp

import (
	"fmt"
	"math"
)

// FrameTime is an exact instant or duration of Frames/Rate seconds.
type FrameTime struct {
	Frames int64
	Rate   int
}

// Quantize snaps seconds to the nearest frame boundary at rate frames per
// second. Exact half-frame ties go to the even frame. seconds must be finite
// and non-negative.
func Quantize(seconds float64, rate int) FrameTime {
	return FrameTime{
		Frames: int64(math.RoundToEven(seconds * float64(rate))),
		Rate:   rate,
	}
}

// String formats t as an FCPXML rational time, e.g. "40/30s".
func (t FrameTime) String() string {
	return fmt.Sprintf("%d/%ds", t.Frames, t.Rate)
}

// Compact formats whole seconds as "Ns" and falls back to String otherwise.
func (t FrameTime) Compact() string {
	if t.Frames%int64(t.Rate) == 0 {
		return fmt.Sprintf("%ds", t.Frames/int64(t.Rate))
	}
	return t.String()
}

// Sub returns t-u. Both must share the same rate.
func (t FrameTime) Sub(u FrameTime) FrameTime {
	return FrameTime{Frames: t.Frames - u.Frames, Rate: t.Rate}
}

func (t FrameTime) Seconds() float64 {
	return float64(t.Frames) / float64(t.Rate)
}
