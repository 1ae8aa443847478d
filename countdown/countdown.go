// Package countdown synthesizes the numbered one-second events of a countdown.
package countdown

import (
	"strconv"

	"fcptitles/fcp"
)

// Events returns n events "1".."n", event i running from i-1 to i seconds.
func Events(n int) []fcp.TimedEvent {
	events := make([]fcp.TimedEvent, 0, n)
	for i := 1; i <= n; i++ {
		events = append(events, fcp.TimedEvent{
			Text:  strconv.Itoa(i),
			Start: float64(i - 1),
			End:   float64(i),
		})
	}
	return events
}

// Duration is the length of an n-event countdown in seconds.
func Duration(n int) float64 {
	return float64(n)
}
