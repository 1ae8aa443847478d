package countdown

import (
	"strconv"
	"testing"
)

func TestEvents(t *testing.T) {
	events := Events(10)
	if len(events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(events))
	}

	for i, ev := range events {
		if ev.Text != strconv.Itoa(i+1) {
			t.Errorf("event %d text = %q, want %q", i, ev.Text, strconv.Itoa(i+1))
		}
		if ev.Start != float64(i) || ev.End != float64(i+1) {
			t.Errorf("event %d spans %v-%v, want %d-%d", i, ev.Start, ev.End, i, i+1)
		}
	}

	if Duration(10) != 10 {
		t.Errorf("Duration(10) = %v, want 10", Duration(10))
	}
}

func TestEventsZero(t *testing.T) {
	if got := Events(0); len(got) != 0 {
		t.Errorf("Events(0) returned %d events", len(got))
	}
}
