package fcp

import "testing"

func TestIDGenerator(t *testing.T) {
	g := NewIDGenerator("ts")
	for i, want := range []string{"ts1", "ts2", "ts3"} {
		if got := g.ReserveID(); got != want {
			t.Errorf("ReserveID() #%d = %q, want %q", i, got, want)
		}
	}
}

func TestIDGeneratorsAreIndependent(t *testing.T) {
	a := NewIDGenerator("ts")
	a.ReserveID()
	a.ReserveID()

	if got := NewIDGenerator("ts").ReserveID(); got != "ts1" {
		t.Errorf("fresh generator ReserveID() = %q, want ts1", got)
	}
}
