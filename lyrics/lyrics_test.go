package lyrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleJSON = `{
  "segments": [
    {"text": "hello world", "words": [
      {"word": "hello", "start": 1.33, "end": 1.70},
      {"word": "world", "start": 1.70, "end": 2.25}
    ]},
    {"words": [
      {"word": "again", "start": 0.5, "end": 4.0},
      {"word": "late", "start": 3.0, "end": 3.5}
    ]}
  ]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if doc.WordCount() != 4 {
		t.Errorf("WordCount() = %d, want 4", doc.WordCount())
	}

	events := doc.Events()
	wantTexts := []string{"hello", "world", "again", "late"}
	if len(events) != len(wantTexts) {
		t.Fatalf("expected %d events, got %d", len(wantTexts), len(events))
	}
	for i, ev := range events {
		if ev.Text != wantTexts[i] {
			t.Errorf("event %d text = %q, want %q", i, ev.Text, wantTexts[i])
		}
	}
	if events[0].Start != 1.33 || events[0].End != 1.70 {
		t.Errorf("event 0 spans %v-%v, want 1.33-1.70", events[0].Start, events[0].End)
	}
}

func TestMaxEndIsNotLastWord(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	got, err := doc.MaxEnd()
	if err != nil {
		t.Fatalf("MaxEnd failed: %v", err)
	}
	if got != 4.0 {
		t.Errorf("MaxEnd() = %v, want 4.0", got)
	}
}

func TestMaxEndEmpty(t *testing.T) {
	tests := []string{
		`{"segments": []}`,
		`{"segments": [{"words": []}, {"words": []}]}`,
	}

	for _, input := range tests {
		doc, err := Decode(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", input, err)
		}
		_, err = doc.MaxEnd()
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("MaxEnd() on %s: err = %v, want ErrEmptyInput", input, err)
		}
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("ErrEmptyInput should wrap ErrMalformedInput")
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `segments: []`},
		{"truncated", `{"segments": [`},
		{"missing segments", `{}`},
		{"null segments", `{"segments": null}`},
		{"missing words", `{"segments": [{"text": "hi"}]}`},
		{"missing word", `{"segments": [{"words": [{"start": 0, "end": 1}]}]}`},
		{"missing start", `{"segments": [{"words": [{"word": "a", "end": 1}]}]}`},
		{"missing end", `{"segments": [{"words": [{"word": "a", "start": 0}]}]}`},
		{"string start", `{"segments": [{"words": [{"word": "a", "start": "0", "end": 1}]}]}`},
		{"negative start", `{"segments": [{"words": [{"word": "a", "start": -1, "end": 1}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Decode() err = %v, want ErrMalformedInput", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyrics.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0644); err != nil {
		t.Fatalf("Failed to create test lyrics file: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.WordCount() != 4 {
		t.Errorf("WordCount() = %d, want 4", doc.WordCount())
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("Load() err = %v, want ErrInputNotFound", err)
	}
}
