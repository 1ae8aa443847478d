// Package lyrics reads word-level transcription timing from a JSON document
// of the form {"segments":[{"words":[{"word":"hi","start":0.5,"end":0.9}]}]}.
package lyrics

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"fcptitles/fcp"
)

var (
	ErrInputNotFound  = errors.New("lyrics input not found")
	ErrMalformedInput = errors.New("malformed lyrics input")
	// ErrEmptyInput wraps ErrMalformedInput.
	ErrEmptyInput = fmt.Errorf("%w: no words", ErrMalformedInput)
)

type Word struct {
	Word  string
	Start float64
	End   float64
}

type Segment struct {
	Words []Word
}

type Document struct {
	Segments []Segment
}

// Wire types use pointers so a missing key can be told apart from a zero value.
type rawDocument struct {
	Segments *[]rawSegment `json:"segments"`
}

type rawSegment struct {
	Words *[]rawWord `json:"words"`
}

type rawWord struct {
	Word  *string  `json:"word"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
}

// Load reads and decodes the lyrics file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a lyrics document. Every segment needs "words" and every word
// needs "word", "start" and "end"; times must be finite and non-negative.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read lyrics: %w", err)
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if raw.Segments == nil {
		return nil, fmt.Errorf("%w: missing \"segments\"", ErrMalformedInput)
	}

	doc := &Document{Segments: make([]Segment, 0, len(*raw.Segments))}
	for i, rs := range *raw.Segments {
		if rs.Words == nil {
			return nil, fmt.Errorf("%w: segment %d: missing \"words\"", ErrMalformedInput, i)
		}
		seg := Segment{Words: make([]Word, 0, len(*rs.Words))}
		for j, rw := range *rs.Words {
			w, err := rw.word()
			if err != nil {
				return nil, fmt.Errorf("%w: segment %d word %d: %v", ErrMalformedInput, i, j, err)
			}
			seg.Words = append(seg.Words, w)
		}
		doc.Segments = append(doc.Segments, seg)
	}

	return doc, nil
}

func (rw rawWord) word() (Word, error) {
	switch {
	case rw.Word == nil:
		return Word{}, errors.New(`missing "word"`)
	case rw.Start == nil:
		return Word{}, errors.New(`missing "start"`)
	case rw.End == nil:
		return Word{}, errors.New(`missing "end"`)
	}
	if !validTime(*rw.Start) {
		return Word{}, fmt.Errorf("invalid start %v", *rw.Start)
	}
	if !validTime(*rw.End) {
		return Word{}, fmt.Errorf("invalid end %v", *rw.End)
	}
	return Word{Word: *rw.Word, Start: *rw.Start, End: *rw.End}, nil
}

func validTime(t float64) bool {
	return t >= 0 && !math.IsInf(t, 0) && !math.IsNaN(t)
}

// Events flattens the document, segment by segment, word by word.
func (d *Document) Events() []fcp.TimedEvent {
	events := make([]fcp.TimedEvent, 0, d.WordCount())
	for _, seg := range d.Segments {
		for _, w := range seg.Words {
			events = append(events, fcp.TimedEvent{Text: w.Word, Start: w.Start, End: w.End})
		}
	}
	return events
}

func (d *Document) WordCount() int {
	n := 0
	for _, seg := range d.Segments {
		n += len(seg.Words)
	}
	return n
}

// MaxEnd is the latest end time of any word. Words need not be sorted, so this
// is not necessarily the end of the last word.
func (d *Document) MaxEnd() (float64, error) {
	if d.WordCount() == 0 {
		return 0, ErrEmptyInput
	}

	maxEnd := 0.0
	for _, seg := range d.Segments {
		for _, w := range seg.Words {
			maxEnd = math.Max(maxEnd, w.End)
		}
	}
	return maxEnd, nil
}
