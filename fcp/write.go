package fcp

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"regexp"
)

var ErrOutputWrite = errors.New("cannot write output")

// emptyElement matches a start tag immediately followed by an end tag.
// encoding/xml escapes '<' and '>' inside attribute values and text, so a
// match can only be an element with no content.
var emptyElement = regexp.MustCompile(`<([A-Za-z][\w.-]*)((?: [^<>]*)?)></([A-Za-z][\w.-]*)>`)

// Marshal serializes doc with the XML declaration and FCPXML doctype that
// Final Cut Pro expects on import. Empty elements are written self-closed,
// as in <format .../>.
func Marshal(doc *FCPXML) ([]byte, error) {
	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal FCPXML: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString("<!DOCTYPE fcpxml>\n")
	buf.Write(selfClose(output))
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func selfClose(output []byte) []byte {
	return emptyElement.ReplaceAllFunc(output, func(m []byte) []byte {
		sub := emptyElement.FindSubmatch(m)
		if !bytes.Equal(sub[1], sub[3]) {
			return m
		}
		closed := make([]byte, 0, len(sub[1])+len(sub[2])+3)
		closed = append(closed, '<')
		closed = append(closed, sub[1]...)
		closed = append(closed, sub[2]...)
		return append(closed, '/', '>')
	})
}

// WriteToFile marshals doc and overwrites filename with it.
func WriteToFile(doc *FCPXML, filename string) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("%w %s: %v", ErrOutputWrite, filename, err)
	}
	return nil
}
