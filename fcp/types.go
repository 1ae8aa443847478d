// Package fcp defines the struct types for FCPXML generation.
//
// Documents are built as struct trees and serialized with xml.MarshalIndent.
// Never assemble FCPXML from string templates: encoding/xml escapes attribute
// and text values, templates do not.
package fcp

import (
	"encoding/xml"
)

type FCPXML struct {
	XMLName   xml.Name  `xml:"fcpxml"`
	Version   string    `xml:"version,attr"`
	Resources Resources `xml:"resources"`
	Library   Library   `xml:"library"`
}

// Resources holds the format and effect every title references by id.
type Resources struct {
	Formats []Format `xml:"format"`
	Effects []Effect `xml:"effect,omitempty"`
}

type Format struct {
	ID            string `xml:"id,attr"`
	Name          string `xml:"name,attr,omitempty"`
	FrameDuration string `xml:"frameDuration,attr,omitempty"`
	Width         string `xml:"width,attr,omitempty"`
	Height        string `xml:"height,attr,omitempty"`
}

// Effect represents a Motion title effect referenced by <title ref="…"> elements.
type Effect struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
	UID  string `xml:"uid,attr,omitempty"`
}

type Library struct {
	Events []Event `xml:"event"`
}

type Event struct {
	Name     string    `xml:"name,attr"`
	Projects []Project `xml:"project"`
}

type Project struct {
	Name      string     `xml:"name,attr"`
	Sequences []Sequence `xml:"sequence"`
}

type Sequence struct {
	Format   string `xml:"format,attr"`
	Duration string `xml:"duration,attr"`
	TCStart  string `xml:"tcStart,attr"`
	TCFormat string `xml:"tcFormat,attr"`
	Spine    Spine  `xml:"spine"`
}

// Spine is the primary storyline. Titles are written in the order they were
// appended, which is the order of the input events.
type Spine struct {
	Titles []Title `xml:"title,omitempty"`
}

type Title struct {
	XMLName      xml.Name      `xml:"title"`
	Ref          string        `xml:"ref,attr"`
	Name         string        `xml:"name,attr"`
	Offset       string        `xml:"offset,attr"`
	Duration     string        `xml:"duration,attr"`
	Text         *TitleText    `xml:"text,omitempty"`
	TextStyleDef *TextStyleDef `xml:"text-style-def,omitempty"`
}

type TitleText struct {
	TextStyle TextRun `xml:"text-style"`
}

// TextRun is a <text-style> run inside <text>. It either points at a
// text-style-def through Ref or carries its style attributes inline.
type TextRun struct {
	Ref       string `xml:"ref,attr,omitempty"`
	Font      string `xml:"font,attr,omitempty"`
	FontSize  string `xml:"fontSize,attr,omitempty"`
	FontFace  string `xml:"fontFace,attr,omitempty"`
	FontColor string `xml:"fontColor,attr,omitempty"`
	Bold      string `xml:"bold,attr,omitempty"`
	Alignment string `xml:"alignment,attr,omitempty"`
	Text      string `xml:",chardata"`
}

type TextStyleDef struct {
	ID        string    `xml:"id,attr"`
	TextStyle TextStyle `xml:"text-style"`
}

type TextStyle struct {
	Font      string `xml:"font,attr"`
	FontSize  string `xml:"fontSize,attr"`
	FontFace  string `xml:"fontFace,attr"`
	FontColor string `xml:"fontColor,attr"`
	Bold      string `xml:"bold,attr,omitempty"`
	Alignment string `xml:"alignment,attr"`
}
