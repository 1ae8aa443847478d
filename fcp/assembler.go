package fcp

import "fcptitles/config"

// TimedEvent is one piece of text shown from Start to End, in seconds.
type TimedEvent struct {
	Text  string
	Start float64
	End   float64
}

// Assembler builds title sequences from timed events using fixed resources
// taken from the config.
type Assembler struct {
	cfg config.Config
}

func NewAssembler(cfg config.Config) *Assembler {
	return &Assembler{cfg: cfg}
}

// Countdown builds a sequence whose titles carry their style inline. Times are
// written in whole seconds when they fall on one.
func (a *Assembler) Countdown(events []TimedEvent, total float64) *FCPXML {
	style := a.cfg.CountdownStyle
	titles := make([]Title, 0, len(events))
	for _, ev := range events {
		offset, duration := a.span(ev)
		titles = append(titles, Title{
			Ref:      a.cfg.EffectID,
			Name:     ev.Text,
			Offset:   offset.Compact(),
			Duration: duration.Compact(),
			Text: &TitleText{
				TextStyle: TextRun{
					Font:      style.Font,
					FontSize:  style.FontSize,
					FontFace:  style.FontFace,
					FontColor: style.FontColor,
					Bold:      style.Bold,
					Alignment: style.Alignment,
					Text:      ev.Text,
				},
			},
		})
	}

	return a.document(a.cfg.CountdownNames, Quantize(total, a.cfg.FrameRate).Compact(), titles)
}

// Lyrics builds a sequence where every title gets its own text-style-def,
// numbered ts1, ts2, ... in event order. Identical styles are not shared.
func (a *Assembler) Lyrics(events []TimedEvent, total float64) *FCPXML {
	style := a.cfg.LyricsStyle
	styleIDs := NewIDGenerator("ts")
	titles := make([]Title, 0, len(events))
	for _, ev := range events {
		offset, duration := a.span(ev)
		styleID := styleIDs.ReserveID()
		titles = append(titles, Title{
			Ref:      a.cfg.EffectID,
			Name:     ev.Text,
			Offset:   offset.String(),
			Duration: duration.String(),
			Text: &TitleText{
				TextStyle: TextRun{Ref: styleID, Text: ev.Text},
			},
			TextStyleDef: &TextStyleDef{
				ID: styleID,
				TextStyle: TextStyle{
					Font:      style.Font,
					FontSize:  style.FontSize,
					FontFace:  style.FontFace,
					FontColor: style.FontColor,
					Bold:      style.Bold,
					Alignment: style.Alignment,
				},
			},
		})
	}

	return a.document(a.cfg.LyricsNames, Quantize(total, a.cfg.FrameRate).String(), titles)
}

// span quantizes start and end independently, so the duration may differ by
// a frame from rounding End-Start directly.
func (a *Assembler) span(ev TimedEvent) (offset, duration FrameTime) {
	start := Quantize(ev.Start, a.cfg.FrameRate)
	end := Quantize(ev.End, a.cfg.FrameRate)
	return start, end.Sub(start)
}

func (a *Assembler) document(names config.Names, duration string, titles []Title) *FCPXML {
	return &FCPXML{
		Version: a.cfg.Version,
		Resources: Resources{
			Formats: []Format{
				{
					ID:            a.cfg.FormatID,
					Name:          a.cfg.FormatName(),
					FrameDuration: a.cfg.FrameDuration(),
					Width:         a.cfg.Width,
					Height:        a.cfg.Height,
				},
			},
			Effects: []Effect{
				{
					ID:   a.cfg.EffectID,
					Name: a.cfg.EffectName,
					UID:  a.cfg.EffectUID,
				},
			},
		},
		Library: Library{
			Events: []Event{
				{
					Name: names.Event,
					Projects: []Project{
						{
							Name: names.Project,
							Sequences: []Sequence{
								{
									Format:   a.cfg.FormatID,
									Duration: duration,
									TCStart:  "0s",
									TCFormat: "NDF",
									Spine:    Spine{Titles: titles},
								},
							},
						},
					},
				},
			},
		},
	}
}
