// Package config holds the fixed values used to build title sequences.
// Defaults reproduce the documents Final Cut Pro has been importing; the
// environment and CLI flags can override a few of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	DefaultFrameRate       = 30
	DefaultCountdownLength = 10
	DefaultLyricsInput     = "lyrics.json"
	DefaultCountdownOutput = "countdown.fcpxml"
	DefaultLyricsOutput    = "lyrics.fcpxml"

	// Environment variable names
	EnvFrameRate   = "FCPTITLES_FPS"
	EnvLyricsInput = "FCPTITLES_LYRICS_INPUT"
)

var ErrInvalidConfig = errors.New("invalid config")

// videoFormats maps the frame rates Final Cut Pro names a 1080p format for.
var videoFormats = map[int]string{
	24: "FFVideoFormat1080p24",
	25: "FFVideoFormat1080p25",
	30: "FFVideoFormat1080p30",
	60: "FFVideoFormat1080p60",
}

// Style is the text styling applied to a title's text run.
type Style struct {
	Font      string
	FontSize  string
	FontFace  string
	FontColor string
	Bold      string
	Alignment string
}

// Names of the library event and project that hold the sequence.
type Names struct {
	Event   string
	Project string
}

type Config struct {
	FrameRate int
	Version   string

	FormatID string
	Width    string
	Height   string

	EffectID   string
	EffectName string
	EffectUID  string

	CountdownLength int
	CountdownNames  Names
	CountdownStyle  Style
	CountdownOutput string

	LyricsNames  Names
	LyricsStyle  Style
	LyricsInput  string
	LyricsOutput string
}

// Default returns the configuration every generator uses unless told otherwise.
func Default() Config {
	return Config{
		FrameRate: DefaultFrameRate,
		Version:   "1.10",

		FormatID: "r1",
		Width:    "1920",
		Height:   "1080",

		EffectID:   "r2",
		EffectName: "Basic Title",
		EffectUID:  ".../Titles.localized/Bumper:Opener.localized/Basic Title.localized/Basic Title.moti",

		CountdownLength: DefaultCountdownLength,
		CountdownNames:  Names{Event: "Countdown Timer", Project: "Timer 1-10"},
		CountdownStyle: Style{
			Font:      "Helvetica",
			FontSize:  "96",
			FontFace:  "Regular",
			FontColor: "1 1 1 1",
			Alignment: "center",
		},
		CountdownOutput: DefaultCountdownOutput,

		LyricsNames: Names{Event: "Lyrics", Project: "Song Lyrics"},
		LyricsStyle: Style{
			Font:      "Coolvetica",
			FontSize:  "80",
			FontFace:  "Regular",
			FontColor: "1 1 1 1",
			Bold:      "1",
			Alignment: "center",
		},
		LyricsInput:  DefaultLyricsInput,
		LyricsOutput: DefaultLyricsOutput,
	}
}

// New returns Default with environment overrides applied.
func New() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvFrameRate); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvFrameRate, v)
		}
		cfg.FrameRate = fps
	}
	if v := os.Getenv(EnvLyricsInput); v != "" {
		cfg.LyricsInput = v
	}

	return cfg, cfg.Validate()
}

// FrameDuration is the format resource's frameDuration attribute, e.g. "1/30s".
func (c Config) FrameDuration() string {
	return fmt.Sprintf("1/%ds", c.FrameRate)
}

// FormatName is the format resource's name for the frame rate, e.g.
// "FFVideoFormat1080p30". Empty for a rate Validate rejects.
func (c Config) FormatName() string {
	return videoFormats[c.FrameRate]
}

func (c Config) Validate() error {
	if _, ok := videoFormats[c.FrameRate]; !ok {
		return fmt.Errorf("%w: unsupported frame rate %d (use 24, 25, 30 or 60)", ErrInvalidConfig, c.FrameRate)
	}
	if c.CountdownLength <= 0 {
		return fmt.Errorf("%w: countdown length must be positive, got %d", ErrInvalidConfig, c.CountdownLength)
	}
	return nil
}
