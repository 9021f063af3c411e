// Package session owns the display state shared by the converters. A Shell
// is the only writer of that state: converters stay pure and every front end
// (CLI, TUI, GUI, watch) goes through the same edit/convert/load operations.
package session

import (
	"context"
	"sync"

	"binviz/internal/config"
	"binviz/internal/convert"
	serr "binviz/internal/errors"
	"binviz/internal/log"

	"github.com/google/uuid"
)

// State is a snapshot of everything a front end displays.
type State struct {
	DecimalInput string
	Binary       string
	Bits         []convert.Bit

	TextInput   string
	TextEntries []convert.TextEntry
	TextBinary  string

	Image        *convert.Preview
	ImageLoading bool

	// Err is the single alert slot shared by all modes; the last failure wins.
	Err string
}

// Options configures the converters behind a Shell.
type Options struct {
	CodeUnits convert.CodeUnitMode
	Preview   convert.PreviewOptions
}

// OptionsFromConfig maps configuration onto converter options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Preview: convert.PreviewOptions{
			Limit:          cfg.Image.PreviewLimit,
			AlwaysEllipsis: cfg.Image.AlwaysEllipsis,
		},
	}
	if cfg.Text.CodeUnits == config.CodeUnitsLatin1 {
		opts.CodeUnits = convert.Latin1
	}
	return opts
}

// Shell holds the state record and serializes access to it.
type Shell struct {
	mu    sync.Mutex
	id    string
	opts  Options
	state State

	latest uint64
	cancel context.CancelFunc
}

// New creates a Shell with empty state.
func New(opts Options) *Shell {
	return &Shell{
		id:   uuid.NewString(),
		opts: opts,
	}
}

// ID identifies the shell in log lines.
func (s *Shell) ID() string {
	return s.id
}

// Options returns the converter options.
func (s *Shell) Options() Options {
	return s.opts
}

// State returns a copy of the current state.
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Bits = append([]convert.Bit(nil), s.state.Bits...)
	st.TextEntries = append([]convert.TextEntry(nil), s.state.TextEntries...)
	if s.state.Image != nil {
		img := *s.state.Image
		if img.Metadata != nil {
			img.Metadata = make(map[string]string, len(s.state.Image.Metadata))
			for k, v := range s.state.Image.Metadata {
				img.Metadata[k] = v
			}
		}
		st.Image = &img
	}
	return st
}

// EditDecimal records new decimal input and clears the alert.
func (s *Shell) EditDecimal(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DecimalInput = input
	s.state.Err = ""
}

// EditText records new text input and clears the alert.
func (s *Shell) EditText(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TextInput = input
	s.state.Err = ""
}

// ClearError dismisses the alert.
func (s *Shell) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
}

// ConvertDecimal converts the current decimal input. On failure the binary
// display is cleared and the alert is set.
func (s *Shell) ConvertDecimal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	binary, err := convert.DecimalToBinary(s.state.DecimalInput)
	if err != nil {
		s.state.Binary = ""
		s.state.Bits = nil
		s.state.Err = serr.UserMessage(err)
		s.logger().Debugf("decimal input %q rejected", s.state.DecimalInput)
		return err
	}
	s.state.Binary = binary
	s.state.Bits = convert.Bits(binary)
	s.logger().Debugf("decimal %q -> %s", s.state.DecimalInput, binary)
	return nil
}

// ConvertText converts the current text input. On failure the entries are
// cleared and the alert is set.
func (s *Shell) ConvertText() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := convert.TextToBinary(s.state.TextInput, convert.WithCodeUnitMode(s.opts.CodeUnits))
	if err != nil {
		s.state.TextEntries = nil
		s.state.TextBinary = ""
		s.state.Err = serr.UserMessage(err)
		s.logger().Debug("text input rejected")
		return err
	}
	s.state.TextEntries = entries
	s.state.TextBinary = convert.JoinBinary(entries)
	s.logger().Debugf("text converted to %d entries", len(entries))
	return nil
}

// BeginImageLoad starts a new file load. It cancels any load still in
// flight, clears the alert and returns the request id the result must be
// completed with, plus a context that is cancelled when a newer load begins.
func (s *Shell) BeginImageLoad(parent context.Context) (uint64, context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.latest++
	s.cancel = cancel
	s.state.ImageLoading = true
	s.state.Err = ""
	return s.latest, ctx
}

// CompleteImageLoad applies the result of load id. Results of superseded
// loads are dropped and false is returned.
func (s *Shell) CompleteImageLoad(id uint64, preview *convert.Preview, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.latest {
		s.logger().With(log.F("request", id), log.F("latest", s.latest)).Debug("dropping stale image load")
		return false
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state.ImageLoading = false

	if err != nil {
		s.state.Image = nil
		s.state.Err = serr.UserMessage(err)
		s.logger().With(log.F("request", id)).Debugf("image load failed: %v", err)
		return true
	}
	if preview != nil && !preview.IsImage() {
		s.logger().With(log.F("file", preview.Name), log.F("mime", preview.MIME)).Warn("selected file is not an image")
	}
	s.state.Image = preview
	return true
}

// LoadImage reads path and applies the result. It blocks until the read is
// done; a newer load started meanwhile wins.
func (s *Shell) LoadImage(ctx context.Context, path string) (*convert.Preview, error) {
	id, loadCtx := s.BeginImageLoad(ctx)
	preview, err := convert.LoadFile(loadCtx, path, s.opts.Preview)
	s.CompleteImageLoad(id, preview, err)
	return preview, err
}

func (s *Shell) logger() *log.Logger {
	return log.LogWithFields(log.F("session", s.id))
}
