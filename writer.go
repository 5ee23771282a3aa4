package xdf

import (
	"fmt"
	"io"

	"github.com/muesli/reflow/ansi"
)

const ansiReset = "\x1b[0m"

// RunWriter writes run sequences to an io.Writer with theme styling and
// word wrapping. LineBreak runs render as plain newlines on terminals.
type RunWriter struct {
	w      io.Writer
	width  int
	styles Styles

	style          string
	lineWidth      int
	word           []Run
	wordWidth      int
	spacePending   bool
	lastWasNewline bool
}

// NewRunWriter creates a writer wrapping at width (0 disables wrapping)
// using the given theme. A nil theme falls back to the default.
func NewRunWriter(w io.Writer, width int, t Theme) *RunWriter {
	if t == nil {
		t = DefaultTheme()
	}
	return &RunWriter{
		w:              w,
		width:          width,
		styles:         t.Styles(),
		lastWasNewline: true,
	}
}

// WriteRuns writes a run sequence. Consecutive text runs buffer into one
// word so a symbol rendered as several runs wraps as a unit at space
// boundaries.
func (rw *RunWriter) WriteRuns(runs []Run) error {
	for _, r := range runs {
		if err := rw.writeRun(r); err != nil {
			return err
		}
	}
	return nil
}

func (rw *RunWriter) writeRun(r Run) error {
	switch r.Kind {
	case runSpace:
		if err := rw.flushWord(); err != nil {
			return err
		}
		rw.spacePending = true
		return nil
	case runLineBreak:
		if err := rw.flushWord(); err != nil {
			return err
		}
		rw.spacePending = false
		return rw.newline()
	default:
		rw.word = append(rw.word, r)
		rw.wordWidth += ansi.PrintableRuneWidth(r.Text)
		return nil
	}
}

// Flush writes any buffered word, resets the style, and terminates the
// final line.
func (rw *RunWriter) Flush() error {
	if err := rw.flushWord(); err != nil {
		return err
	}
	if rw.style != "" {
		if _, err := io.WriteString(rw.w, ansiReset); err != nil {
			return err
		}
		rw.style = ""
	}
	if !rw.lastWasNewline {
		if _, err := io.WriteString(rw.w, "\n"); err != nil {
			return err
		}
		rw.lastWasNewline = true
	}
	return nil
}

func (rw *RunWriter) flushWord() error {
	if len(rw.word) == 0 {
		return nil
	}
	spaceWidth := 0
	if rw.spacePending {
		spaceWidth = 1
	}
	if rw.width > 0 && rw.lineWidth > 0 && rw.lineWidth+spaceWidth+rw.wordWidth > rw.width {
		if err := rw.newline(); err != nil {
			return err
		}
		rw.spacePending = false
	}
	if rw.spacePending {
		rw.spacePending = false
		if err := rw.emitText(spaceText, rw.styles.Text); err != nil {
			return err
		}
	}
	for _, r := range rw.word {
		if err := rw.emitText(r.Text, rw.styles.forClass(r.Class)); err != nil {
			return err
		}
	}
	rw.word = rw.word[:0]
	rw.wordWidth = 0
	return nil
}

func (rw *RunWriter) emitText(text string, style Style) error {
	if text == "" {
		return nil
	}
	if style.Prefix != rw.style {
		if rw.style != "" {
			if _, err := io.WriteString(rw.w, ansiReset); err != nil {
				return err
			}
		}
		rw.style = style.Prefix
		if rw.style != "" {
			if _, err := io.WriteString(rw.w, rw.style); err != nil {
				return err
			}
		}
	}
	if _, err := io.WriteString(rw.w, text); err != nil {
		return err
	}
	rw.lineWidth += ansi.PrintableRuneWidth(text)
	rw.lastWasNewline = false
	return nil
}

func (rw *RunWriter) newline() error {
	if rw.style != "" {
		if _, err := io.WriteString(rw.w, ansiReset); err != nil {
			return err
		}
		rw.style = ""
	}
	if _, err := io.WriteString(rw.w, "\n"); err != nil {
		return err
	}
	rw.lineWidth = 0
	rw.lastWasNewline = true
	return nil
}

// RenderRequest configures Render.
type RenderRequest struct {
	Raw     string
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []Option
}

// Render formats raw documentation XML and writes themed, wrapped output.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: Writer is nil")
	}
	runs, err := FormatRuns(req.Raw, req.Options...)
	if err != nil {
		return err
	}
	rw := NewRunWriter(req.Writer, req.Width, req.Theme)
	if err := rw.WriteRuns(runs); err != nil {
		return err
	}
	return rw.Flush()
}
