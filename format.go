package xdf

import "strings"

// Option configures one formatting call.
type Option func(*formatConfig)

type formatConfig struct {
	resolve ResolveFunc
	render  RenderFunc
	format  DisplayFormat
	pos     *Position
}

// WithResolver sets the symbol resolver collaborator.
func WithResolver(fn ResolveFunc) Option {
	return func(cfg *formatConfig) {
		cfg.resolve = fn
	}
}

// WithRenderer sets the symbol renderer collaborator.
func WithRenderer(fn RenderFunc) Option {
	return func(cfg *formatConfig) {
		cfg.render = fn
	}
}

// WithDisplayFormat sets the display format passed to the renderer.
func WithDisplayFormat(format DisplayFormat) Option {
	return func(cfg *formatConfig) {
		cfg.format = format
	}
}

// WithPosition sets the cursor position used for minimally qualified
// rendering. Only FormatRuns forwards it; Format always renders without
// position context.
func WithPosition(pos Position) Option {
	return func(cfg *formatConfig) {
		p := pos
		cfg.pos = &p
	}
}

// Format renders raw documentation XML to a single string. Paragraph
// separators render as blank lines and inline whitespace collapses to
// single spaces. Empty input is a no-op signal and yields an empty
// string with no error.
func Format(raw string, opts ...Option) (string, error) {
	if raw == "" {
		return "", nil
	}
	runs, err := formatRuns(raw, opts, false)
	if err != nil {
		return "", err
	}
	return Flatten(runs), nil
}

// FormatRuns renders raw documentation XML to a run sequence for rich
// presentation. Empty input yields a nil slice with no error.
func FormatRuns(raw string, opts ...Option) ([]Run, error) {
	if raw == "" {
		return nil, nil
	}
	return formatRuns(raw, opts, true)
}

func formatRuns(raw string, opts []Option, withPosition bool) ([]Run, error) {
	if err := ValidateInput([]byte(raw)); err != nil {
		return nil, err
	}
	root, err := parseFragment(raw)
	if err != nil {
		return nil, err
	}
	cfg := formatConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	st := &formatterState{
		resolve:      cfg.resolve,
		render:       cfg.render,
		format:       cfg.format,
		pos:          cfg.pos,
		withPosition: withPosition,
	}
	walkNode(st, root)
	return st.runs, nil
}

// Flatten joins a run sequence into one string. Every run carries its
// literal rendering, so this is plain concatenation.
func Flatten(runs []Run) string {
	if len(runs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
