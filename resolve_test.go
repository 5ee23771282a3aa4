package xdf

import "testing"

type fakeSymbol struct {
	name string
	ctor bool
}

func (s fakeSymbol) Name() string      { return s.name }
func (s fakeSymbol) Constructor() bool { return s.ctor }

func TestResolvedReferenceUsesRenderer(t *testing.T) {
	var gotID string
	resolve := func(id string) (Symbol, bool) {
		gotID = id
		return fakeSymbol{name: "String"}, true
	}
	render := func(sym Symbol, format DisplayFormat, pos *Position) []Run {
		return []Run{
			ClassifiedRun("System", ClassTypeName),
			ClassifiedRun(".", ClassPunctuation),
			ClassifiedRun(sym.Name(), ClassTypeName),
		}
	}
	out, err := Format(`a <see cref="T:System.String"/> b`, WithResolver(resolve), WithRenderer(render))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "a System.String b" {
		t.Fatalf("expected %q, got %q", "a System.String b", out)
	}
	if gotID != "T:System.String" {
		t.Fatalf("expected resolver to see full id with prefix, got %q", gotID)
	}
}

func TestResolutionFailureFallsBackToLiteral(t *testing.T) {
	resolve := func(id string) (Symbol, bool) { return nil, false }
	render := func(sym Symbol, format DisplayFormat, pos *Position) []Run {
		t.Fatalf("renderer must not be called on resolution failure")
		return nil
	}
	out, err := Format(`<see cref="T:My.Type"/>`, WithResolver(resolve), WithRenderer(render))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "My.Type" {
		t.Fatalf("expected %q, got %q", "My.Type", out)
	}
}

func TestConstructorForcesParameterDisplay(t *testing.T) {
	var got DisplayFormat
	resolve := func(id string) (Symbol, bool) {
		return fakeSymbol{name: "Type", ctor: true}, true
	}
	render := func(sym Symbol, format DisplayFormat, pos *Position) []Run {
		got = format
		return []Run{TextRun("Type(int value)")}
	}
	out, err := Format(`<see cref="M:My.Type.#ctor(System.Int32)"/>`,
		WithResolver(resolve), WithRenderer(render),
		WithDisplayFormat(DisplayFormat{MemberOptions: MemberModifiers}))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "Type(int value)" {
		t.Fatalf("expected %q, got %q", "Type(int value)", out)
	}
	if got.MemberOptions&MemberParameters == 0 {
		t.Fatalf("expected MemberParameters to be forced for constructors")
	}
	if got.MemberOptions&MemberExplicitInterface == 0 {
		t.Fatalf("expected MemberExplicitInterface to be forced for constructors")
	}
	if got.MemberOptions&MemberModifiers == 0 {
		t.Fatalf("expected ambient member options to be preserved")
	}
}

func TestNonConstructorKeepsAmbientFormat(t *testing.T) {
	var got DisplayFormat
	resolve := func(id string) (Symbol, bool) {
		return fakeSymbol{name: "Length"}, true
	}
	render := func(sym Symbol, format DisplayFormat, pos *Position) []Run {
		got = format
		return []Run{TextRun(sym.Name())}
	}
	if _, err := Format(`<see cref="P:My.Type.Length"/>`, WithResolver(resolve), WithRenderer(render)); err != nil {
		t.Fatalf("format: %v", err)
	}
	if got.MemberOptions != 0 {
		t.Fatalf("expected zero member options, got %v", got.MemberOptions)
	}
}

func TestPositionOnlyForwardedByFormatRuns(t *testing.T) {
	var got *Position
	resolve := func(id string) (Symbol, bool) {
		return fakeSymbol{name: "x"}, true
	}
	render := func(sym Symbol, format DisplayFormat, pos *Position) []Run {
		got = pos
		return []Run{TextRun(sym.Name())}
	}
	opts := []Option{WithResolver(resolve), WithRenderer(render), WithPosition(Position{Offset: 42})}

	if _, err := FormatRuns(`<paramref name="x"/>`, opts...); err != nil {
		t.Fatalf("format runs: %v", err)
	}
	if got == nil || got.Offset != 42 {
		t.Fatalf("expected position with offset 42, got %v", got)
	}

	got = nil
	if _, err := Format(`<paramref name="x"/>`, opts...); err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no position in string mode, got %v", got)
	}
}

func TestTrimDocPrefix(t *testing.T) {
	cases := map[string]string{
		"T:My.Type":  "My.Type",
		"M:A.B.C":    "A.B.C",
		"value":      "value",
		"1:NotADoc":  "1:NotADoc",
		"TT:Invalid": "TT:Invalid",
		"t:lower":    "lower",
	}
	for id, want := range cases {
		if got := trimDocPrefix(id); got != want {
			t.Fatalf("trimDocPrefix(%q): expected %q, got %q", id, want, got)
		}
	}
}
