package xdf

// Symbol is a resolved declaration. The formatter needs only enough
// surface to special-case constructor references; how the rest of the
// symbol is displayed belongs to the injected renderer.
type Symbol interface {
	// Name returns the declared name of the symbol.
	Name() string
	// Constructor reports whether the symbol is a constructor.
	Constructor() bool
}

// ResolveFunc maps a documentation identifier (a full cref value,
// including any "T:"-style prefix, or a bare parameter name) to a symbol.
// It must be a pure lookup and may report not found.
type ResolveFunc func(id string) (Symbol, bool)

// RenderFunc turns a resolved symbol into display runs under a given
// format. pos is nil when no cursor position is available for minimal
// qualification. It must be pure.
type RenderFunc func(sym Symbol, format DisplayFormat, pos *Position) []Run

// Position identifies a cursor location used for import-aware minimal
// qualification of rendered symbols.
type Position struct {
	Offset int
}

// MemberOption flags select how much of a member signature is rendered.
type MemberOption uint8

const (
	// MemberParameters includes the parameter list.
	MemberParameters MemberOption = 1 << iota
	// MemberExplicitInterface includes explicit interface qualification.
	MemberExplicitInterface
	// MemberContainingType includes the containing type name.
	MemberContainingType
	// MemberModifiers includes member modifiers.
	MemberModifiers
)

// Qualification selects how type names are qualified in rendered output.
type Qualification uint8

const (
	// QualifyMinimal qualifies names only as far as the position requires.
	QualifyMinimal Qualification = iota
	// QualifyNameOnly renders bare names.
	QualifyNameOnly
	// QualifyFull renders fully qualified names.
	QualifyFull
)

// DisplayFormat configures symbol rendering. It is read-only for the
// duration of one formatting call.
type DisplayFormat struct {
	Qualification Qualification
	MemberOptions MemberOption
}

var referenceAttr = map[string]string{
	"see":          "cref",
	"seealso":      "cref",
	"paramref":     "name",
	"typeparamref": "name",
}

// appendReference resolves one reference tag into the accumulator.
//
// A missing identifying attribute contributes nothing. When a resolver
// and renderer are available and the lookup succeeds, the rendered runs
// are spliced in; otherwise the identifier, with any one-letter doc-ID
// prefix stripped, is appended as literal text.
func appendReference(st *formatterState, n *node, attrName string) {
	id, ok := n.attr(attrName)
	if !ok {
		return
	}
	if st.resolve != nil && st.render != nil {
		if sym, found := st.resolve(id); found {
			format := st.format
			if sym.Constructor() {
				// Constructor references always show a call-shape signature.
				format.MemberOptions |= MemberParameters | MemberExplicitInterface
			}
			var pos *Position
			if st.withPosition {
				pos = st.pos
			}
			st.appendRuns(st.render(sym, format, pos))
			return
		}
	}
	if text := trimDocPrefix(id); text != "" {
		st.appendText(text)
	}
}

// trimDocPrefix strips a "X:" documentation-ID type marker.
func trimDocPrefix(id string) string {
	if len(id) >= 2 && id[1] == ':' && isASCIILetter(id[0]) {
		return id[2:]
	}
	return id
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
