package xdf

// Run is one atomic unit of formatted output. Runs are immutable once
// emitted; Space and LineBreak runs carry their literal rendering in Text.
type Run struct {
	Text  string
	Kind  RunKind
	Class RunClass
}

type runKind uint8

// RunKind is the exported alias of runKind for tooling and reference renderers.
type RunKind = runKind

const (
	runText runKind = iota
	runSpace
	runLineBreak
)

const (
	// RunText represents resolved or literal text content.
	RunText runKind = runText
	// RunSpace represents a single collapsed space.
	RunSpace runKind = runSpace
	// RunLineBreak represents one half of a paragraph separator.
	RunLineBreak runKind = runLineBreak
)

type runClass uint8

// RunClass is the exported alias of runClass for tooling and reference renderers.
type RunClass = runClass

const (
	classPlain runClass = iota
	classKeyword
	classTypeName
	classMemberName
	classParameter
	classPunctuation
)

const (
	// ClassPlain represents unclassified text.
	ClassPlain runClass = classPlain
	// ClassKeyword represents language keywords in a rendered signature.
	ClassKeyword runClass = classKeyword
	// ClassTypeName represents type names in a rendered signature.
	ClassTypeName runClass = classTypeName
	// ClassMemberName represents member names in a rendered signature.
	ClassMemberName runClass = classMemberName
	// ClassParameter represents parameter names in a rendered signature.
	ClassParameter runClass = classParameter
	// ClassPunctuation represents signature punctuation.
	ClassPunctuation runClass = classPunctuation
)

const (
	spaceText     = " "
	lineBreakText = "\r\n"
)

// TextRun returns a plain text run.
func TextRun(text string) Run {
	return Run{Text: text, Kind: runText}
}

// ClassifiedRun returns a text run carrying a display classification.
func ClassifiedRun(text string, class RunClass) Run {
	return Run{Text: text, Kind: runText, Class: class}
}

func spaceRun() Run {
	return Run{Text: spaceText, Kind: runSpace}
}

func lineBreakRun() Run {
	return Run{Text: lineBreakText, Kind: runLineBreak}
}
