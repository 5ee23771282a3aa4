// Package xdf formats XML documentation comments for display.
//
// The input is the body of a structured documentation comment: a fragment
// of XML-flavored markup with zero or more top-level nodes. The formatter
// normalizes whitespace, turns <para> elements into blank-line paragraph
// separators, and resolves symbol-reference tags (<see>, <seealso>,
// <paramref>, <typeparamref>) through injected resolver and renderer
// collaborators, falling back to the literal identifier when resolution
// is unavailable.
//
// Output is either a single flattened string or a sequence of typed
// display runs suitable for rich presentation such as themed tooltips.
//
// Core properties:
//   - Whitespace collapses to single spaces; edges of the output are bare
//   - Empty paragraphs vanish; real paragraphs get one blank-line separator
//   - Reference resolution is a pure, injected lookup with literal fallback
//   - One formatting call, one accumulator, no shared state
//
// Example:
//
//	text, err := xdf.Format(`Returns the <see cref="T:System.String"/> form.`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(text) // Returns the System.String form.
//
// Rich output with themed ANSI rendering:
//
//	runs, err := xdf.FormatRuns(raw, xdf.WithResolver(resolve), xdf.WithRenderer(render))
//	if err != nil {
//		log.Fatal(err)
//	}
//	w := xdf.NewRunWriter(os.Stdout, 80, xdf.DefaultTheme())
//	if err := w.WriteRuns(runs); err != nil {
//		log.Fatal(err)
//	}
//	err = w.Flush()
package xdf
