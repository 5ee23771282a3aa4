package xdf

import (
	"unicode"
	"unicode/utf8"
)

// appendTextNode feeds one raw text node through the whitespace collapse.
//
// Any run of whitespace becomes at most one space. Whitespace seen before
// the first non-whitespace character of the node is dropped only while
// nothing at all has been emitted yet; once output exists it becomes a
// deferred single space so sibling boundaries never double up. Trailing
// whitespace of the node is likewise deferred, letting the next sibling
// absorb or emit it.
func appendTextNode(st *formatterState, text string) {
	var buf []byte
	pendingSpace := false
	seenNonWhitespace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if seenNonWhitespace {
				pendingSpace = true
			} else if !st.atBeginning() {
				st.appendSingleSpace()
			}
			continue
		}
		if pendingSpace {
			buf = append(buf, ' ')
			pendingSpace = false
		}
		buf = utf8.AppendRune(buf, r)
		seenNonWhitespace = true
	}
	if len(buf) > 0 {
		st.appendText(string(buf))
	}
	if pendingSpace {
		st.appendSingleSpace()
	}
}
