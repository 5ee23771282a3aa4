package xdf

// walkNode dispatches one fragment node into the accumulator. Reference
// tags are leaf-like: their children are never walked, even when present.
func walkNode(st *formatterState, n *node) {
	if n.isText() {
		appendTextNode(st, n.text)
		return
	}
	switch n.name {
	case "see", "seealso", "paramref", "typeparamref":
		appendReference(st, n, referenceAttr[n.name])
	case "para":
		walkPara(st, n)
	default:
		walkChildren(st, n)
	}
}

func walkChildren(st *formatterState, n *node) {
	for _, child := range n.children {
		walkNode(st, child)
	}
}

// walkPara marks a paragraph boundary on entry and exit. A <para> whose
// children emit no non-whitespace content must contribute nothing at all,
// so both boundary flags are restored to their pre-entry values in that
// case: the pending break so no blank line leaks into following content,
// and the non-whitespace tracking so a later sibling's entry boundary
// still fires.
func walkPara(st *formatterState, n *node) {
	prevPending := st.pendingParagraphBreak
	prevAny := st.anyNonWhitespaceSinceBreak
	emitted := len(st.runs)
	st.markParagraphBoundary()
	walkChildren(st, n)
	if len(st.runs) == emitted {
		st.pendingParagraphBreak = prevPending
		st.anyNonWhitespaceSinceBreak = prevAny
		return
	}
	st.markParagraphBoundary()
}
