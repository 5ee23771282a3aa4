package xdf

// formatterState accumulates output runs for one formatting call.
//
// Whitespace and paragraph decisions are buffered rather than emitted:
// appendSingleSpace and markParagraphBoundary only record intent, and the
// pending state is flushed when the next real content arrives. This keeps
// the run sequence free of leading, trailing, and doubled separators
// without any look-ahead in the tree walk.
type formatterState struct {
	runs []Run

	pendingParagraphBreak      bool
	pendingSingleSpace         bool
	anyNonWhitespaceSinceBreak bool

	resolve      ResolveFunc
	render       RenderFunc
	format       DisplayFormat
	pos          *Position
	withPosition bool
}

// atBeginning reports whether nothing has been emitted yet.
func (st *formatterState) atBeginning() bool {
	return len(st.runs) == 0
}

// appendSingleSpace records a pending single space. Nothing is emitted
// until the next appendText or appendRuns call.
func (st *formatterState) appendSingleSpace() {
	st.pendingSingleSpace = true
}

// markParagraphBoundary records a pending paragraph break. When no
// non-whitespace content has been emitted since the previous boundary the
// call is a no-op, so empty and duplicate <para> markers collapse.
func (st *formatterState) markParagraphBoundary() {
	if !st.anyNonWhitespaceSinceBreak {
		return
	}
	st.pendingParagraphBreak = true
	st.anyNonWhitespaceSinceBreak = false
}

// emitPending flushes buffered separator state. A pending paragraph break
// wins over a pending space and renders as a full blank line.
func (st *formatterState) emitPending() {
	if st.pendingParagraphBreak {
		st.pendingParagraphBreak = false
		st.pendingSingleSpace = false
		st.runs = append(st.runs, lineBreakRun(), lineBreakRun())
		return
	}
	if st.pendingSingleSpace {
		st.pendingSingleSpace = false
		st.runs = append(st.runs, spaceRun())
	}
}

func (st *formatterState) appendText(text string) {
	st.emitPending()
	st.runs = append(st.runs, TextRun(text))
	st.anyNonWhitespaceSinceBreak = true
}

func (st *formatterState) appendRuns(runs []Run) {
	if len(runs) == 0 {
		return
	}
	st.emitPending()
	st.runs = append(st.runs, runs...)
	st.anyNonWhitespaceSinceBreak = true
}
