package xdf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedInput reports a documentation fragment that is not
// well-formed XML. Errors returned by the parser wrap this sentinel.
var ErrMalformedInput = errors.New("malformed documentation fragment")

// syntheticRoot wraps the fragment so multiple top-level nodes parse.
const syntheticRoot = "root"

// node is one parsed fragment node. Elements carry a name, attributes and
// children; text nodes carry only text. The tree is never mutated after
// parsing.
type node struct {
	name     string
	attrs    []xml.Attr
	text     string
	children []*node
}

func (n *node) isText() bool {
	return n.name == ""
}

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// parseFragment parses raw comment text into a tree rooted at a synthetic
// wrapper element, so the fragment's top-level nodes become the root's
// direct children. Character data is preserved verbatim; comments,
// directives and processing instructions contribute nothing.
func parseFragment(raw string) (*node, error) {
	dec := xml.NewDecoder(strings.NewReader("<" + syntheticRoot + ">" + raw + "</" + syntheticRoot + ">"))

	// The first token is always the wrapper's start element; consume it
	// without creating a node for it.
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if _, ok := tok.(xml.StartElement); !ok {
		return nil, fmt.Errorf("%w: unexpected %T before fragment", ErrMalformedInput, tok)
	}

	root := &node{name: syntheticRoot}
	stack := []*node{root}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		parent := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			child := &node{name: t.Name.Local}
			if len(t.Attr) > 0 {
				child.attrs = append([]xml.Attr(nil), t.Attr...)
			}
			parent.children = append(parent.children, child)
			stack = append(stack, child)
		case xml.EndElement:
			if len(stack) == 1 {
				// The wrapper itself closes; nothing may follow it.
				if _, err := dec.Token(); err != io.EOF {
					return nil, fmt.Errorf("%w: content after fragment end", ErrMalformedInput)
				}
				return root, nil
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			parent.children = append(parent.children, &node{text: string(t)})
		}
	}
	return nil, fmt.Errorf("%w: unclosed element <%s>", ErrMalformedInput, stack[len(stack)-1].name)
}
