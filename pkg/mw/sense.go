// sense.go defines the renderable sense tree produced by the decoder.
package mw

// NodeKind indicates what a SenseNode represents.
type NodeKind int

const (
	NodeSense             NodeKind = iota // "sense"
	NodeBindingSubstitute                 // "bs"
	NodeTruncatedSense                    // "sen"
	NodeGroup                             // synthetic parent of a top-level "pseq"
)

// String returns the kind name used in JSON output.
func (k NodeKind) String() string {
	switch k {
	case NodeBindingSubstitute:
		return "bindingSubstitute"
	case NodeTruncatedSense:
		return "truncatedSense"
	case NodeGroup:
		return "group"
	default:
		return "sense"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// BlockKind indicates what a Block holds.
type BlockKind int

const (
	BlockText          BlockKind = iota // defining text
	BlockIllustrations                  // verbal illustrations
)

// MarshalText implements encoding.TextMarshaler.
func (k BlockKind) MarshalText() ([]byte, error) {
	if k == BlockIllustrations {
		return []byte("illustrations"), nil
	}
	return []byte("text"), nil
}

// Illustration is a rendered verbal illustration.
type Illustration struct {
	Text        []InlineNode `json:"text"`
	Attribution []InlineNode `json:"attribution,omitempty"`
}

// Block is one row of a sense body. The view layer decides row breaks;
// the sense number belongs on the row of the first block.
type Block struct {
	Kind          BlockKind      `json:"kind"`
	Text          []InlineNode   `json:"text,omitempty"`
	Illustrations []Illustration `json:"illustrations,omitempty"`
}

// DividedNode is a rendered divided sense ("sdsense").
type DividedNode struct {
	Divider string  `json:"divider"`
	Body    []Block `json:"body,omitempty"`
}

// SenseNode is one node of the decoded sense tree.
type SenseNode struct {
	Kind             NodeKind     `json:"kind"`
	Number           string       `json:"number,omitempty"`
	Labels           []string     `json:"labels,omitempty"`
	GrammaticalLabel string       `json:"sgram,omitempty"`
	Body             []Block      `json:"body,omitempty"`
	Divided          *DividedNode `json:"divided,omitempty"`
	Children         []*SenseNode `json:"children,omitempty"`
	Truncated        bool         `json:"truncated,omitempty"` // depth limit reached; children dropped
}

// Row reports whether the node has a visible row of its own.
// Numberless, bodiless senses still render their divided sense and children.
func (n *SenseNode) Row() bool {
	if n.Kind == NodeGroup {
		return false
	}
	return n.Number != "" || len(n.Body) > 0
}

// Walk calls fn for n and every descendant in display order, with the
// nesting depth of each node. Walking stops early if fn returns false.
func (n *SenseNode) Walk(fn func(node *SenseNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n *SenseNode) walk(fn func(*SenseNode, int) bool, depth int) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(fn, depth+1) {
			return false
		}
	}
	return true
}
