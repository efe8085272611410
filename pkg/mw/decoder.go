// decoder.go walks sense sequences and builds SenseNode trees.
package mw

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultMaxDepth bounds recursion into nested pseq, bs and sense structures.
const DefaultMaxDepth = 32

// ErrNotSequence is returned when a definition's sense sequence is not a JSON array.
var ErrNotSequence = errors.New("sense sequence is not an array")

// Decoder converts sense sequences into SenseNode trees.
// The zero value is usable and logs nothing.
type Decoder struct {
	MaxDepth int
	Logger   zerolog.Logger
}

// NewDecoder returns a Decoder with the default depth limit.
func NewDecoder(logger zerolog.Logger) *Decoder {
	return &Decoder{MaxDepth: DefaultMaxDepth, Logger: logger}
}

// DecodeResult contains the decoded nodes and any warnings about skipped input.
type DecodeResult struct {
	Nodes    []*SenseNode
	Warnings []string

	logger zerolog.Logger
}

// AddWarning logs a warning and stores it in the result.
func (r *DecodeResult) AddWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	r.logger.Warn().Msg(msg)
}

// addNote stores a warning for input that is routinely skipped, logging it at debug level.
func (r *DecodeResult) addNote(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	r.logger.Debug().Msg(msg)
}

// DecodeSenseSequence decodes seq with a default Decoder.
func DecodeSenseSequence(seq SenseSequence) []*SenseNode {
	var d Decoder
	return d.Decode(seq).Nodes
}

// DecodeRawSequence decodes a sense sequence straight from JSON. It fails
// only when raw is not a JSON array.
func DecodeRawSequence(raw json.RawMessage) ([]*SenseNode, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotSequence
	}
	var seq SenseSequence
	if err := json.Unmarshal(trimmed, &seq); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSequence, err)
	}
	return DecodeSenseSequence(seq), nil
}

// Decode converts one sense sequence. Sibling order is preserved; entries
// that cannot be decoded are skipped and reported in Warnings.
func (d *Decoder) Decode(seq SenseSequence) *DecodeResult {
	result := &DecodeResult{logger: d.Logger}
	seen := make(map[string]bool)

	for i, v := range seq {
		node := d.decodeVariant(v, 1, result)
		if node == nil {
			continue
		}
		if node.Number != "" {
			if seen[node.Number] {
				result.AddWarning("duplicate sense number %q at position %d", node.Number, i)
			}
			seen[node.Number] = true
		}
		result.Nodes = append(result.Nodes, node)
	}
	return result
}

// DecodeDefinition decodes every sense sequence of a definition in order.
func (d *Decoder) DecodeDefinition(def Definition) ([][]*SenseNode, []string) {
	var (
		sequences [][]*SenseNode
		warnings  []string
	)
	for _, seq := range def.SenseSequences {
		result := d.Decode(seq)
		sequences = append(sequences, result.Nodes)
		warnings = append(warnings, result.Warnings...)
	}
	return sequences, warnings
}

func (d *Decoder) maxDepth() int {
	if d.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return d.MaxDepth
}

// decodeVariant builds the node for one variant at the given depth.
// Returns nil for variants that are skipped.
func (d *Decoder) decodeVariant(v SenseVariant, depth int, r *DecodeResult) *SenseNode {
	switch v.Kind {
	case VariantSense:
		return d.decodeSense(v.Sense, depth, r)

	case VariantBindingSubstitute:
		bs := v.BindingSubstitute
		node := &SenseNode{
			Kind: NodeBindingSubstitute,
			Body: decodeBody(bs.DefiningText, r),
		}
		if bs.Sense != nil {
			d.addChildren(node, []SenseVariant{{Kind: VariantSense, Tag: "sense", Sense: bs.Sense}}, depth, r)
		}
		return node

	case VariantTruncatedSense:
		sen := v.Truncated
		return &SenseNode{
			Kind:   NodeTruncatedSense,
			Number: sen.Number,
			Labels: sen.SubjectLabels,
			Body:   decodeBody(sen.DefiningText, r),
		}

	case VariantParenthesized:
		group := &SenseNode{Kind: NodeGroup}
		d.addChildren(group, v.Sequence, depth, r)
		return group
	}

	switch _, known := variantTags[v.Tag]; {
	case v.Tag == "":
		r.AddWarning("skipping malformed sense variant")
	case known:
		r.AddWarning("skipping %q sense variant with malformed payload", v.Tag)
	default:
		r.AddWarning("skipping sense variant with unknown tag %q", v.Tag)
	}
	return nil
}

// decodeSense builds a sense node with its divided sense and nested pseq.
func (d *Decoder) decodeSense(s *Sense, depth int, r *DecodeResult) *SenseNode {
	node := &SenseNode{
		Kind:             NodeSense,
		Number:           s.Number,
		GrammaticalLabel: s.GrammaticalLabel,
		Body:             decodeBody(s.DefiningText, r),
	}
	node.Labels = append(node.Labels, s.GeneralLabels...)
	node.Labels = append(node.Labels, s.SubjectLabels...)

	if s.DividedSense != nil {
		node.Divided = &DividedNode{
			Divider: s.DividedSense.Divider,
			Body:    decodeBody(s.DividedSense.DefiningText, r),
		}
	}
	if len(s.Etymology) > 0 {
		node.Body = append(node.Body, decodeBody(s.Etymology, r)...)
	}
	if len(s.Parenthesized) > 0 {
		d.addChildren(node, s.Parenthesized, depth, r)
	}
	return node
}

// addChildren decodes seq as the ordered children of parent, stopping at the depth limit.
func (d *Decoder) addChildren(parent *SenseNode, seq []SenseVariant, depth int, r *DecodeResult) {
	if depth >= d.maxDepth() {
		parent.Truncated = true
		r.AddWarning("sense nesting exceeds %d levels; dropping %d nested entries", d.maxDepth(), len(seq))
		return
	}
	for _, v := range seq {
		if child := d.decodeVariant(v, depth+1, r); child != nil {
			parent.Children = append(parent.Children, child)
		}
	}
}

// decodeBody converts defining text into blocks, one per element.
func decodeBody(dt DefiningTextSequence, r *DecodeResult) []Block {
	var blocks []Block
	for _, elem := range dt {
		switch elem.Kind {
		case DefiningTextText:
			blocks = append(blocks, Block{Kind: BlockText, Text: Transform(elem.Text)})
		case DefiningTextIllustration:
			block := Block{Kind: BlockIllustrations}
			for _, vis := range elem.Illustrations {
				ill := Illustration{Text: Transform(vis.Text)}
				if vis.Attribution != nil {
					ill.Attribution = FormatAttribution(*vis.Attribution)
				}
				block.Illustrations = append(block.Illustrations, ill)
			}
			blocks = append(blocks, block)
		default:
			r.addNote("skipping defining text element %q", elem.Tag)
		}
	}
	return blocks
}
