// variant.go decodes the API's [tag, payload] tuples into closed variant types.
package mw

import (
	"bytes"
	"encoding/json"
)

// VariantKind identifies which sense variant a tuple carried.
type VariantKind int

const (
	VariantUnknown           VariantKind = iota // unrecognized tag; skipped by the decoder
	VariantSense                                // ["sense", {...}]
	VariantBindingSubstitute                    // ["bs", {...}]
	VariantTruncatedSense                       // ["sen", {...}]
	VariantParenthesized                        // ["pseq", [...]]
)

var variantTags = map[string]VariantKind{
	"sense": VariantSense,
	"bs":    VariantBindingSubstitute,
	"sen":   VariantTruncatedSense,
	"pseq":  VariantParenthesized,
}

// String returns the API tag for the kind.
func (k VariantKind) String() string {
	for tag, kind := range variantTags {
		if kind == k {
			return tag
		}
	}
	return "unknown"
}

// SenseVariant is one element of a sense sequence. Exactly one payload field
// is set, matching Kind. Unknown variants keep their tag and raw payload.
type SenseVariant struct {
	Kind              VariantKind
	Tag               string
	Sense             *Sense
	BindingSubstitute *BindingSubstitute
	Truncated         *TruncatedSense
	Sequence          ParenthesizedSequence
	Raw               json.RawMessage
}

// SenseSequence is an ordered group of sense variants sharing one numbering context.
type SenseSequence []SenseVariant

// Sense is one numbered meaning of a headword.
type Sense struct {
	Number           string                `json:"sn,omitempty"`
	DefiningText     DefiningTextSequence  `json:"dt,omitempty"`
	SubjectLabels    []string              `json:"sls,omitempty"`
	GeneralLabels    []string              `json:"lbs,omitempty"`
	GrammaticalLabel string                `json:"sgram,omitempty"`
	DividedSense     *DividedSense         `json:"sdsense,omitempty"`
	Parenthesized    ParenthesizedSequence `json:"pseq,omitempty"`
	Etymology        DefiningTextSequence  `json:"et,omitempty"`
}

// BindingSubstitute introduces a nested sense by reference.
type BindingSubstitute struct {
	DefiningText DefiningTextSequence `json:"dt,omitempty"`
	Sense        *Sense               `json:"sense,omitempty"`
}

// TruncatedSense carries a number and labels but no nesting.
type TruncatedSense struct {
	Number        string               `json:"sn,omitempty"`
	DefiningText  DefiningTextSequence `json:"dt,omitempty"`
	SubjectLabels []string             `json:"sls,omitempty"`
}

// DividedSense is a sub-meaning introduced by a short divider such as "also".
type DividedSense struct {
	Divider      string               `json:"sd"`
	DefiningText DefiningTextSequence `json:"dt,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler. Only a payload that is not an
// object fails; wrong-typed members are left empty.
func (s *Sense) UnmarshalJSON(data []byte) error {
	m, err := objectMembers(data)
	if err != nil {
		return err
	}
	*s = Sense{
		SubjectLabels: labels(m, "sls"),
		GeneralLabels: labels(m, "lbs"),
	}
	s.Number, _ = member[string](m, "sn")
	s.DefiningText, _ = member[DefiningTextSequence](m, "dt")
	s.GrammaticalLabel, _ = member[string](m, "sgram")
	s.Parenthesized, _ = member[ParenthesizedSequence](m, "pseq")
	s.Etymology, _ = member[DefiningTextSequence](m, "et")
	if ds, ok := member[DividedSense](m, "sdsense"); ok {
		s.DividedSense = &ds
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (bs *BindingSubstitute) UnmarshalJSON(data []byte) error {
	m, err := objectMembers(data)
	if err != nil {
		return err
	}
	*bs = BindingSubstitute{}
	bs.DefiningText, _ = member[DefiningTextSequence](m, "dt")
	if s, ok := member[Sense](m, "sense"); ok {
		bs.Sense = &s
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TruncatedSense) UnmarshalJSON(data []byte) error {
	m, err := objectMembers(data)
	if err != nil {
		return err
	}
	*t = TruncatedSense{SubjectLabels: labels(m, "sls")}
	t.Number, _ = member[string](m, "sn")
	t.DefiningText, _ = member[DefiningTextSequence](m, "dt")
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DividedSense) UnmarshalJSON(data []byte) error {
	m, err := objectMembers(data)
	if err != nil {
		return err
	}
	*d = DividedSense{}
	d.Divider, _ = member[string](m, "sd")
	d.DefiningText, _ = member[DefiningTextSequence](m, "dt")
	return nil
}

// UnmarshalJSON accepts either a ["tag", payload] tuple or, inside a
// parenthesized sequence, a {"sense": {...}} wrapper. Payloads that fail to
// decode, and anything that is neither shape, become VariantUnknown.
func (v *SenseVariant) UnmarshalJSON(data []byte) error {
	*v = SenseVariant{Raw: append(json.RawMessage(nil), data...)}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '{' {
		var wrapper struct {
			Sense *Sense `json:"sense"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil || wrapper.Sense == nil {
			return nil
		}
		v.Kind = VariantSense
		v.Tag = "sense"
		v.Sense = wrapper.Sense
		return nil
	}

	tag, payload, ok := splitTuple(trimmed)
	if !ok {
		return nil
	}
	v.Tag = tag
	v.Raw = payload

	kind, known := variantTags[tag]
	if !known {
		return nil
	}

	switch kind {
	case VariantSense:
		var s Sense
		if json.Unmarshal(payload, &s) != nil {
			return nil
		}
		v.Sense = &s
	case VariantBindingSubstitute:
		var bs BindingSubstitute
		if json.Unmarshal(payload, &bs) != nil {
			return nil
		}
		v.BindingSubstitute = &bs
	case VariantTruncatedSense:
		var sen TruncatedSense
		if json.Unmarshal(payload, &sen) != nil {
			return nil
		}
		v.Truncated = &sen
	case VariantParenthesized:
		var seq ParenthesizedSequence
		if json.Unmarshal(payload, &seq) != nil {
			return nil
		}
		v.Sequence = seq
	}
	v.Kind = kind
	return nil
}

// ParenthesizedSequence is a nested group of senses rendered indented under a
// parent. Inside a sense the API sometimes repeats the "pseq" tag, so both
// [...variants] and ["pseq", [...variants]] are accepted.
type ParenthesizedSequence []SenseVariant

// UnmarshalJSON implements json.Unmarshaler. A value that is not an array
// decodes as an empty sequence so the enclosing sense survives.
func (p *ParenthesizedSequence) UnmarshalJSON(data []byte) error {
	if tag, payload, ok := splitTuple(bytes.TrimSpace(data)); ok && tag == "pseq" {
		data = payload
	}
	var seq []SenseVariant
	if json.Unmarshal(data, &seq) != nil {
		*p = nil
		return nil
	}
	*p = seq
	return nil
}

// DefiningTextKind identifies a defining text element.
type DefiningTextKind int

const (
	DefiningTextUnknown      DefiningTextKind = iota // uns, snote, ca, ... (not rendered)
	DefiningTextText                                 // ["text", "..."]
	DefiningTextIllustration                         // ["vis", [...]]
)

// VerbalIllustration is an example sentence, optionally attributed.
type VerbalIllustration struct {
	Text        string            `json:"t"`
	Attribution *AttributionQuote `json:"aq,omitempty"`
}

// DefiningTextElement is one element of a "dt" (or "et") array.
type DefiningTextElement struct {
	Kind          DefiningTextKind
	Tag           string
	Text          string
	Illustrations []VerbalIllustration
}

// DefiningTextSequence is an ordered list of defining text elements.
type DefiningTextSequence []DefiningTextElement

// UnmarshalJSON implements json.Unmarshaler. A value that is not an array
// decodes as an empty sequence.
func (d *DefiningTextSequence) UnmarshalJSON(data []byte) error {
	var elems []DefiningTextElement
	if json.Unmarshal(data, &elems) != nil {
		*d = nil
		return nil
	}
	*d = elems
	return nil
}

// UnmarshalJSON decodes a ["text", string] or ["vis", [...]] tuple.
func (e *DefiningTextElement) UnmarshalJSON(data []byte) error {
	*e = DefiningTextElement{}
	tag, payload, ok := splitTuple(bytes.TrimSpace(data))
	if !ok {
		return nil
	}
	e.Tag = tag

	switch tag {
	case "text":
		var s string
		if json.Unmarshal(payload, &s) == nil {
			e.Kind = DefiningTextText
			e.Text = s
		}
	case "vis":
		var vis []VerbalIllustration
		if json.Unmarshal(payload, &vis) == nil {
			e.Kind = DefiningTextIllustration
			e.Illustrations = vis
		}
	}
	return nil
}

// splitTuple splits a JSON array of the form ["tag", payload].
func splitTuple(data []byte) (string, json.RawMessage, bool) {
	if len(data) == 0 || data[0] != '[' {
		return "", nil, false
	}
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil || len(parts) < 2 {
		return "", nil, false
	}
	var tag string
	if err := json.Unmarshal(parts[0], &tag); err != nil {
		return "", nil, false
	}
	return tag, parts[1], true
}
