// entry.go defines the Merriam-Webster Collegiate entry shape as delivered by the API.
package mw

import (
	"strings"

	"github.com/google/uuid"
)

// Meta holds entry metadata ("meta").
type Meta struct {
	ID        string    `json:"id"`
	UUID      EntryUUID `json:"uuid"`
	Sort      string    `json:"sort,omitempty"`
	Source    string    `json:"src,omitempty"`
	Section   string    `json:"section,omitempty"`
	Stems     []string  `json:"stems,omitempty"`
	Offensive bool      `json:"offensive"`
}

// EntryUUID is an entry uuid. Empty or malformed values decode as uuid.Nil
// instead of failing the whole entry.
type EntryUUID struct {
	uuid.UUID
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *EntryUUID) UnmarshalText(data []byte) error {
	id, err := uuid.ParseBytes(data)
	if err != nil {
		u.UUID = uuid.Nil
		return nil
	}
	u.UUID = id
	return nil
}

// OrEmpty returns the canonical form, or "" for uuid.Nil.
func (u EntryUUID) OrEmpty() string {
	if u.UUID == uuid.Nil {
		return ""
	}
	return u.String()
}

// Sound references an audio file for a pronunciation.
type Sound struct {
	Audio string `json:"audio"`
	Ref   string `json:"ref,omitempty"`
	Stat  string `json:"stat,omitempty"`
}

// Pronunciation is one written pronunciation ("prs" element).
type Pronunciation struct {
	Written     string `json:"mw"`
	Sound       *Sound `json:"sound,omitempty"`
	Punctuation string `json:"pun,omitempty"`
	PreLabel    string `json:"l,omitempty"`
	PostLabel   string `json:"l2,omitempty"`
}

// HeadwordInfo holds the headword and its pronunciations ("hwi").
type HeadwordInfo struct {
	Headword       string          `json:"hw"`
	Pronunciations []Pronunciation `json:"prs,omitempty"`
}

// Variant is a variant spelling ("vrs" element).
type Variant struct {
	Variant        string          `json:"va"`
	Label          string          `json:"vl,omitempty"`
	Pronunciations []Pronunciation `json:"prs,omitempty"`
}

// Inflection is an inflected form ("ins" element).
type Inflection struct {
	Inflection     string          `json:"if,omitempty"`
	Cutback        string          `json:"ifc,omitempty"`
	Label          string          `json:"il,omitempty"`
	Pronunciations []Pronunciation `json:"prs,omitempty"`
}

// CrossReferenceTarget is one target of a cognate cross-reference.
type CrossReferenceTarget struct {
	Label  string `json:"cxl,omitempty"`
	Ref    string `json:"cxr,omitempty"`
	Target string `json:"cxt,omitempty"`
	Sense  string `json:"cxn,omitempty"`
}

// CognateCrossReference is a "cxs" element such as "past tense of".
type CognateCrossReference struct {
	Label   string                 `json:"cxl,omitempty"`
	Targets []CrossReferenceTarget `json:"cxtis,omitempty"`
}

// Subsource is the nested source of an attribution. It does not nest further.
type Subsource struct {
	Source string `json:"source,omitempty"`
	Date   string `json:"aqdate,omitempty"`
}

// AttributionQuote cites the origin of a quotation or verbal illustration.
type AttributionQuote struct {
	Author    string     `json:"auth,omitempty"`
	Source    string     `json:"source,omitempty"`
	Date      string     `json:"aqdate,omitempty"`
	Subsource *Subsource `json:"subsource,omitempty"`
}

// Quote is an example sentence from the "quotes" section.
type Quote struct {
	Text        string            `json:"t"`
	Attribution *AttributionQuote `json:"aq,omitempty"`
}

// Definition is one "def" element: ordered sense sequences plus an optional verb divider.
type Definition struct {
	SenseSequences []SenseSequence `json:"sseq"`
	VerbDivider    string          `json:"vd,omitempty"`
}

// DictionaryEntry is one lexical result for a queried word.
type DictionaryEntry struct {
	Meta             Meta                    `json:"meta"`
	Homograph        int                     `json:"hom,omitempty"`
	HeadwordInfo     HeadwordInfo            `json:"hwi"`
	AltHeadwords     []HeadwordInfo          `json:"ahws,omitempty"`
	Variants         []Variant               `json:"vrs,omitempty"`
	FunctionalLabel  string                  `json:"fl"`
	Labels           []string                `json:"lbs,omitempty"`
	SubjectLabels    []string                `json:"sls,omitempty"`
	Inflections      []Inflection            `json:"ins,omitempty"`
	CognateCrossRefs []CognateCrossReference `json:"cxs,omitempty"`
	Definitions      []Definition            `json:"def"`
	ShortDefs        []string                `json:"shortdef"`
	Quotes           []Quote                 `json:"quotes,omitempty"`
}

// CleanHeadword removes the "*" syllable markers the API embeds in headwords.
func CleanHeadword(hw string) string {
	return strings.ReplaceAll(hw, "*", "")
}

// BaseID returns the entry id without its homograph suffix ("fox:1" -> "fox").
func BaseID(id string) string {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		return id[:i]
	}
	return id
}

// UnmarshalJSON implements json.Unmarshaler. Wrong-typed members are left empty.
func (m *Meta) UnmarshalJSON(data []byte) error {
	fields, err := objectMembers(data)
	if err != nil {
		return err
	}
	*m = Meta{Stems: labels(fields, "stems")}
	m.ID, _ = member[string](fields, "id")
	m.UUID, _ = member[EntryUUID](fields, "uuid")
	m.Sort, _ = member[string](fields, "sort")
	m.Source, _ = member[string](fields, "src")
	m.Section, _ = member[string](fields, "section")
	m.Offensive, _ = member[bool](fields, "offensive")
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A definition whose "sseq" is not
// an array keeps its verb divider and no senses.
func (d *Definition) UnmarshalJSON(data []byte) error {
	m, err := objectMembers(data)
	if err != nil {
		return err
	}
	*d = Definition{}
	d.SenseSequences, _ = member[[]SenseSequence](m, "sseq")
	d.VerbDivider, _ = member[string](m, "vd")
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Required members are checked at
// the API boundary, so here every member is optional and a wrong-typed one is
// left empty instead of dropping the entry.
func (e *DictionaryEntry) UnmarshalJSON(data []byte) error {
	m, err := objectMembers(data)
	if err != nil {
		return err
	}
	*e = DictionaryEntry{
		Homograph:     homograph(m),
		Labels:        labels(m, "lbs"),
		SubjectLabels: labels(m, "sls"),
		ShortDefs:     labels(m, "shortdef"),
	}
	e.Meta, _ = member[Meta](m, "meta")
	e.HeadwordInfo, _ = member[HeadwordInfo](m, "hwi")
	e.AltHeadwords, _ = member[[]HeadwordInfo](m, "ahws")
	e.Variants, _ = member[[]Variant](m, "vrs")
	e.FunctionalLabel, _ = member[string](m, "fl")
	e.Inflections, _ = member[[]Inflection](m, "ins")
	e.CognateCrossRefs, _ = member[[]CognateCrossReference](m, "cxs")
	e.Definitions, _ = member[[]Definition](m, "def")
	e.Quotes, _ = member[[]Quote](m, "quotes")
	return nil
}
