// thesaurus.go defines the Collegiate Thesaurus entry shape and synonym grouping.
package mw

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ThesaurusTarget links a thesaurus entry to its dictionary entry.
type ThesaurusTarget struct {
	Source string    `json:"tsrc,omitempty"`
	UUID   EntryUUID `json:"tuuid"`
}

// ThesaurusMeta holds thesaurus entry metadata.
type ThesaurusMeta struct {
	ID        string           `json:"id"`
	UUID      EntryUUID        `json:"uuid"`
	Source    string           `json:"src,omitempty"`
	Section   string           `json:"section,omitempty"`
	Stems     []string         `json:"stems,omitempty"`
	Syns      [][]string       `json:"syns,omitempty"`
	Ants      [][]string       `json:"ants,omitempty"`
	Offensive bool             `json:"offensive"`
	Target    *ThesaurusTarget `json:"target,omitempty"`
}

// WordVariant is an alternate form of a thesaurus word ("wvrs" element).
type WordVariant struct {
	Label   string `json:"wvl,omitempty"`
	Variant string `json:"wva"`
}

// StatusLabel is a subject/status label ("wsls" element).
type StatusLabel struct {
	Label string `json:"wsl"`
}

// VerbVariant is a verb form of a thesaurus word ("wvbvrs" element).
type VerbVariant struct {
	Label   string `json:"wvbvl,omitempty"`
	Variant string `json:"wvbva"`
}

// SynonymWord is one word in a synonym, similar, related or antonym list.
type SynonymWord struct {
	Word         string        `json:"wd"`
	Variants     []WordVariant `json:"wvrs,omitempty"`
	Labels       []StatusLabel `json:"wsls,omitempty"`
	VerbVariants []VerbVariant `json:"wvbvrs,omitempty"`
}

// Display returns the word followed by its labels and variants, e.g.
// "glad (informal; also gladsome)".
func (w SynonymWord) Display() string {
	var extra []string
	for _, l := range w.Labels {
		if l.Label != "" {
			extra = append(extra, l.Label)
		}
	}
	for _, v := range w.Variants {
		if v.Label != "" {
			extra = append(extra, v.Label+" "+v.Variant)
		} else {
			extra = append(extra, v.Variant)
		}
	}
	if len(extra) == 0 {
		return w.Word
	}
	return w.Word + " (" + strings.Join(extra, "; ") + ")"
}

// WordList is a list of word groups as delivered by the API.
type WordList [][]SynonymWord

// Flatten returns the words of every group in order, skipping empty words.
func (l WordList) Flatten() []SynonymWord {
	var words []SynonymWord
	for _, group := range l {
		for _, w := range group {
			if w.Word != "" {
				words = append(words, w)
			}
		}
	}
	return words
}

// ThesaurusSense is one meaning in a thesaurus entry.
type ThesaurusSense struct {
	Number       string               `json:"sn,omitempty"`
	DefiningText DefiningTextSequence `json:"dt,omitempty"`
	SynList      WordList             `json:"syn_list,omitempty"`
	SimList      WordList             `json:"sim_list,omitempty"`
	RelList      WordList             `json:"rel_list,omitempty"`
	PhraseList   WordList             `json:"phrase_list,omitempty"`
	NearList     WordList             `json:"near_list,omitempty"`
	AntList      WordList             `json:"ant_list,omitempty"`
	OppList      WordList             `json:"opp_list,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler. A wrong-typed word list is left
// empty instead of dropping the sense.
func (s *ThesaurusSense) UnmarshalJSON(data []byte) error {
	m, err := objectMembers(data)
	if err != nil {
		return err
	}
	*s = ThesaurusSense{}
	s.Number, _ = member[string](m, "sn")
	s.DefiningText, _ = member[DefiningTextSequence](m, "dt")
	s.SynList, _ = member[WordList](m, "syn_list")
	s.SimList, _ = member[WordList](m, "sim_list")
	s.RelList, _ = member[WordList](m, "rel_list")
	s.PhraseList, _ = member[WordList](m, "phrase_list")
	s.NearList, _ = member[WordList](m, "near_list")
	s.AntList, _ = member[WordList](m, "ant_list")
	s.OppList, _ = member[WordList](m, "opp_list")
	return nil
}

// ThesaurusSenseVariant is a ["sense", {...}] tuple of a thesaurus sense
// sequence. Other tags leave Sense nil.
type ThesaurusSenseVariant struct {
	Tag   string
	Sense *ThesaurusSense
}

// UnmarshalJSON implements json.Unmarshaler. It never fails.
func (v *ThesaurusSenseVariant) UnmarshalJSON(data []byte) error {
	*v = ThesaurusSenseVariant{}
	tag, payload, ok := splitTuple(bytes.TrimSpace(data))
	if !ok {
		return nil
	}
	v.Tag = tag
	if tag != "sense" {
		return nil
	}
	var s ThesaurusSense
	if json.Unmarshal(payload, &s) == nil {
		v.Sense = &s
	}
	return nil
}

// ThesaurusDefinition is one "def" element of a thesaurus entry.
type ThesaurusDefinition struct {
	SenseSequences [][]ThesaurusSenseVariant `json:"sseq"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *ThesaurusDefinition) UnmarshalJSON(data []byte) error {
	m, err := objectMembers(data)
	if err != nil {
		return err
	}
	d.SenseSequences, _ = member[[][]ThesaurusSenseVariant](m, "sseq")
	return nil
}

// ThesaurusEntry is one thesaurus result for a queried word.
type ThesaurusEntry struct {
	Meta            ThesaurusMeta         `json:"meta"`
	HeadwordInfo    HeadwordInfo          `json:"hwi"`
	FunctionalLabel string                `json:"fl"`
	Definitions     []ThesaurusDefinition `json:"def"`
	ShortDefs       []string              `json:"shortdef"`
}

// UnmarshalJSON implements json.Unmarshaler. Wrong-typed members are left empty.
func (e *ThesaurusEntry) UnmarshalJSON(data []byte) error {
	m, err := objectMembers(data)
	if err != nil {
		return err
	}
	*e = ThesaurusEntry{ShortDefs: labels(m, "shortdef")}
	e.Meta, _ = member[ThesaurusMeta](m, "meta")
	e.HeadwordInfo, _ = member[HeadwordInfo](m, "hwi")
	e.FunctionalLabel, _ = member[string](m, "fl")
	e.Definitions, _ = member[[]ThesaurusDefinition](m, "def")
	return nil
}

// Senses returns every sense of the entry in order.
func (e ThesaurusEntry) Senses() []*ThesaurusSense {
	var senses []*ThesaurusSense
	for _, def := range e.Definitions {
		for _, seq := range def.SenseSequences {
			for _, v := range seq {
				if v.Sense != nil {
					senses = append(senses, v.Sense)
				}
			}
		}
	}
	return senses
}

// SynonymGroup is the synonym list for one sense, headed "As in: <meaning>".
// EntryUUID is the uuid of the dictionary entry the thesaurus entry targets.
type SynonymGroup struct {
	Headword        string        `json:"headword"`
	EntryUUID       string        `json:"entryUuid,omitempty"`
	FunctionalLabel string        `json:"functionalLabel"`
	Number          string        `json:"number,omitempty"`
	AsIn            string        `json:"asIn"`
	Synonyms        []SynonymWord `json:"synonyms"`
	Antonyms        []SynonymWord `json:"antonyms,omitempty"`
}

// BuildSynonymGroups returns one group per sense that has synonyms. A sense
// uses its syn_list, falling back to sim_list; antonyms come from ant_list,
// falling back to opp_list. The "As in" header is the short definition at the
// sense's position, then the sense's own defining text.
func BuildSynonymGroups(e ThesaurusEntry) []SynonymGroup {
	var groups []SynonymGroup
	for i, sense := range e.Senses() {
		words := sense.SynList.Flatten()
		if len(words) == 0 {
			words = sense.SimList.Flatten()
		}
		if len(words) == 0 {
			continue
		}
		antonyms := sense.AntList.Flatten()
		if len(antonyms) == 0 {
			antonyms = sense.OppList.Flatten()
		}
		groups = append(groups, SynonymGroup{
			Headword:        CleanHeadword(e.HeadwordInfo.Headword),
			EntryUUID:       e.targetUUID(),
			FunctionalLabel: e.FunctionalLabel,
			Number:          sense.Number,
			AsIn:            asIn(e, sense, i),
			Synonyms:        words,
			Antonyms:        antonyms,
		})
	}
	return groups
}

func (e ThesaurusEntry) targetUUID() string {
	if e.Meta.Target == nil {
		return ""
	}
	return e.Meta.Target.UUID.OrEmpty()
}

func asIn(e ThesaurusEntry, sense *ThesaurusSense, index int) string {
	if index < len(e.ShortDefs) && e.ShortDefs[index] != "" {
		return e.ShortDefs[index]
	}
	for _, elem := range sense.DefiningText {
		if elem.Kind == DefiningTextText {
			if text := strings.TrimSpace(StripMarkup(elem.Text)); text != "" {
				return text
			}
		}
	}
	if len(e.ShortDefs) > 0 {
		return e.ShortDefs[0]
	}
	return ""
}

// UniqueWords returns the synonyms of all groups without duplicates, in first-seen order.
func UniqueWords(groups []SynonymGroup) []string {
	seen := make(map[string]bool)
	var words []string
	for _, g := range groups {
		for _, w := range g.Synonyms {
			if seen[w.Word] {
				continue
			}
			seen[w.Word] = true
			words = append(words, w.Word)
		}
	}
	return words
}
