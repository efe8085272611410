// assemble.go builds the per-result view of a dictionary entry.
package mw

import "strings"

// DefinitionView is one decoded definition block.
type DefinitionView struct {
	VerbDivider string         `json:"verbDivider,omitempty"`
	Sequences   [][]*SenseNode `json:"sequences"`
}

// QuoteView is a rendered quotation.
type QuoteView struct {
	Text        []InlineNode `json:"text"`
	Attribution []InlineNode `json:"attribution,omitempty"`
}

// EntryView is everything needed to display one dictionary entry.
type EntryView struct {
	ID              string           `json:"id"`
	UUID            string           `json:"uuid,omitempty"`
	Headword        string           `json:"headword"`
	Homograph       int              `json:"homograph,omitempty"`
	FunctionalLabel string           `json:"functionalLabel"`
	Pronunciation   string           `json:"pronunciation,omitempty"`
	Labels          []string         `json:"labels,omitempty"`
	Inflections     string           `json:"inflections,omitempty"`
	CrossReferences []string         `json:"crossReferences,omitempty"`
	Definitions     []DefinitionView `json:"definitions"`
	ShortDefs       []string         `json:"shortdefs"`
	Quotes          []QuoteView      `json:"quotes,omitempty"`
	Offensive       bool             `json:"offensive,omitempty"`
	Warnings        []string         `json:"-"`
}

// BuildEntryView assembles an entry with a default Decoder.
func BuildEntryView(e DictionaryEntry) EntryView {
	var d Decoder
	return d.Assemble(e)
}

// Assemble builds the view of one entry. It never fails; skipped input is
// listed in the view's Warnings.
func (d *Decoder) Assemble(e DictionaryEntry) EntryView {
	view := EntryView{
		ID:              e.Meta.ID,
		UUID:            e.Meta.UUID.OrEmpty(),
		Headword:        CleanHeadword(e.HeadwordInfo.Headword),
		Homograph:       e.Homograph,
		FunctionalLabel: e.FunctionalLabel,
		Pronunciation:   FormatPronunciations(e.HeadwordInfo.Pronunciations),
		Inflections:     formatInflections(e.Inflections),
		CrossReferences: formatCrossReferences(e.CognateCrossRefs),
		ShortDefs:       e.ShortDefs,
		Offensive:       e.Meta.Offensive,
	}
	view.Labels = append(view.Labels, e.Labels...)
	view.Labels = append(view.Labels, e.SubjectLabels...)

	for _, def := range e.Definitions {
		sequences, warnings := d.DecodeDefinition(def)
		view.Definitions = append(view.Definitions, DefinitionView{
			VerbDivider: def.VerbDivider,
			Sequences:   sequences,
		})
		view.Warnings = append(view.Warnings, warnings...)
	}

	for _, q := range e.Quotes {
		quote := QuoteView{Text: Transform(q.Text)}
		if q.Attribution != nil {
			quote.Attribution = FormatAttribution(*q.Attribution)
		}
		view.Quotes = append(view.Quotes, quote)
	}
	return view
}

// FormatPronunciations joins written pronunciations with their labels, e.g.
// "ˈfäks, chiefly British ˈfɔks". The separator is the last "pun" value
// given, defaulting to a comma.
func FormatPronunciations(prs []Pronunciation) string {
	delimiter := ", "
	for _, p := range prs {
		if p.Punctuation != "" {
			delimiter = p.Punctuation + " "
		}
	}

	var parts []string
	for _, p := range prs {
		if p.Written == "" {
			continue
		}
		part := p.Written
		if p.PreLabel != "" {
			part = p.PreLabel + " " + part
		}
		if p.PostLabel != "" {
			part = part + " " + p.PostLabel
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, delimiter)
}

// formatInflections renders inflected forms such as "foxes; also fox".
func formatInflections(ins []Inflection) string {
	var parts []string
	for _, in := range ins {
		form := in.Inflection
		if form == "" {
			form = in.Cutback
		}
		if form == "" {
			continue
		}
		form = CleanHeadword(form)
		if in.Label != "" {
			form = in.Label + " " + form
		}
		parts = append(parts, form)
	}
	return strings.Join(parts, "; ")
}

// formatCrossReferences renders cognate cross-references such as "past tense of run".
func formatCrossReferences(cxs []CognateCrossReference) []string {
	var refs []string
	for _, cx := range cxs {
		var targets []string
		for _, t := range cx.Targets {
			if t.Target == "" {
				continue
			}
			target := BaseID(t.Target)
			if t.Sense != "" {
				target += " " + t.Sense
			}
			targets = append(targets, target)
		}
		ref := strings.TrimSpace(cx.Label + " " + strings.Join(targets, ", "))
		if ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}
