package lookup

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/open-cli-collective/lexicon-cli/api"
	"github.com/open-cli-collective/lexicon-cli/pkg/mw"
)

// Source is the subset of api.Client used by Service.
type Source interface {
	Define(ctx context.Context, word string) (*api.DictionaryResult, error)
	Synonyms(ctx context.Context, word string) (*api.ThesaurusResult, error)
}

// Options selects which references a lookup queries.
type Options struct {
	Definitions bool
	Synonyms    bool
}

// Result is the decoded outcome of a lookup.
type Result struct {
	Word        string            `json:"word"`
	Entries     []mw.EntryView    `json:"entries,omitempty"`
	Synonyms    []mw.SynonymGroup `json:"synonyms,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
	Warnings    []string          `json:"warnings,omitempty"`
}

// IsSuggestion reports whether the lookup produced spelling suggestions
// instead of entries.
func (r *Result) IsSuggestion() bool {
	return len(r.Suggestions) > 0
}

// Service runs lookups and records their progress in a Machine.
type Service struct {
	source  Source
	decoder *mw.Decoder
	machine *Machine
	logger  zerolog.Logger
}

// NewService creates a lookup service.
func NewService(source Source, logger zerolog.Logger) *Service {
	return &Service{
		source:  source,
		decoder: mw.NewDecoder(logger),
		machine: &Machine{},
		logger:  logger,
	}
}

// State returns the state of the most recent lookup.
func (s *Service) State() Snapshot {
	return s.machine.Snapshot()
}

// Lookup queries the selected references concurrently. When definitions
// are requested, a thesaurus failure is logged and recorded as a warning
// rather than failing the lookup.
func (s *Service) Lookup(ctx context.Context, word string, opts Options) (*Result, error) {
	word = strings.TrimSpace(word)
	gen := s.machine.Begin(word)

	if word == "" {
		s.machine.Fail(gen, api.ErrEmptyQuery)
		return nil, api.ErrEmptyQuery
	}
	if !opts.Definitions && !opts.Synonyms {
		opts.Definitions = true
	}

	var (
		dict     *api.DictionaryResult
		thes     *api.ThesaurusResult
		thesErr  error
		optional = opts.Definitions
	)

	g, gctx := errgroup.WithContext(ctx)
	if opts.Definitions {
		g.Go(func() error {
			var err error
			dict, err = s.source.Define(gctx, word)
			return err
		})
	}
	if opts.Synonyms {
		g.Go(func() error {
			var err error
			thes, err = s.source.Synonyms(gctx, word)
			if err != nil && optional {
				thesErr = err
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		s.machine.Fail(gen, err)
		return nil, err
	}

	result := &Result{Word: word}
	if thesErr != nil {
		var keyErr *api.MissingKeyError
		if errors.As(thesErr, &keyErr) {
			s.logger.Debug().Str("word", word).Msg("thesaurus key not configured; skipping synonyms")
		} else {
			s.logger.Warn().Err(thesErr).Str("word", word).Msg("thesaurus lookup failed")
			result.Warnings = append(result.Warnings, "synonyms unavailable: "+thesErr.Error())
		}
	}

	// Suggestions from the primary reference win.
	primary := suggestionsOf(dict, thes, opts)
	if len(primary) > 0 {
		result.Suggestions = primary
		s.machine.Suggest(gen, primary)
		return result, nil
	}

	if dict != nil {
		for _, e := range dict.Entries {
			view := s.decoder.Assemble(e)
			result.Warnings = append(result.Warnings, view.Warnings...)
			result.Entries = append(result.Entries, view)
		}
	}
	if thes != nil && !thes.IsSuggestion() {
		for _, e := range thes.Entries {
			result.Synonyms = append(result.Synonyms, mw.BuildSynonymGroups(e)...)
		}
	}

	s.machine.Succeed(gen, result)
	return result, nil
}

func suggestionsOf(dict *api.DictionaryResult, thes *api.ThesaurusResult, opts Options) []string {
	if opts.Definitions {
		if dict != nil && dict.IsSuggestion() {
			return dict.Suggestions
		}
		return nil
	}
	if thes != nil && thes.IsSuggestion() {
		return thes.Suggestions
	}
	return nil
}
