// Package lexicon holds the weighted Portuguese term lists used for local
// sentiment scoring. Lexicons are versioned YAML documents; the built-in ones
// are embedded in the binary and parsed once at start-up.
package lexicon

import (
	"embed"
	"errors"
	"fmt"
	"iter"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var builtin embed.FS

// Names of the built-in lexicons.
const (
	Basic    = "basic"
	Expanded = "expanded"
)

const (
	WordWeight   = 0.10
	PhraseWeight = 0.15
)

type Polarity int

const (
	Negative Polarity = -1
	Positive Polarity = 1
)

// Entry is a single term or phrase with its polarity and weight.
type Entry struct {
	Term     string
	Polarity Polarity
	Weight   float64
}

// Lexicon is immutable once built and safe for concurrent readers.
type Lexicon struct {
	Version int
	Name    string
	entries []Entry
}

type lexiconFile struct {
	Version  int      `yaml:"version"`
	Name     string   `yaml:"name"`
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

var ErrEmptyLexicon = errors.New("lexicon has no terms")

// Builtin returns one of the embedded lexicons by name.
func Builtin(name string) (*Lexicon, error) {
	data, err := builtin.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown built-in lexicon %q: %w", name, err)
	}
	return Parse(data)
}

// LoadFile reads an operator-supplied lexicon with the same schema as the
// built-in ones.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML lexicon document. Terms are lower-cased the same way
// input text is, so an upper-case entry still matches.
func Parse(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if len(f.Positive) == 0 && len(f.Negative) == 0 {
		return nil, ErrEmptyLexicon
	}

	lex := &Lexicon{
		Version: f.Version,
		Name:    f.Name,
		entries: make([]Entry, 0, len(f.Positive)+len(f.Negative)),
	}
	seen := make(map[string]Polarity, cap(lex.entries))

	add := func(terms []string, polarity Polarity) error {
		for _, raw := range terms {
			term := Normalize(raw)
			if term == "" {
				return fmt.Errorf("lexicon %q: empty term", f.Name)
			}
			if prev, ok := seen[term]; ok {
				if prev == polarity {
					return fmt.Errorf("lexicon %q: duplicate term %q", f.Name, term)
				}
				return fmt.Errorf("lexicon %q: term %q is both positive and negative", f.Name, term)
			}
			seen[term] = polarity
			lex.entries = append(lex.entries, Entry{
				Term:     term,
				Polarity: polarity,
				Weight:   WeightFor(term),
			})
		}
		return nil
	}

	if err := add(f.Positive, Positive); err != nil {
		return nil, err
	}
	if err := add(f.Negative, Negative); err != nil {
		return nil, err
	}
	return lex, nil
}

// WeightFor applies the fixed weighting rule: phrases (terms containing a
// space) weigh more than single words.
func WeightFor(term string) float64 {
	if strings.Contains(term, " ") {
		return PhraseWeight
	}
	return WordWeight
}

// Normalize lower-cases text for matching. Accents and punctuation are kept.
// A Caser is stateful, so one is built per call.
func Normalize(text string) string {
	return cases.Lower(language.BrazilianPortuguese).String(strings.TrimSpace(text))
}

// All yields positive entries first, then negative ones, in file order.
func (l *Lexicon) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

func (l *Lexicon) Len() int {
	return len(l.entries)
}
