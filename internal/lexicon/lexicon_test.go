package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltin(t *testing.T) {
	tests := []struct {
		name     string
		version  int
		entries  int
		phrases  int
		positive int
	}{
		{Basic, 1, 29, 3, 14},
		{Expanded, 2, 77, 29, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, err := Builtin(tt.name)
			if err != nil {
				t.Fatalf("Builtin(%q): %v", tt.name, err)
			}
			if lex.Version != tt.version {
				t.Errorf("version = %d, want %d", lex.Version, tt.version)
			}
			if lex.Len() != tt.entries {
				t.Errorf("Len() = %d, want %d", lex.Len(), tt.entries)
			}

			var phrases, positive int
			for e := range lex.All() {
				if strings.Contains(e.Term, " ") {
					phrases++
				}
				if e.Polarity == Positive {
					positive++
				}
			}
			if phrases != tt.phrases {
				t.Errorf("phrases = %d, want %d", phrases, tt.phrases)
			}
			if positive != tt.positive {
				t.Errorf("positive entries = %d, want %d", positive, tt.positive)
			}
		})
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	if _, err := Builtin("klingon"); err == nil {
		t.Fatal("expected error for unknown lexicon")
	}
}

func TestWeightFor(t *testing.T) {
	tests := []struct {
		term string
		want float64
	}{
		{"bom", WordWeight},
		{"incrível", WordWeight},
		{"funciona bem", PhraseWeight},
		{"superou minhas expectativas", PhraseWeight},
	}
	for _, tt := range tests {
		if got := WeightFor(tt.term); got != tt.want {
			t.Errorf("WeightFor(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestParse_WeightsFollowRule(t *testing.T) {
	lex, err := Builtin(Expanded)
	if err != nil {
		t.Fatal(err)
	}
	for e := range lex.All() {
		if e.Weight != WeightFor(e.Term) {
			t.Errorf("entry %q weight = %v, want %v", e.Term, e.Weight, WeightFor(e.Term))
		}
	}
}

func TestParse_PositivesFirst(t *testing.T) {
	lex, err := Parse([]byte("name: t\npositive: [bom]\nnegative: [ruim]\n"))
	if err != nil {
		t.Fatal(err)
	}
	var got []Entry
	for e := range lex.All() {
		got = append(got, e)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Term != "bom" || got[0].Polarity != Positive {
		t.Errorf("first entry = %+v, want positive bom", got[0])
	}
	if got[1].Term != "ruim" || got[1].Polarity != Negative {
		t.Errorf("second entry = %+v, want negative ruim", got[1])
	}
}

func TestParse_LowerCasesTerms(t *testing.T) {
	lex, err := Parse([]byte("positive: [\"ÓTIMO\"]\n"))
	if err != nil {
		t.Fatal(err)
	}
	for e := range lex.All() {
		if e.Term != "ótimo" {
			t.Errorf("term = %q, want %q", e.Term, "ótimo")
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		desc string
		doc  string
	}{
		{"empty document", "name: x\n"},
		{"invalid yaml", "positive: [bom\n"},
		{"blank term", "positive: [\"  \"]\n"},
		{"duplicate term", "positive: [bom, bom]\n"},
		{"conflicting polarity", "positive: [bom]\nnegative: [bom]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Fatalf("expected error for %q", tt.doc)
			}
		})
	}
}

func TestParse_EmptyIsSentinel(t *testing.T) {
	_, err := Parse([]byte("version: 3\n"))
	if !errors.Is(err, ErrEmptyLexicon) {
		t.Fatalf("expected ErrEmptyLexicon, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "version: 9\nname: custom\npositive: [show de bola]\nnegative: [furada]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if lex.Name != "custom" || lex.Version != 9 || lex.Len() != 2 {
		t.Errorf("unexpected lexicon: name=%q version=%d len=%d", lex.Name, lex.Version, lex.Len())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Produto EXCELENTE!", "produto excelente!"},
		{"  Péssimo  ", "péssimo"},
		{"NÃO GOSTEI", "não gostei"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
