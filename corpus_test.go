package pdjson5

import (
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

type corpusEvent struct {
	Kind    string `yaml:"kind"`
	Payload string `yaml:"payload"`
}

type corpusCase struct {
	Name      string        `yaml:"name"`
	Language  string        `yaml:"language"`
	Streaming bool          `yaml:"streaming"`
	Input     string        `yaml:"input"`
	Events    []corpusEvent `yaml:"events"`
	WantError bool          `yaml:"wantError"`
}

type corpus struct {
	Cases []corpusCase `yaml:"cases"`
}

var kindByName = map[string]Kind{
	"Error":       KindError,
	"Done":        KindDone,
	"ObjectStart": KindObjectStart,
	"ObjectEnd":   KindObjectEnd,
	"ArrayStart":  KindArrayStart,
	"ArrayEnd":    KindArrayEnd,
	"String":      KindString,
	"Number":      KindNumber,
	"Name":        KindName,
	"True":        KindTrue,
	"False":       KindFalse,
	"Null":        KindNull,
}

func languageByName(name string) (Language, bool) {
	switch name {
	case "", "json":
		return LanguageJSON, true
	case "json5":
		return LanguageJSON5, true
	case "json5e":
		return LanguageJSON5E, true
	default:
		return 0, false
	}
}

func TestCorpus(t *testing.T) {
	data, err := os.ReadFile("testdata/corpus.yaml")
	require.NoError(t, err)

	var c corpus
	require.NoError(t, yaml.Unmarshal(data, &c))
	require.NotEmpty(t, c.Cases)

	for _, tc := range c.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			lang, ok := languageByName(tc.Language)
			require.True(t, ok, "unknown language %q", tc.Language)

			p := NewFromString(tc.Input, WithLanguage(lang), WithStreaming(tc.Streaming))
			defer p.Close()

			if tc.WantError {
				for {
					kind, err := p.Next()
					if kind == KindError {
						require.Error(t, err)
						return
					}
					require.NoError(t, err)
					if kind == KindDone {
						t.Fatalf("expected an error, got Done")
					}
				}
			}

			var got []corpusEvent
			for {
				kind, err := p.Next()
				require.NoError(t, err)
				if kind == KindDone {
					break
				}
				ev := corpusEvent{Kind: kind.String()}
				if kind.HasPayload() {
					ev.Payload = string(p.Payload())
				}
				got = append(got, ev)
			}

			require.Equal(t, tc.Events, got)
		})
	}
}

func TestCorpusKindTableComplete(t *testing.T) {
	// Every event Kind a Parser can report should be reachable by name from
	// the fixture table above, so a future Kind added to kind.go is caught
	// here instead of silently failing to round-trip through YAML fixtures.
	for _, k := range []Kind{
		KindError, KindDone, KindObjectStart, KindObjectEnd,
		KindArrayStart, KindArrayEnd, KindString, KindNumber,
		KindName, KindTrue, KindFalse, KindNull,
	} {
		_, ok := kindByName[k.String()]
		require.True(t, ok, "Kind %v missing from kindByName", k)
	}
}
