package pdjson5

import "testing"

func FuzzParse(f *testing.F) {
	f.Add([]byte(`{"a": [1, 2, 3], "b": "x"}`))
	f.Add([]byte(`[true, false, null]`))
	f.Add([]byte(`{ unquoted: 'j5', hex: 0xFF, /* c */ trail: 1, }`))
	f.Add([]byte("a: 1\nb: 2\n# comment\n"))
	f.Add([]byte(``))
	f.Add([]byte(`{`))
	f.Add([]byte(`"😀"`))

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, lang := range []Language{LanguageJSON, LanguageJSON5, LanguageJSON5E} {
			for _, streaming := range []bool{false, true} {
				fuzzOne(t, data, lang, streaming)
			}
		}
	})
}

// fuzzOne drains the parser over data and checks the invariants every event
// kind must satisfy, mirroring the per-kind assertions of the original
// fuzz harness: it must never panic, and whatever it reports about payload,
// context, and depth must be internally consistent.
func fuzzOne(t *testing.T, data []byte, lang Language, streaming bool) {
	t.Helper()

	p := NewFromBytes(data, WithLanguage(lang), WithStreaming(streaming))
	defer p.Close()

	for {
		kind, err := p.Next()

		switch kind {
		case KindError:
			if err == nil {
				t.Fatalf("KindError with nil error (lang=%v streaming=%v)", lang, streaming)
			}
			if _, ok := err.(*SyntaxError); !ok {
				t.Fatalf("KindError with non-SyntaxError %T (lang=%v streaming=%v)", err, lang, streaming)
			}
			return
		case KindDone:
			if err != nil {
				t.Fatalf("KindDone with non-nil error: %v", err)
			}
			return
		case KindName, KindString:
			if err != nil {
				t.Fatalf("unexpected error for kind %v: %v", kind, err)
			}
			_ = p.Payload() // must not panic
		case KindNumber:
			if err != nil {
				t.Fatalf("unexpected error for kind %v: %v", kind, err)
			}
			if len(p.Payload()) == 0 {
				t.Fatalf("KindNumber with empty payload")
			}
		case KindObjectStart, KindArrayStart:
			if err != nil {
				t.Fatalf("unexpected error for kind %v: %v", kind, err)
			}
			ctx := p.Context()
			if kind == KindObjectStart && ctx != ContextObject {
				t.Fatalf("KindObjectStart but Context() = %v", ctx)
			}
			if kind == KindArrayStart && ctx != ContextArray {
				t.Fatalf("KindArrayStart but Context() = %v", ctx)
			}
			if p.Depth() < 1 {
				t.Fatalf("container start with Depth() = %d", p.Depth())
			}
		case KindObjectEnd, KindArrayEnd, KindTrue, KindFalse, KindNull:
			if err != nil {
				t.Fatalf("unexpected error for kind %v: %v", kind, err)
			}
		default:
			t.Fatalf("unrecognized kind %v", kind)
		}

		if p.Depth() < 0 {
			t.Fatalf("negative Depth() after kind %v", kind)
		}
	}
}
