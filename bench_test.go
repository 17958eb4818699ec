package pdjson5

import (
	"strings"
	"testing"
)

// jsonFragment mirrors the synthetic payload used to size parser throughput
// benchmarks: a flat run of scalar and nested fields repeated to build a
// document of a chosen size.
const jsonFragment = `    "boolean_value": true,
    "null_value": null,
    "integer_value": 123456789,
    "string_value": "77bd6c2ee33172287318170a8c7d357fe03f65bcbbf942e179b2a2ad8202e24f",
    "date_time": "2025-10-14T16:49:47Z",
    "array_integer_value": [-100, -10, -1, 0, 1, 10, 100],
    "array_string_value": ["memory exceeded", "disk exceeded"],
    "object_value": {
        "boolean": false,
        "integer": 9876543210,
        "array": [123, 234, 345],
        "object": {"line":73,"column":64,"position":123}
    }`

// buildBenchDocument assembles a single JSON object out of repeated copies of
// jsonFragment (so the same member names recur in every copy), approximating
// sizeKiB kibibytes of input.
func buildBenchDocument(sizeKiB int) []byte {
	var b strings.Builder
	b.WriteString("{\n")
	reps := sizeKiB * 2
	for i := 0; i < reps; i++ {
		if i != 0 {
			b.WriteString(",\n")
		}
		b.WriteString(jsonFragment)
	}
	b.WriteString("\n}")
	return []byte(b.String())
}

func drainAll(b *testing.B, data []byte) {
	p := NewFromBytes(data)
	defer p.Close()
	for {
		kind, err := p.Next()
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		if kind == KindDone {
			return
		}
	}
}

func BenchmarkParseSmallDocument(b *testing.B) {
	data := buildBenchDocument(10)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drainAll(b, data)
	}
}

func BenchmarkParseLargeDocument(b *testing.B) {
	data := buildBenchDocument(1024)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drainAll(b, data)
	}
}

// BenchmarkParseStreamingConcatenated measures a single streaming Parser
// reading many small top-level documents back to back out of one source,
// the way a log of newline-separated JSON records would be consumed.
func BenchmarkParseStreamingConcatenated(b *testing.B) {
	doc := buildBenchDocument(1)
	var all strings.Builder
	for i := 0; i < 64; i++ {
		all.Write(doc)
		all.WriteByte('\n')
	}
	data := []byte(all.String())

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := NewFromBytes(data, WithStreaming(true))
		for {
			kind, err := p.Next()
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if kind == KindDone {
				break
			}
		}
		p.Close()
	}
}

// BenchmarkPeek measures the overhead Peek adds over a plain Next when the
// caller inspects the upcoming kind before consuming it, as a container-aware
// caller typically does before deciding whether to Skip.
func BenchmarkPeek(b *testing.B) {
	data := buildBenchDocument(10)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := NewFromBytes(data)
		for {
			kind, err := p.Peek()
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if kind == KindDone {
				break
			}
			if _, err := p.Next(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
		}
		p.Close()
	}
}
