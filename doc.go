// Package pdjson5 is an incremental, pull-based tokenizer for JSON, JSON5,
// and JSON5E (JSON5 plus '#' line comments, a newline standing in for a
// comma, and an implied top-level object).
//
// A [Parser] never builds a tree and never converts numbers to a native
// type: the caller drives it one [Kind] at a time via [Parser.Next] and
// reads the current event's decoded payload and source location from
// [Parser.Payload], [Parser.Line], [Parser.Column], [Parser.Position],
// [Parser.Depth], and [Parser.Context] before advancing again.
package pdjson5
