package pdjson5

// Language selects the grammar dialect a Parser accepts, replacing the
// reference library's runtime json_set_language call with a value set once
// at construction.
type Language int

const (
	// LanguageJSON accepts strict RFC 8259 JSON only.
	LanguageJSON Language = iota
	// LanguageJSON5 accepts the ECMAScript-derived relaxations of JSON5.
	LanguageJSON5
	// LanguageJSON5E additionally accepts '#' line comments, a newline
	// standing in for a comma between elements, and an implied top-level
	// object.
	LanguageJSON5E
)

func (l Language) String() string {
	switch l {
	case LanguageJSON:
		return "json"
	case LanguageJSON5:
		return "json5"
	case LanguageJSON5E:
		return "json5e"
	default:
		return "unknown"
	}
}

// defaultMaxDepth bounds nesting depth absent an explicit WithMaxDepth,
// matching the reference library's PDJSON5_STACK_MAX.
const defaultMaxDepth = 2048

type config struct {
	lang      Language
	streaming bool
	maxDepth  int
}

func defaultConfig() config {
	return config{
		lang:      LanguageJSON,
		streaming: true,
		maxDepth:  defaultMaxDepth,
	}
}

// Option configures a Parser at construction time.
type Option func(*config)

// WithLanguage selects the grammar dialect. The default is LanguageJSON.
func WithLanguage(lang Language) Option {
	return func(c *config) { c.lang = lang }
}

// WithStreaming controls whether Next returns KindDone once after a
// complete top-level value (non-streaming framing, for a single document)
// or keeps yielding further top-level values back to back
// until the source is exhausted (streaming framing, for concatenated
// documents on one source). The default is streaming, matching the
// reference library's default flags.
func WithStreaming(streaming bool) Option {
	return func(c *config) { c.streaming = streaming }
}

// WithMaxDepth bounds the nesting stack; exceeding it is reported as a
// SyntaxError from Next rather than growing without limit. A non-positive
// value disables the bound.
func WithMaxDepth(depth int) Option {
	return func(c *config) { c.maxDepth = depth }
}
