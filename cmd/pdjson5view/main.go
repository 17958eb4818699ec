// Command pdjson5view is an interactive terminal browser over the event
// trace produced by pdjson5. It parses a file up front and lets the user
// scroll through the resulting events with the keyboard.
package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"

	"github.com/json5kit/pdjson5"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: pdjson5view [flags] <file>\n")
		return 1
	}

	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)

	if cfg.logFile != "" {
		f, ferr := os.Create(cfg.logFile)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", ferr)
			return 1
		}
		defer f.Close()

		logger = log.New(f)
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	lang, err := cfg.language_()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	events, parseErr := collectEvents(data, lang, cfg.maxDepth, logger)

	m := newModel(args[0], events, parseErr)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type flagConfig struct {
	language string
	maxDepth int
	logFile  string
}

func (c *flagConfig) language_() (pdjson5.Language, error) {
	switch c.language {
	case "", "json":
		return pdjson5.LanguageJSON, nil
	case "json5":
		return pdjson5.LanguageJSON5, nil
	case "json5e":
		return pdjson5.LanguageJSON5E, nil
	default:
		return 0, fmt.Errorf("unknown --language %q: want json, json5, or json5e", c.language)
	}
}

// parseFlags hand-rolls flag parsing for the small set of options this
// viewer needs, so it can return positional args alongside parse errors
// without depending on the package-level flag.CommandLine.
func parseFlags(args []string) (*flagConfig, []string, error) {
	cfg := &flagConfig{language: "json"}
	var rest []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--language":
			i++
			if i >= len(args) {
				return nil, nil, fmt.Errorf("--language requires a value")
			}
			cfg.language = args[i]
		case "--max-depth":
			i++
			if i >= len(args) {
				return nil, nil, fmt.Errorf("--max-depth requires a value")
			}
			if _, err := fmt.Sscanf(args[i], "%d", &cfg.maxDepth); err != nil {
				return nil, nil, fmt.Errorf("--max-depth: %w", err)
			}
		case "--log-file":
			i++
			if i >= len(args) {
				return nil, nil, fmt.Errorf("--log-file requires a value")
			}
			cfg.logFile = args[i]
		default:
			rest = append(rest, args[i])
		}
	}
	return cfg, rest, nil
}

// viewEvent is a materialized snapshot of one parser event, kept for random
// access by the browsing model. The parser itself never buffers a document;
// this tool does, purely to let the user scroll back and forth over it.
type viewEvent struct {
	kind    pdjson5.Kind
	payload string
	depth   int
	line    int
	col     int
}

func collectEvents(data []byte, lang pdjson5.Language, maxDepth int, logger *log.Logger) ([]viewEvent, *pdjson5.SyntaxError) {
	opts := []pdjson5.Option{pdjson5.WithLanguage(lang)}
	if maxDepth > 0 {
		opts = append(opts, pdjson5.WithMaxDepth(maxDepth))
	}

	p := pdjson5.NewFromBytes(data, opts...)
	defer p.Close()

	var events []viewEvent
	for {
		kind, err := p.Next()
		if err != nil {
			se, ok := err.(*pdjson5.SyntaxError)
			if !ok {
				logger.Error("parse failed", "err", err)
				return events, nil
			}
			logger.Debug("parse error", "line", se.Line, "col", se.Column, "msg", se.Msg)
			return events, se
		}
		if kind == pdjson5.KindDone {
			return events, nil
		}

		ev := viewEvent{kind: kind, depth: p.Depth(), line: p.Line(), col: p.Column()}
		if kind.HasPayload() {
			ev.payload = string(p.Payload())
		}
		logger.Debug("event", "kind", kind.String(), "depth", ev.depth, "line", ev.line, "col", ev.col)
		events = append(events, ev)
	}
}
