// Package main provides the CLI entry point for pdjson5cat, a driver that
// tokenizes JSON/JSON5/JSON5E input and prints the resulting event trace.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/json5kit/pdjson5"
	"github.com/json5kit/pdjson5/internal/bufpools"
)

// flushThreshold is how large the pending-output buffer is allowed to grow
// before catOne flushes it to stdout, so a large trace doesn't accumulate
// unboundedly in memory between writes.
const flushThreshold = 64 << 10

// errParseFailed marks a file that failed to tokenize, already reported via
// log; it only signals run to set the process exit code.
var errParseFailed = errors.New("parse failed")

type config struct {
	json5     bool
	json5e    bool
	streaming bool
	maxDepth  int
	debug     bool
	logCfg    *logConfig
}

func (c *config) registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&c.json5, "json5", false, "parse input as JSON5 instead of plain JSON")
	flags.BoolVar(&c.json5e, "json5e", false, "parse input as JSON5E instead of plain JSON")
	flags.BoolVar(&c.streaming, "streaming", true, "keep reading top-level values until EOF")
	flags.IntVar(&c.maxDepth, "max-depth", 0, "maximum nesting depth (0 means the package default)")
	flags.BoolVar(&c.debug, "debug", false, "dump each event as a full Go struct via repr instead of a terse trace")
	c.logCfg.RegisterFlags(flags)
	cmd.MarkFlagsMutuallyExclusive("json5", "json5e")
}

func (c *config) language() pdjson5.Language {
	switch {
	case c.json5:
		return pdjson5.LanguageJSON5
	case c.json5e:
		return pdjson5.LanguageJSON5E
	default:
		return pdjson5.LanguageJSON
	}
}

func main() {
	cfg := &config{logCfg: newLogConfig()}

	rootCmd := &cobra.Command{
		Use:           "pdjson5cat [flags] [file ...]",
		Short:         "Tokenize JSON/JSON5/JSON5E input and print its event trace",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			log, err := cfg.logCfg.newLogger(os.Stderr)
			if err != nil {
				return err
			}
			return run(cfg, log, args)
		},
	}
	cfg.registerFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config, log *logrus.Logger, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	opts := []pdjson5.Option{
		pdjson5.WithLanguage(cfg.language()),
		pdjson5.WithStreaming(cfg.streaming),
	}
	if cfg.maxDepth > 0 {
		opts = append(opts, pdjson5.WithMaxDepth(cfg.maxDepth))
	}

	failed := false
	for _, arg := range args {
		var data []byte
		var rerr error
		if arg == "-" {
			data, rerr = io.ReadAll(os.Stdin)
		} else {
			data, rerr = os.ReadFile(arg)
		}
		if rerr != nil {
			return fmt.Errorf("read %s: %w", arg, rerr)
		}

		log.WithField("file", arg).Debug("tokenizing")
		if err := catOne(cfg, log, arg, data, opts); err != nil {
			if errors.Is(err, errParseFailed) {
				failed = true
				continue
			}
			return err
		}
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

func catOne(cfg *config, log *logrus.Logger, name string, data []byte, opts []pdjson5.Option) error {
	p := pdjson5.NewFromBytes(data, opts...)
	defer p.Close()

	var out bufpools.Buffer
	defer flush(&out)

	for {
		kind, err := p.Next()
		if err != nil {
			flush(&out)
			se, ok := err.(*pdjson5.SyntaxError)
			if ok {
				log.WithFields(logrus.Fields{
					"file": name,
					"line": se.Line,
					"col":  se.Column,
				}).Error(se.Msg)
				return errParseFailed
			}
			log.WithField("file", name).Error(err)
			return errParseFailed
		}
		if kind == pdjson5.KindDone {
			return nil
		}

		if cfg.debug {
			out.Write([]byte(repr.String(newDebugEvent(p, kind))))
		} else {
			line := fmt.Sprintf("%*s%s", p.Depth()*2, "", kind)
			if kind.HasPayload() {
				line += " " + repr.String(string(p.Payload()))
			}
			out.Write([]byte(line))
		}
		out.Write([]byte{'\n'})

		if out.Len() >= flushThreshold {
			flush(&out)
		}

		log.WithFields(logrus.Fields{
			"kind": kind.String(),
			"line": p.Line(),
			"col":  p.Column(),
		}).Debug("event")
	}
}

// debugEvent is the struct repr.String dumps in full under --debug, in
// place of the terse one-line-per-event trace.
type debugEvent struct {
	Kind    string
	Payload string
	Depth   int
	Line    int
	Col     int
}

func newDebugEvent(p *pdjson5.Parser, kind pdjson5.Kind) debugEvent {
	ev := debugEvent{Kind: kind.String(), Depth: p.Depth(), Line: p.Line(), Col: p.Column()}
	if kind.HasPayload() {
		ev.Payload = string(p.Payload())
	}
	return ev
}

// flush writes out's buffered content to stdout and resets it for reuse,
// releasing its segments back to the shared pool rather than discarding them.
func flush(out *bufpools.Buffer) {
	if out.Len() == 0 {
		return
	}
	os.Stdout.Write(out.Bytes())
	out.Reset()
}
