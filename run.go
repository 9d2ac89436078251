package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var errFileNotFound = errors.New("file not found")

type options struct {
	baseLevel  int
	noLinks    bool
	numbered   bool
	commonMark bool
	outputPath string
	configPath string
	logLevel   string
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
}

func run(argv []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, path string, flagChanged func(string) bool) error {
	opts := app.opts
	log, err := newLogger(app.stderr, opts.logLevel)
	if err != nil {
		return err
	}
	if opts.configPath != "" {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg.apply(&opts, flagChanged)
		log.WithField("path", opts.configPath).Info("loaded config")
	}
	if opts.baseLevel < 1 {
		return fmt.Errorf("base level must be at least 1, got %d", opts.baseLevel)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := readDocument(path)
	if err != nil {
		return err
	}
	parser := newHeadingParser(opts.baseLevel, log.WithField("file", path))
	var headings []heading
	if opts.commonMark {
		log.Debug("using commonmark heading parser")
		headings = parser.parseCommonMark(content)
	} else {
		headings = parser.parseLines(splitLines(string(content)))
	}
	lines := renderIndex(headings, indexOptions{
		links:    !opts.noLinks,
		numbered: opts.numbered,
	})

	out := []byte(strings.Join(lines, "\n") + "\n")
	if err := writeOutput(opts.outputPath, app.stdout, out); err != nil {
		return err
	}
	if opts.outputPath != "" && opts.outputPath != "-" {
		log.WithField("path", opts.outputPath).Info("wrote index")
	}
	return nil
}

func readDocument(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", errFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	return log, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var legacyLongFlagSet = map[string]struct{}{
	"base-level": {},
	"no-links":   {},
	"numbered":   {},
	"commonmark": {},
	"output":     {},
	"config":     {},
	"log-level":  {},
}

// normalizeLegacyArgs rewrites single-dash long flags ("-numbered",
// "-base-level=2") into the double-dash form Cobra expects.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		if idx := strings.Index(arg, "="); idx > 0 {
			name := arg[1:idx]
			if _, ok := legacyLongFlagSet[name]; ok {
				converted = append(converted, "--"+name+arg[idx:])
				modified = true
				continue
			}
		}
		name := arg[1:]
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "--"+name)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}
