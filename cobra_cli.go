package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
mdindex reads a Markdown document and prints a table of contents built from its
headings. Each entry links to the anchor GitHub generates for that heading, and
a single leading emoji is kept in front of the link.

  • --base-level picks the shallowest heading to include and treats it as the top
  • --numbered prefixes entries with outline numbers (1, 1.1, 1.2, 2, ...)
  • --no-links emits a plain indented list instead of links
  • --commonmark parses with goldmark, so setext headings count and code blocks don't

Defaults can be kept in a YAML file passed with --config; flags given on the
command line take precedence over it.
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:           "mdindex [flags] <file.md>",
		Short:         "Generate a table of contents for a Markdown file",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.IntVar(&app.opts.baseLevel, "base-level", 1, "minimum heading depth to include; it becomes the top level")
	flags.BoolVar(&app.opts.noLinks, "no-links", false, "emit plain text instead of links")
	flags.BoolVar(&app.opts.numbered, "numbered", false, "prefix entries with hierarchical numbers")
	flags.BoolVar(&app.opts.commonMark, "commonmark", false, "parse headings with a CommonMark parser (setext headings, skips code blocks)")
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write the index to file instead of stdout")
	flags.StringVar(&app.opts.configPath, "config", "", "YAML file with default options")
	flags.StringVar(&app.opts.logLevel, "log-level", "warn", "diagnostic log level (debug, info, warn, error)")

	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return []string{"md", "markdown"}, cobra.ShellCompDirectiveFilterFileExt
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, args[0], cmd.Flags().Changed)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

var completionWriters = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletion(w) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletion(w) },
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: strings.TrimSpace(`
Print a completion script so the shell can complete mdindex flags such as
--base-level and --numbered, and offer Markdown files for the document argument.

  source <(mdindex completion bash)
  mdindex completion zsh > "${fpath[1]}/_mdindex"
  mdindex completion fish > ~/.config/fish/completions/mdindex.fish
`),
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		gen, ok := completionWriters[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell %q", args[0])
		}
		return gen(root, cmd.OutOrStdout())
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	var withIndex bool
	cmd := &cobra.Command{
		Use:   "gen-docs <directory>",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write one Markdown page per mdindex command into directory. With --index, the
root page is run back through mdindex and its table of contents is saved as
INDEX.md next to the pages.

  mdindex gen-docs --index ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&withIndex, "index", false, "also write INDEX.md for the root command page")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return errors.New("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		if err := cobradoc.GenMarkdownTree(root, target); err != nil {
			return err
		}
		if !withIndex {
			return nil
		}
		return writeDocsIndex(filepath.Join(target, root.Name()+".md"), filepath.Join(target, "INDEX.md"))
	}
	return cmd
}

// writeDocsIndex indexes a generated command page. Cobra titles pages with
// "##", so that depth becomes the top of the outline.
func writeDocsIndex(page, dest string) error {
	content, err := readDocument(page)
	if err != nil {
		return err
	}
	lines := renderIndex(parseHeadings(splitLines(string(content)), 2), indexOptions{links: true})
	return writeOutput(dest, io.Discard, []byte(strings.Join(lines, "\n")+"\n"))
}
