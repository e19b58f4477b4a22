package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmostafa/topdown/internal/generator"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// generateFlags are shared by the commands that produce a document.
type generateFlags struct {
	configFile string
	output     string
	title      string
	format     string
	fileExt    bool
	separator  string
	footer     string
	noFooter   bool
	ignore     []string
	stdout     bool
}

func (f *generateFlags) register(cmd *cobra.Command, base generator.Config, withOutput bool) {
	f.registerScan(cmd, base, withOutput)

	flags := cmd.Flags()
	flags.StringVar(&f.title, "title", base.Title, "Heading of the generated document")
	flags.StringVar(&f.format, "format", base.Format, "List format: unordered|ordered")
	flags.BoolVar(&f.fileExt, "file-ext", base.FileExt, "Keep the .md extension in links")
	flags.StringVar(&f.footer, "footer", base.Footer, "Custom footer file in the target directory")
	flags.BoolVar(&f.noFooter, "no-footer", false, "Omit the footer")
	flags.BoolVar(&f.stdout, "stdout", false, "Print the document instead of writing it")
}

// registerScan adds the flags that decide which files are scanned and how
// they are split.
func (f *generateFlags) registerScan(cmd *cobra.Command, base generator.Config, withOutput bool) {
	flags := cmd.Flags()
	flags.StringVar(&f.configFile, "config", "", "Config file (default: .topdown.yaml in the target directory)")
	if withOutput {
		flags.StringVarP(&f.output, "output", "o", base.Output, "Output filename inside the target directory")
	}
	flags.StringVar(&f.separator, "separator", base.Separator, "Hierarchy separator in filenames")
	flags.StringSliceVar(&f.ignore, "ignore", nil, "Filenames or glob patterns to skip (repeatable)")
}

// resolveConfig layers the config file and the flags the user set on base.
func (f *generateFlags) resolveConfig(cmd *cobra.Command, dir string, base generator.Config) (generator.Config, error) {
	cfg := base

	path := f.configFile
	if path == "" {
		path = generator.FindConfig(dir)
	}
	if path != "" {
		loaded, err := generator.LoadConfig(path, cfg)
		if err != nil {
			return cfg, err
		}
		slog.Debug("Loaded config file.", "path", path)
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("title") {
		cfg.Title = f.title
	}
	if flags.Changed("format") {
		cfg.Format = f.format
	}
	if flags.Changed("file-ext") {
		cfg.FileExt = f.fileExt
	}
	if flags.Changed("separator") {
		cfg.Separator = f.separator
	}
	if flags.Changed("footer") {
		cfg.Footer = f.footer
	}
	if f.noFooter {
		cfg.Footer = generator.FooterDisabled
	}
	if flags.Changed("ignore") {
		cfg.Ignore = append(cfg.Ignore, f.ignore...)
	}
	return cfg, nil
}

// run builds the document for dir and prints or writes it.
func (f *generateFlags) run(cmd *cobra.Command, dir string, base generator.Config) error {
	cfg, err := f.resolveConfig(cmd, dir, base)
	if err != nil {
		return err
	}

	g, err := generator.New(dir, cfg)
	if err != nil {
		return err
	}

	if f.stdout {
		result, err := g.Build()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Content)
		return nil
	}

	result, err := g.Create(cfg.Output)
	if err != nil {
		return err
	}
	generator.FormatSummary(cmd.OutOrStdout(), result, isTerminal(cmd))
	return nil
}

func targetDir(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

// isTerminal reports whether the command writes to an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
