package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/itsmostafa/topdown/internal/fileutil"
	"github.com/itsmostafa/topdown/internal/toc"
)

// ErrInvalidDirectory is returned by New when the target is not a usable
// directory.
var ErrInvalidDirectory = errors.New("invalid directory")

// Generator produces a table of contents for one directory.
type Generator struct {
	dir string
	cfg Config
}

// Result describes one generation run.
type Result struct {
	// Output is the path of the written file, empty for Build
	Output string
	// Content is the assembled document
	Content string
	// Files is the number of scanned files fed to the builder
	Files int
	// Nodes is the number of tree nodes, equal to the rendered line count
	Nodes int
	// Written is false when the output already had identical content
	Written bool
	// FooterSource is the custom footer filename, BundledFooter, or empty
	// when the footer is disabled
	FooterSource string
	// Tree is the hierarchy the document was rendered from
	Tree *toc.Tree
}

// New validates dir and cfg and returns a Generator for them.
func New(dir string, cfg Config) (*Generator, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirectory, dir)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Generator{dir: dir, cfg: cfg}, nil
}

// Dir returns the scanned directory.
func (g *Generator) Dir() string {
	return g.dir
}

// Config returns the configuration of the generator.
func (g *Generator) Config() Config {
	return g.cfg
}

// Tree scans the directory and builds the hierarchy without rendering it.
func (g *Generator) Tree() (*toc.Tree, []string, error) {
	return g.tree(g.cfg)
}

func (g *Generator) tree(cfg Config) (*toc.Tree, []string, error) {
	files, err := ScanFiles(g.dir, toc.DefaultExtension, NewMatcher(cfg.IgnoreSet()))
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("Scanned directory.", "directory", g.dir, "files", len(files))

	builder := toc.NewBuilder(cfg.Separator, toc.DefaultExtension)
	return builder.Build(files), files, nil
}

// Exists returns the existence check used for link rendering.
func (g *Generator) Exists() toc.ExistsFunc {
	return toc.FileExists(os.DirFS(g.dir))
}

// Build renders the document without writing it.
func (g *Generator) Build() (*Result, error) {
	return g.build(g.cfg)
}

func (g *Generator) build(cfg Config) (*Result, error) {
	tree, files, err := g.tree(cfg)
	if err != nil {
		return nil, err
	}

	style, err := cfg.ListStyle()
	if err != nil {
		return nil, err
	}
	opts := toc.DefaultOptions()
	opts.Style = style
	opts.FileExt = cfg.FileExt
	opts.Exists = g.Exists()
	lines := toc.Render(tree, opts)

	footer, source, err := LoadFooter(g.dir, cfg)
	if err != nil {
		return nil, err
	}
	if source != "" {
		slog.Debug("Attaching footer.", "source", source, "lines", len(footer))
	}

	return &Result{
		Content:      toc.Assemble(toc.Heading(cfg.Title), lines, footer),
		Files:        len(files),
		Nodes:        len(lines),
		FooterSource: source,
		Tree:         tree,
	}, nil
}

// Create builds the document and writes it to filename inside the
// directory, replacing any existing content. An empty filename uses the
// configured output. The written file is left out of the scan.
func (g *Generator) Create(filename string) (*Result, error) {
	cfg := g.cfg
	if filename != "" {
		cfg.Output = filename
	}
	if cfg.Output == "" {
		return nil, errors.New("no output filename")
	}

	result, err := g.build(cfg)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(g.dir, cfg.Output)
	written, err := fileutil.WriteIfChanged(path, []byte(result.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	slog.Debug("Wrote table of contents.", "path", path, "changed", written)

	result.Output = path
	result.Written = written
	return result, nil
}
