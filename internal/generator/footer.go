package generator

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/itsmostafa/topdown/internal/toc"
)

//go:embed footer.md
var defaultFooter string

// BundledFooter names the footer source when the embedded footer is used.
const BundledFooter = "bundled"

// LoadFooter returns the footer lines for cfg and the source they came
// from. A custom footer present in dir wins over the bundled one. It
// returns nil lines when the footer is disabled.
func LoadFooter(dir string, cfg Config) ([]string, string, error) {
	if !cfg.FooterEnabled() {
		return nil, "", nil
	}

	if cfg.Footer != "" {
		path := filepath.Join(dir, cfg.Footer)
		content, err := os.ReadFile(path)
		switch {
		case err == nil:
			return toc.SplitLines(string(content)), cfg.Footer, nil
		case !os.IsNotExist(err):
			return nil, "", fmt.Errorf("failed to read footer file: %w", err)
		}
	}

	return toc.SplitLines(defaultFooter), BundledFooter, nil
}
