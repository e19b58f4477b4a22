package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/itsmostafa/topdown/internal/toc"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// FooterDisabled is the Footer value that turns the footer off.
const FooterDisabled = "-"

// DefaultOutput is the file written by Create when no name is given.
const DefaultOutput = "Table-of-Contents.md"

// ConfigFileNames are looked up in the target directory, in order.
var ConfigFileNames = []string{".topdown.yaml", ".topdown.yml"}

// Config holds the options of a generation run.
type Config struct {
	// Title is the text of the document heading
	Title string `yaml:"title"`

	// Format is the list style: "unordered" or "ordered"
	Format string `yaml:"format"`

	// FileExt keeps the .md extension in link targets
	FileExt bool `yaml:"file_ext"`

	// Separator splits filenames into hierarchy levels
	Separator string `yaml:"separator"`

	// Footer names a custom footer file in the target directory. Empty uses
	// the bundled footer, FooterDisabled omits the footer.
	Footer string `yaml:"footer"`

	// Ignore lists filenames or glob patterns excluded from the scan
	Ignore []string `yaml:"ignore"`

	// Output is the filename written inside the target directory
	Output string `yaml:"output"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Title:     "Table of Contents",
		Format:    string(toc.Unordered),
		FileExt:   true,
		Separator: toc.DefaultSeparator,
		Output:    DefaultOutput,
	}
}

// GitHubWikiSidebar returns the preset for a GitHub wiki sidebar. Wiki links
// have no extension and the special wiki pages are left out.
func GitHubWikiSidebar() Config {
	cfg := DefaultConfig()
	cfg.FileExt = false
	cfg.Output = "_Sidebar.md"
	cfg.Ignore = []string{"_Sidebar.md", "_Footer.md", "Home.md"}
	return cfg
}

// FooterEnabled reports whether a footer is attached.
func (c Config) FooterEnabled() bool {
	return c.Footer != FooterDisabled
}

// IgnoreSet returns the entries excluded from the scan: the configured
// ones, the custom footer file and the output file. The footer and output
// names are quoted so glob characters in them match literally.
func (c Config) IgnoreSet() []string {
	set := append([]string{}, c.Ignore...)
	if c.Footer != "" && c.FooterEnabled() {
		set = append(set, glob.QuoteMeta(c.Footer))
	}
	if c.Output != "" {
		set = append(set, glob.QuoteMeta(c.Output))
	}
	return lo.Uniq(lo.Compact(set))
}

// ListStyle returns the parsed Format.
func (c Config) ListStyle() (toc.ListStyle, error) {
	return toc.ParseListStyle(c.Format)
}

// Validate checks the configuration for values the builder cannot use.
func (c Config) Validate() error {
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}
	if _, err := c.ListStyle(); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a YAML config file and overlays it on base. Keys absent
// from the file keep the value from base. The file's ignore entries are
// added to those of base, so presets keep their ignored pages.
func LoadConfig(path string, base Config) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := base
	cfg.Ignore = nil
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Ignore = lo.Uniq(append(append([]string{}, base.Ignore...), cfg.Ignore...))
	return cfg, nil
}

// FindConfig returns the path of the first config file present in dir, or
// an empty string when there is none.
func FindConfig(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}
