package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/colorscripts/internal/selector"
)

// Config holds the options for a single run.
type Config struct {
	// DataDir holds nameslist.txt and the colorscripts/ artwork tree.
	// Empty means the directory of the executable.
	DataDir string `env:"COLORSCRIPTS_DIR"`
	// Seed for random number generation. A seed of 0 means a time-based seed.
	Seed int64 `env:"COLORSCRIPTS_SEED" envDefault:"0"`
	// TitleColor and ShinyTitleColor are hex or named colors for the title
	// line. Empty leaves the title uncolored.
	TitleColor      string `env:"COLORSCRIPTS_TITLE_COLOR"`
	ShinyTitleColor string `env:"COLORSCRIPTS_SHINY_TITLE_COLOR"`

	Help      bool
	List      bool
	Name      string
	NoTitle   bool
	Shiny     bool
	Random    string
	RandomSet bool
}

// Mode returns the action selected by the flags. List wins over name, name
// over random; with none of them the help text is shown.
func (c Config) Mode() Mode {
	switch {
	case c.Help:
		return ModeHelp
	case c.List:
		return ModeList
	case c.Name != "":
		return ModeName
	case c.RandomSet && c.Random != "":
		return ModeRandom
	default:
		return ModeHelp
	}
}

// LoadEnv fills the environment-backed fields of cfg.
func LoadEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ErrUsage marks errors from flag parsing. The flag set has already reported
// them, together with the usage text, on its output.
var ErrUsage = errors.New("invalid usage")

// ParseConfig parses args into a Config, then reads the environment. Help
// ignores environment errors so it is always reachable.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config

	fs.BoolVar(&cfg.Help, "h", false, "Show this help message and exit")
	fs.BoolVar(&cfg.Help, "help", false, "Show this help message and exit")
	fs.BoolVar(&cfg.List, "l", false, "Print list of all pokemon")
	fs.BoolVar(&cfg.List, "list", false, "Print list of all pokemon")
	fs.StringVar(&cfg.Name, "n", "", "Select pokemon by name")
	fs.StringVar(&cfg.Name, "name", "", "Select pokemon by name")
	fs.BoolVar(&cfg.NoTitle, "no-title", false, "Do not display pokemon name")
	fs.BoolVar(&cfg.Shiny, "s", false, "Show the shiny version of the pokemon instead")
	fs.BoolVar(&cfg.Shiny, "shiny", false, "Show the shiny version of the pokemon instead")
	setRandom := func(v string) error {
		cfg.Random = v
		cfg.RandomSet = true
		return nil
	}
	fs.Func("r", "Show a random pokemon, optionally from a generation, range (1-3) or list (1,3,6)", setRandom)
	fs.Func("random", "Show a random pokemon, optionally from a generation, range (1-3) or list (1,3,6)", setRandom)
	fs.Usage = func() { writeUsage(fs.Output()) }

	if err := fs.Parse(normalizeArgs(args)); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if err := LoadEnv(&cfg); err != nil && cfg.Mode() != ModeHelp {
		return Config{}, err
	}

	if cfg.DataDir == "" {
		dir, err := executableDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = dir
	}

	return cfg, nil
}

// randomFlags are the spellings the flag package accepts for the random flag.
var randomFlags = map[string]bool{"-r": true, "--r": true, "-random": true, "--random": true}

// normalizeArgs gives a bare random flag its default specifier, since the
// flag package has no optional values.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		out = append(out, arg)
		if arg == "--" {
			return append(out, args[i+1:]...)
		}
		if !randomFlags[arg] {
			continue
		}
		if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
			out = append(out, selector.DefaultSpecifier)
		}
	}
	return out
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Dir(exe)
	if dir == "" {
		return "", errors.New("locate executable: empty directory")
	}
	return dir, nil
}
