package project

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"steel/internal/cursor"
	"steel/internal/lexer"
	"steel/internal/token"
)

// Manifest is a loaded steel.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the steel.toml layout.
type Config struct {
	Package PackageConfig `toml:"package"`
	Lexer   LexerConfig   `toml:"lexer"`
	Output  OutputConfig  `toml:"output"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type LexerConfig struct {
	Mnemonics  []string     `toml:"mnemonics"`
	Window     WindowConfig `toml:"window"`
	Extensions []string     `toml:"extensions"`
}

type WindowConfig struct {
	Behind int `toml:"behind"`
	Ahead  int `toml:"ahead"`
}

type OutputConfig struct {
	Format string `toml:"format"` // pretty|json
	Color  string `toml:"color"`  // auto|on|off
}

// DefaultExtensions are the source file suffixes picked up from directories.
var DefaultExtensions = []string{".st", ".s", ".asm"}

// Defaults returns the configuration used when no manifest exists.
func Defaults() Config {
	return Config{
		Lexer: LexerConfig{
			Window: WindowConfig{
				Behind: cursor.DefaultWindow.Behind,
				Ahead:  cursor.DefaultWindow.Ahead,
			},
			Extensions: slices.Clone(DefaultExtensions),
		},
		Output: OutputConfig{Format: "pretty", Color: "auto"},
	}
}

// Load decodes and validates the manifest at path. Keys absent from the
// file keep their default values.
func Load(path string) (*Manifest, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("package", "name") && strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: [package].name must not be empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// Discover finds steel.toml above startDir and loads it.
// ok is false when there is no manifest.
func Discover(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err = Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	for _, name := range c.Lexer.Mnemonics {
		switch {
		case strings.TrimSpace(name) == "":
			return fmt.Errorf("[lexer].mnemonics: empty mnemonic")
		case strings.HasPrefix(name, "."):
			return fmt.Errorf("[lexer].mnemonics: %q starts with '.', which marks a directive", name)
		}
	}
	if c.Lexer.Window.Behind < 0 || c.Lexer.Window.Ahead < 0 {
		return fmt.Errorf("[lexer].window: bounds must not be negative")
	}
	for _, ext := range c.Lexer.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("[lexer].extensions: %q is not a file extension", ext)
		}
	}
	switch c.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("[output].format: unknown format %q (expected pretty|json)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color: unknown value %q (expected auto|on|off)", c.Output.Color)
	}
	return nil
}

// MnemonicSet returns the default instruction set extended by the manifest.
func (c Config) MnemonicSet() *token.MnemonicSet {
	if len(c.Lexer.Mnemonics) == 0 {
		return token.DefaultMnemonics
	}
	return token.NewMnemonicSet(c.Lexer.Mnemonics...)
}

// LexerOptions builds lexer options from the configuration.
func (c Config) LexerOptions() lexer.Options {
	return lexer.Options{
		Mnemonics: c.MnemonicSet(),
		Window: cursor.Window{
			Behind: c.Lexer.Window.Behind,
			Ahead:  c.Lexer.Window.Ahead,
		},
	}
}

// Fingerprint identifies the token-affecting part of the configuration.
func (c Config) Fingerprint() Digest {
	return Fingerprint(c.MnemonicSet().Names(), c.Lexer.Window.Behind, c.Lexer.Window.Ahead)
}
