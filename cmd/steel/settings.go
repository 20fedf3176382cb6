package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"steel/internal/project"
)

// settings is the effective configuration of one command: steel.toml (or
// defaults) with command-line flags applied on top.
type settings struct {
	cfg      project.Config
	manifest *project.Manifest // nil — steel.toml не найден
	color    bool
	quiet    bool
	timings  bool
	maxDiags int
}

// loadSettings reads --config, or discovers steel.toml starting from the
// directory of target, and applies persistent flag overrides.
func loadSettings(cmd *cobra.Command, target string) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	s := &settings{cfg: project.Defaults()}
	switch {
	case configPath != "":
		m, err := project.Load(configPath)
		if err != nil {
			return nil, err
		}
		s.manifest = m
	default:
		m, ok, err := project.Discover(startDir(target))
		if err != nil {
			return nil, err
		}
		if ok {
			s.manifest = m
		}
	}
	if s.manifest != nil {
		s.cfg = s.manifest.Config
	}

	if flags.Changed("color") {
		value, _ := flags.GetString("color")
		mode, err := readColorMode(value)
		if err != nil {
			return nil, err
		}
		s.cfg.Output.Color = mode
	}
	s.color = resolveColor(s.cfg.Output.Color, isTerminal(os.Stderr))
	// version and other fatih/color users follow the same decision
	color.NoColor = !s.color

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.maxDiags, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return s, nil
}

func startDir(target string) string {
	if target == "" {
		return "."
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return target
	}
	return filepath.Dir(target)
}

func readColorMode(value string) (string, error) {
	switch v := strings.TrimSpace(strings.ToLower(value)); v {
	case "", "auto":
		return "auto", nil
	case "on", "off":
		return v, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func resolveColor(mode string, tty bool) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return tty
	}
}

// readFormat returns the --format flag when set, otherwise the manifest value.
func readFormat(cmd *cobra.Command, fallback string) (string, error) {
	format := fallback
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	switch format = strings.ToLower(format); format {
	case "pretty", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unknown format: %s (expected pretty|json)", format)
	}
}
