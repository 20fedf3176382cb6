package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"steel/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new steel project",
	Long: `Initialize a new steel project by creating a project manifest (steel.toml)
and a sample source file (main.st). If [path|name] is omitted, initializes
the current directory. A non-existing name creates the directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target, err := resolveInitTarget(args)
	if err != nil {
		return err
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "steel-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	outer, nested, err := project.FindProjectRoot(filepath.Dir(target))
	if err != nil {
		return err
	}
	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest(name)), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, "main.st")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainST), 0o600); err != nil {
			return fmt.Errorf("failed to write main.st: %w", err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized steel project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if createdMain {
		fmt.Fprintf(out, "  - main.st\n")
	} else {
		fmt.Fprintf(out, "  - main.st (existing)\n")
	}
	if nested {
		fmt.Fprintf(out, "note: nested inside the project at %s\n", outer)
	}
	return nil
}

func resolveInitTarget(args []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if len(args) == 0 || args[0] == "." {
		return wd, nil
	}
	if filepath.IsAbs(args[0]) {
		return args[0], nil
	}
	return filepath.Join(wd, args[0]), nil
}

// buildDefaultManifest returns a steel.toml with every section spelled out
// at its default value.
func buildDefaultManifest(name string) string {
	d := project.Defaults()
	exts := make([]string, len(d.Lexer.Extensions))
	for i, ext := range d.Lexer.Extensions {
		exts[i] = fmt.Sprintf("%q", ext)
	}
	return fmt.Sprintf(`# steel project manifest
[package]
name = %q

[lexer]
# extra instruction names on top of the built-in set
mnemonics = []
extensions = [%s]
window = { behind = %d, ahead = %d }

[output]
format = %q # pretty|json
color = %q  # auto|on|off
`, name, strings.Join(exts, ", "), d.Lexer.Window.Behind, d.Lexer.Window.Ahead, d.Output.Format, d.Output.Color)
}

const defaultMainST = `.data
msg:    .ascii "Hello, steel!\n"
len:    .word 14

.text
start:  mov r0, 1
        lea r1, [msg]
        ld r2, [len]
        syscall
        halt
`
