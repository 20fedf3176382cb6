package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"

	"steel/internal/diagfmt"
	"steel/internal/driver"
	"steel/internal/lexer"
	"steel/internal/project"
)

func TestDefaultManifestLoads(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, project.ManifestName)
	if err := os.WriteFile(path, []byte(buildDefaultManifest("demo")), 0o600); err != nil {
		t.Fatalf("write steel.toml: %v", err)
	}
	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Config.Package.Name != "demo" {
		t.Fatalf("package name = %q", m.Config.Package.Name)
	}
	if m.Config.Fingerprint() != project.Defaults().Fingerprint() {
		t.Fatal("default manifest must not change the token stream")
	}
}

func TestDefaultMainLexes(t *testing.T) {
	if _, err := lexer.Lex(defaultMainST, lexer.Options{}); err != nil {
		t.Fatalf("sample program: %v", err)
	}
}

func TestReadModes(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"", "auto"}, {"AUTO", "auto"}, {"on", "on"}, {" off ", "off"},
	} {
		got, err := readColorMode(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("readColorMode(%q) = %q, %v", tc.in, got, err)
		}
	}
	if _, err := readColorMode("always"); err == nil {
		t.Fatal("expected error for unknown color mode")
	}

	if !resolveColor("on", false) || resolveColor("off", true) || !resolveColor("auto", true) || resolveColor("auto", false) {
		t.Fatal("resolveColor mismatch")
	}

	if m, err := readUIMode("On"); err != nil || m != uiModeOn {
		t.Fatalf("readUIMode(On) = %q, %v", m, err)
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Fatal("expected error for unknown progress mode")
	}
	if shouldUseTUI(uiModeOff, false) || !shouldUseTUI(uiModeOn, true) {
		t.Fatal("explicit progress modes must win")
	}
}

func writeSource(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReportOutputs(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.st", ".word 1, 2\n")
	writeSource(t, dir, "b.st", "mov \"open\n")

	report, err := tokenizeDir(context.Background(), nil, dir, driver.Options{MaxDiagnostics: 10}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.files) != 2 || !report.hasErrors() {
		t.Fatalf("unexpected report: %+v", report.files)
	}

	var pretty bytes.Buffer
	if err := writePrettyTokens(&pretty, report); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"a.st <==", "b.st <==", "List", "EndBlock"} {
		if !strings.Contains(pretty.String(), want) {
			t.Errorf("pretty output missing %q:\n%s", want, pretty.String())
		}
	}

	var diags bytes.Buffer
	writePrettyDiagnostics(&diags, report, false, diagfmt.PathModeBasename)
	if !strings.Contains(diags.String(), "b.st:1:5: error LEX1001") {
		t.Errorf("diagnostics:\n%s", diags.String())
	}

	var short bytes.Buffer
	writeShortDiagnostics(&short, report)
	if !strings.HasPrefix(short.String(), "error LEX1001 ") {
		t.Errorf("short diagnostics: %q", short.String())
	}

	var js bytes.Buffer
	if err := writeJSONReport(&js, report, diagfmt.PathModeBasename); err != nil {
		t.Fatal(err)
	}
	var files []diagfmt.FileTokensJSON
	if err := json.Unmarshal(js.Bytes(), &files); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, js.String())
	}
	if len(files) != 2 || len(files[0].Diagnostics) != 0 || len(files[1].Diagnostics) != 1 {
		t.Fatalf("json report: %+v", files)
	}
	if files[1].Diagnostics[0].Location.File != "b.st" {
		t.Errorf("diagnostic file = %q", files[1].Diagnostics[0].Location.File)
	}
}

func TestSingleFileJSONIsObject(t *testing.T) {
	path := writeSource(t, t.TempDir(), "one.st", "nop\n")
	report, err := tokenizeFile(context.Background(), path, driver.Options{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	var js bytes.Buffer
	if err := writeJSONReport(&js, report, diagfmt.PathModeAuto); err != nil {
		t.Fatal(err)
	}
	var file diagfmt.FileTokensJSON
	if err := json.Unmarshal(js.Bytes(), &file); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, js.String())
	}
	if file.File != path || len(file.Tokens) != 2 {
		t.Fatalf("unexpected file record: %+v", file)
	}
}
