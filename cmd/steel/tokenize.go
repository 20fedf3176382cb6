package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"steel/internal/diag"
	"steel/internal/diagfmt"
	"steel/internal/driver"
	"steel/internal/observ"
	"steel/internal/project"
	"steel/internal/source"
	"steel/internal/token"
	"steel/internal/ui"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|dir>",
	Short: "Tokenize steel assembly sources",
	Long: `Tokenize breaks a source file, or every source file under a directory,
into tokens. Directive operands are re-lexed into nested lists.
Diagnostics go to stderr, tokens to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json); defaults to steel.toml")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse tokens from the on-disk cache")
	tokenizeCmd.Flags().String("progress", "auto", "progress UI for directories (auto|on|off)")
	tokenizeCmd.Flags().String("path-mode", "auto", "file path display (auto|absolute|relative|basename)")
}

// fileReport is the outcome for one source file.
type fileReport struct {
	path   string
	fileID source.FileID
	tokens []token.Token
	bag    *diag.Bag
	cached bool
}

type tokenizeReport struct {
	fs    *source.FileSet
	files []fileReport
	dir   bool
}

func (r *tokenizeReport) hasErrors() bool {
	for _, f := range r.files {
		if f.bag.HasErrors() {
			return true
		}
	}
	return false
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]

	s, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}
	format, err := readFormat(cmd, s.cfg.Output.Format)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	progressFlag, err := cmd.Flags().GetString("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	mode, err := readUIMode(progressFlag)
	if err != nil {
		return err
	}
	pathModeFlag, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, err := diagfmt.ParsePathMode(pathModeFlag)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	opts := driver.Options{
		Lexer:          s.cfg.LexerOptions(),
		MaxDiagnostics: s.maxDiags,
		Jobs:           jobs,
		Extensions:     s.cfg.Lexer.Extensions,
	}
	var timer *observ.Timer
	if s.timings {
		timer = observ.NewTimer()
		opts.Timings = timer
	}
	if useCache {
		cache, err := driver.OpenDiskCache("steel")
		if err != nil {
			return fmt.Errorf("failed to open token cache: %w", err)
		}
		opts.Cache = cache
		opts.Fingerprint = s.cfg.Fingerprint()
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	var report *tokenizeReport
	if info.IsDir() {
		report, err = tokenizeDir(cmd.Context(), cmd.ErrOrStderr(), target, opts, shouldUseTUI(mode, s.quiet))
	} else {
		report, err = tokenizeFile(cmd.Context(), target, opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	switch {
	case s.quiet:
		writeShortDiagnostics(errOut, report)
	case format == "json":
		if err := writeJSONReport(out, report, pathMode); err != nil {
			return err
		}
	default:
		writePrettyDiagnostics(errOut, report, s.color, pathMode)
		if err := writePrettyTokens(out, report); err != nil {
			return err
		}
	}

	if timer != nil {
		fmt.Fprint(errOut, timer.Summary())
	}
	if report.hasErrors() {
		return exitError{code: 1}
	}
	return nil
}

func tokenizeFile(ctx context.Context, path string, opts driver.Options) (*tokenizeReport, error) {
	res, err := driver.Tokenize(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return &tokenizeReport{
		fs: res.FileSet,
		files: []fileReport{{
			path:   path,
			fileID: res.File.ID,
			tokens: res.Module.Tokens,
			bag:    res.Bag,
			cached: res.Cached,
		}},
	}, nil
}

type dirOutcome struct {
	fs      *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

func tokenizeDir(ctx context.Context, uiOut io.Writer, dir string, opts driver.Options, useUI bool) (*tokenizeReport, error) {
	var outcome dirOutcome
	if useUI {
		exts := opts.Extensions
		if len(exts) == 0 {
			exts = project.DefaultExtensions
		}
		files, err := driver.ListSourceFiles(dir, exts)
		if err != nil {
			return nil, err
		}

		events := make(chan driver.Event, 256)
		outcomeCh := make(chan dirOutcome, 1)
		go func() {
			optsCopy := opts
			optsCopy.Progress = driver.ChannelSink{Ch: events}
			fs, results, err := driver.TokenizeDir(ctx, dir, optsCopy)
			outcomeCh <- dirOutcome{fs: fs, results: results, err: err}
			close(events)
		}()

		uiErr := ui.RunProgress(uiOut, "tokenize "+dir, files, events)
		for range events {
			// UI мог выйти раньше: не даём воркерам заблокироваться
		}
		outcome = <-outcomeCh
		if uiErr != nil && outcome.err == nil {
			outcome.err = uiErr
		}
	} else {
		outcome.fs, outcome.results, outcome.err = driver.TokenizeDir(ctx, dir, opts)
	}
	if outcome.err != nil {
		return nil, outcome.err
	}

	report := &tokenizeReport{fs: outcome.fs, dir: true, files: make([]fileReport, 0, len(outcome.results))}
	for _, res := range outcome.results {
		fr := fileReport{path: res.Path, fileID: res.FileID, bag: res.Bag, cached: res.Cached}
		if res.Module != nil {
			fr.tokens = res.Module.Tokens
		}
		report.files = append(report.files, fr)
	}
	return report, nil
}

func writeShortDiagnostics(w io.Writer, report *tokenizeReport) {
	all := diag.NewBag(1)
	for _, f := range report.files {
		all.Merge(f.bag)
	}
	all.Sort()
	all.Dedup()
	if text := diag.FormatShortDiagnostics(all.Items(), report.fs, false); text != "" {
		fmt.Fprintln(w, text)
	}
}

func writePrettyDiagnostics(w io.Writer, report *tokenizeReport, useColor bool, pathMode diagfmt.PathMode) {
	opts := diagfmt.PrettyOpts{
		Color:     useColor,
		Context:   2,
		PathMode:  pathMode,
		ShowNotes: true,
	}
	for _, f := range report.files {
		if f.bag.Len() == 0 {
			continue
		}
		f.bag.Sort()
		diagfmt.Pretty(w, f.bag, report.fs, opts)
	}
}

func writePrettyTokens(w io.Writer, report *tokenizeReport) error {
	for i, f := range report.files {
		if report.dir {
			if i > 0 {
				fmt.Fprintln(w)
			}
			suffix := ""
			if f.cached {
				suffix = " (cached)"
			}
			fmt.Fprintf(w, "==> %s <==%s\n", f.path, suffix)
		}
		if err := diagfmt.FormatTokensPretty(w, f.tokens); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONReport(w io.Writer, report *tokenizeReport, pathMode diagfmt.PathMode) error {
	jsonOpts := diagfmt.JSONOpts{PathMode: pathMode, IncludeNotes: true}
	files := make([]diagfmt.FileTokensJSON, 0, len(report.files))
	for _, f := range report.files {
		f.bag.Sort()
		files = append(files, diagfmt.FileTokensJSON{
			File:        f.path,
			Cached:      f.cached,
			Tokens:      diagfmt.BuildTokensOutput(f.tokens),
			Diagnostics: diagfmt.BuildDiagnostics(f.bag.Items(), report.fs, jsonOpts),
		})
	}
	if !report.dir && len(files) == 1 {
		return diagfmt.WriteJSON(w, files[0])
	}
	return diagfmt.WriteJSON(w, files)
}
