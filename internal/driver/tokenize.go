package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"steel/internal/diag"
	"steel/internal/lexer"
	"steel/internal/project"
	"steel/internal/source"
	"steel/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Module  *Module
	Bag     *diag.Bag
	Cached  bool // tokens came from the disk cache
}

// Tokenize loads one file and lexes it. Lexical errors end up in Bag;
// only I/O failures and cancellation are returned as errors.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	endLoad := opts.Timings.Track("load")
	fileID, err := fs.Load(path)
	if err != nil {
		endLoad("failed")
		return nil, err
	}
	endLoad(path)
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	mod, cached := tokenizeFile(ctx, file, opts, bag)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Module:  mod,
		Bag:     bag,
		Cached:  cached,
	}, nil
}

// tokenizeFile lexes file (or reads its tokens from the cache) and reports
// problems into bag.
func tokenizeFile(ctx context.Context, file *source.File, opts Options, bag *diag.Bag) (*Module, bool) {
	tracer := opts.Lexer.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	span := trace.Begin(tracer, trace.ScopeModule, "module:"+file.Name(), trace.Parent(ctx))
	mod := newModule(file)
	key := project.Combine(file.Hash, opts.Fingerprint)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	if opts.Cache != nil {
		started := time.Now()
		emit(opts.Progress, Event{File: file.Path, Stage: StageCache, Status: StatusWorking})
		endCache := opts.Timings.Track("cache")
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		endCache(file.Name())
		switch {
		case err != nil:
			diag.ReportWarning(rep, diag.IOCacheError, file.ID, source.At(source.Start),
				fmt.Sprintf("token cache unreadable, lexing again: %v", err)).Emit()
		case hit && payload.ContentHash == file.Hash:
			mod.Tokens = payload.Tokens
			emit(opts.Progress, Event{File: file.Path, Stage: StageCache, Status: StatusDone, Elapsed: time.Since(started)})
			span.WithExtra("cache", "hit").End(strconv.Itoa(len(mod.Tokens)) + " tokens")
			return mod, true
		}
	}

	started := time.Now()
	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusWorking})

	lexOpts := opts.Lexer
	lexOpts.Tracer = tracer
	lexOpts.Origin = source.Start
	endLex := opts.Timings.Track("lex")
	toks, err := lexer.Lex(file.Text(), lexOpts)
	endLex(file.Name())
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			d := lexErr.Diagnostic(file.ID)
			rep.Report(d.Code, d.Severity, d.File, d.Primary, d.Message, d.Notes)
		} else {
			diag.ReportError(rep, diag.UnknownCode, file.ID, source.At(source.Start), err.Error()).Emit()
		}
		emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		span.WithExtra("error", err.Error()).End("failed")
		return mod, false
	}
	mod.Tokens = toks
	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusDone, Elapsed: time.Since(started)})

	if opts.Cache != nil {
		payload := &DiskPayload{Path: file.Path, ContentHash: file.Hash, Tokens: toks}
		if err := opts.Cache.Put(key, payload); err != nil {
			diag.ReportWarning(rep, diag.IOCacheError, file.ID, source.At(source.Start),
				fmt.Sprintf("failed to store tokens in cache: %v", err)).Emit()
		}
	}

	span.End(strconv.Itoa(len(toks)) + " tokens")
	return mod, false
}
