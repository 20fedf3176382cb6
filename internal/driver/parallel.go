package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"steel/internal/diag"
	"steel/internal/source"
	"steel/internal/trace"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // Путь к файлу
	FileID source.FileID // ID файла в FileSet
	Module *Module       // nil, если файл не загрузился
	Bag    *diag.Bag     // Диагностики
	Cached bool
}

// ListSourceFiles возвращает отсортированный список исходников в директории.
func ListSourceFiles(dir string, exts []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// скрытые каталоги (.git, .cache) пропускаем
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(exts, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все исходники в директории параллельно.
// Ошибка в одном файле не останавливает остальные: она попадает в его Bag.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	tracer := opts.Lexer.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	span := trace.Begin(tracer, trace.ScopePass, "tokenize-dir", trace.Parent(ctx))
	ctx = trace.WithParent(ctx, span.ID())
	defer span.End(dir)

	files, err := ListSourceFiles(dir, opts.extensions())
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Предзагружаем все файлы: FileSet не потокобезопасен на запись
	loadErrors := make(map[string]error, len(files))
	endLoad := opts.Timings.Track("load")
	for _, path := range files {
		if _, err := fileSet.Load(path); err != nil {
			// пустая запись, чтобы диагностике было к чему привязаться
			loadErrors[path] = err
			fileSet.Add(path, nil, source.FileVirtual)
		}
	}
	endLoad(strconv.Itoa(len(files)) + " files")

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				return err
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			fileID, _ := fileSet.GetLatest(path)

			if loadErr, hadError := loadErrors[path]; hadError {
				results[i] = TokenizeDirResult{Path: path, FileID: fileID, Bag: bag}
				bag.Add(diag.NewError(diag.IOLoadFileError, fileID, source.At(source.Start),
					"failed to load file: "+loadErr.Error()))
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}

			mod, cached := tokenizeFile(gctx, fileSet.Get(fileID), opts, bag)

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Module: mod,
				Bag:    bag,
				Cached: cached,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
