package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/s0phia-le/Sloth/internal/diag"
	"github.com/s0phia-le/Sloth/internal/source"
	"github.com/s0phia-le/Sloth/internal/token"
)

// SourceExt is the file extension of Sloth sources.
const SourceExt = ".sloth"

// TokenizeDirResult holds the outcome for one file of a directory run.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// listSourceFiles returns every *.sloth file under dir, sorted for a
// deterministic order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// TokenizeDir scans every *.sloth file under dir concurrently.
// Files are loaded up front into one FileSet (loading mutates the set,
// scanning only reads it), then lexed under a bounded errgroup. Results
// come back in path order. A file that fails to load yields a result
// whose Bag carries the failure; other files still scan.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	// Unreadable files get an empty virtual placeholder so their
	// diagnostics still resolve to a real FileID.
	placeholders := make(map[string]source.FileID)
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			placeholders[path] = fileSet.AddVirtual(path, nil)
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes its own index; no mutex needed.
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				fileID := placeholders[path]
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{File: fileID},
				})
				results[i] = TokenizeDirResult{Path: path, FileID: fileID, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: scanAll(fileSet.Get(fileID), bag),
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
