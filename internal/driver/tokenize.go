// Package driver owns the drive loops around the lexer: load a file,
// pull tokens until End, collect diagnostics. Callers above it (the CLI)
// only decide how to render the results.
package driver

import (
	"github.com/s0phia-le/Sloth/internal/diag"
	"github.com/s0phia-le/Sloth/internal/lexer"
	"github.com/s0phia-le/Sloth/internal/source"
	"github.com/s0phia-le/Sloth/internal/token"
)

// TokenizeResult bundles everything one tokenization produced.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file and scans it to the End token. A file that
// cannot be opened is the only error path; scan-time findings land in
// the Bag instead.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens := scanAll(file, bag)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// TokenizeCached is Tokenize with a disk cache in front of the scan.
// The cache key is the file's content digest, so a hit is always
// current. The second return value reports whether the cache served the
// tokens; cached streams carry no diagnostics (a cacheable scan stored
// its tokens regardless of findings, and findings are re-derivable by
// scanning without the cache). Cache read/write failures degrade to a
// plain scan.
func TokenizeCached(path string, maxDiagnostics int, cache *TokenCache) (*TokenizeResult, bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, false, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	if tokens, hit, err := cache.Get(file.Hash, fileID); err == nil && hit {
		return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}, true, nil
	}

	tokens := scanAll(file, bag)
	// Best effort: a failed write only costs the next run a rescan.
	_ = cache.Put(file.Hash, file, tokens)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, false, nil
}

// scanAll pulls tokens from a fresh lexer until End, inclusive.
func scanAll(file *source.File, bag *diag.Bag) []token.Token {
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.End {
			return tokens
		}
	}
}
