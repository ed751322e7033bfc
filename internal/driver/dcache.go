package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/s0phia-le/Sloth/internal/source"
	"github.com/s0phia-le/Sloth/internal/token"
)

// Current schema version - increment when tokenPayload format changes.
const tokenCacheSchemaVersion uint16 = 1

// Digest keys cache entries; it is the sha256 of the normalized file
// content, so edits invalidate naturally.
type Digest = [32]byte

// TokenCache stores scanned token streams on disk, keyed by content
// digest. Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedToken struct {
	Kind  uint8
	Text  string
	Line  uint32
	Col   uint32
	Start uint32
	End   uint32
}

// tokenPayload is the on-disk record for one file's token stream.
type tokenPayload struct {
	Schema uint16
	Path   string
	Tokens []cachedToken
}

// OpenTokenCache initializes and returns a disk cache at the standard
// location ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// OpenTokenCacheAt opens a cache rooted at an explicit directory.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key Digest) string {
	// Subdirectory "toks" keeps the root readable and easy to clear.
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "toks", hexKey+".mp")
}

// Put serializes and writes a token stream to the disk cache.
func (c *TokenCache) Put(key Digest, file *source.File, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := tokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   file.Path,
		Tokens: make([]cachedToken, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Tokens[i] = cachedToken{
			Kind:  uint8(tok.Kind),
			Text:  tok.Text,
			Line:  tok.Pos.Line,
			Col:   tok.Pos.Col,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replacement.
	return os.Rename(f.Name(), p)
}

// Get reads a token stream back from the disk cache. A missing entry
// or a schema mismatch is a miss, not an error.
func (c *TokenCache) Get(key Digest, fileID source.FileID) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload tokenPayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != tokenCacheSchemaVersion {
		return nil, false, nil
	}

	tokens := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		tokens[i] = token.Token{
			Kind: token.Kind(ct.Kind),
			Text: ct.Text,
			Pos:  token.Pos{Line: ct.Line, Col: ct.Col},
			Span: source.Span{File: fileID, Start: ct.Start, End: ct.End},
		}
	}
	return tokens, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
