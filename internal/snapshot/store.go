// Package snapshot persists the dashboard document as one JSON file,
// replaced wholesale on every refresh, with an in-memory cache tagged by
// the configuration fingerprint it was generated for.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
)

// Fingerprint identifies the configuration a snapshot was generated for.
// Staleness is decided by comparing fingerprints, never by peeking at
// team names inside the payload.
type Fingerprint struct {
	FeaturedTeam string
	TestData     bool
}

func (f Fingerprint) String() string {
	mode := "api"
	if f.TestData {
		mode = "test"
	}
	return fmt.Sprintf("%s|%s", mode, f.FeaturedTeam)
}

type persistedDocument struct {
	leaguedata.Document
	ConfigFingerprint string `json:"config_fingerprint,omitempty"`
}

type cacheEntry struct {
	doc         leaguedata.Document
	fingerprint string
}

// Store reads and writes the snapshot file. Writes are whole-document
// replaces via a temp file rename, so concurrent readers see either the
// old or the new document, never a torn one.
type Store struct {
	path string

	mu     sync.RWMutex
	cached *cacheEntry
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a snapshot file is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save persists the document and refreshes the tagged in-memory cache.
func (s *Store) Save(doc leaguedata.Document, fp Fingerprint) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	encoder := sonic.ConfigDefault.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(persistedDocument{Document: doc, ConfigFingerprint: fp.String()}); err != nil {
		return crerr.Wrap(err, "encode snapshot")
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return crerr.Wrap(err, "create snapshot directory")
	}
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return crerr.Wrap(err, "write snapshot")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return crerr.Wrap(err, "replace snapshot")
	}

	s.mu.Lock()
	s.cached = &cacheEntry{doc: doc, fingerprint: fp.String()}
	s.mu.Unlock()

	return nil
}

// Cached returns the in-memory document when its fingerprint matches the
// requested configuration.
func (s *Store) Cached(fp Fingerprint) (leaguedata.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cached == nil || s.cached.fingerprint != fp.String() {
		return leaguedata.Document{}, false
	}
	return s.cached.doc, true
}

// Load returns the document for the requested configuration: memory
// first, disk second. A snapshot generated for a different fingerprint
// is stale and reported as absent.
func (s *Store) Load(fp Fingerprint) (leaguedata.Document, bool, error) {
	if doc, ok := s.Cached(fp); ok {
		return doc, true, nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return leaguedata.Document{}, false, nil
		}
		return leaguedata.Document{}, false, crerr.Wrap(err, "read snapshot")
	}

	var stored persistedDocument
	if err := sonic.Unmarshal(raw, &stored); err != nil {
		return leaguedata.Document{}, false, crerr.Wrap(err, "decode snapshot")
	}

	if stored.ConfigFingerprint != "" && stored.ConfigFingerprint != fp.String() {
		return leaguedata.Document{}, false, nil
	}

	s.mu.Lock()
	s.cached = &cacheEntry{doc: stored.Document, fingerprint: fp.String()}
	s.mu.Unlock()

	return stored.Document, true, nil
}

// Invalidate drops the in-memory cache entry.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
