package i18n

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// Store holds the active language dictionary. With no dictionary loaded the
// store operates in untranslated mode: every Resolve returns its default and
// nothing is logged.
//
// Bubble Tea delivers messages on a single goroutine, but config watchers
// fire on their own, so dictionary state is guarded by an RWMutex.
type Store struct {
	provider Provider
	log      *slog.Logger

	mu   sync.RWMutex
	dict map[string]any
	lang string
}

// NewStore returns an empty store reading dictionaries from provider.
func NewStore(provider Provider, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{provider: provider, log: log}
}

// Load replaces the active dictionary with the one for code. On failure the
// store drops into untranslated mode (no dictionary, callers see defaults)
// and the error is returned for logging; it must never be fatal to the UI.
func (s *Store) Load(code string) error {
	dict, err := s.provider.Dictionary(code)
	if err != nil {
		s.mu.Lock()
		s.dict = nil
		s.lang = ""
		s.mu.Unlock()
		if hint := s.closest(code); hint != "" {
			s.log.Warn("language unavailable", "code", code, "closest", hint)
		} else {
			s.log.Warn("language unavailable", "code", code)
		}
		return err
	}
	s.mu.Lock()
	s.dict = dict
	s.lang = code
	s.mu.Unlock()
	return nil
}

// Language returns the code of the loaded dictionary, "" in untranslated mode.
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Resolve walks the dot-separated key path through the dictionary. A path is
// valid only if every non-final segment is a mapping and the final segment a
// string; any other shape logs a diagnostic and yields def. With no
// dictionary loaded def is returned silently.
func (s *Store) Resolve(keyPath, def string) string {
	s.mu.RLock()
	dict := s.dict
	lang := s.lang
	s.mu.RUnlock()
	if dict == nil {
		return def
	}

	var cur any = dict
	for _, seg := range strings.Split(keyPath, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return s.untranslated(keyPath, lang, def)
		}
		if cur, ok = m[seg]; !ok {
			return s.untranslated(keyPath, lang, def)
		}
	}
	leaf, ok := cur.(string)
	if !ok {
		return s.untranslated(keyPath, lang, def)
	}
	return leaf
}

func (s *Store) untranslated(keyPath, lang, def string) string {
	s.log.Warn("untranslated key", "key", keyPath, "lang", lang)
	return def
}

// MenuSubtree returns the "menu" branch of the dictionary for the native
// menu collaborator. ok is false in untranslated mode or when the branch is
// missing or not a mapping.
func (s *Store) MenuSubtree() (map[string]any, bool) {
	s.mu.RLock()
	dict := s.dict
	s.mu.RUnlock()
	if dict == nil {
		return nil, false
	}
	branch, ok := dict["menu"].(map[string]any)
	return branch, ok
}

// AvailableLanguages lists the provider's languages. Listing failures are
// logged and degrade to an empty list, never an error.
func (s *Store) AvailableLanguages() []Language {
	langs, err := s.provider.Languages()
	if err != nil {
		s.log.Warn("listing languages failed", "err", err)
		return nil
	}
	return langs
}

// closest suggests the nearest known language code for a typo'd one.
func (s *Store) closest(code string) string {
	langs, err := s.provider.Languages()
	if err != nil {
		return ""
	}
	best, bestDist := "", 3
	for _, l := range langs {
		if d := levenshtein.ComputeDistance(code, l.Code); d < bestDist {
			best, bestDist = l.Code, d
		}
	}
	return best
}
