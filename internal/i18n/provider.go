// Package i18n holds the translation layer: per-language nested dictionaries,
// dot-path resolution with safe fallback, and the overlay that re-renders
// tagged widget-tree nodes when the language changes.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// ErrLanguageUnknown reports a language code with no dictionary behind it.
var ErrLanguageUnknown = errors.New("i18n: unknown language code")

// Language is one available translation, as listed to pickers and menus.
type Language struct {
	Code string
	Name string
}

// Provider supplies translation dictionaries by language code. A dictionary
// is an arbitrarily nested string-keyed mapping whose leaves are strings.
type Provider interface {
	// Dictionary returns the dictionary for code, or an error wrapping
	// ErrLanguageUnknown when no such language exists.
	Dictionary(code string) (map[string]any, error)

	// Languages lists every available language with its display name.
	Languages() ([]Language, error)
}

//go:embed locales/*.json
var builtinLocales embed.FS

// FSProvider reads one JSON file per language code from a filesystem.
// Each file is a top-level object carrying at least "languageValue" (the
// code) and "languageName" (the display label).
type FSProvider struct {
	fsys fs.FS
}

// NewFSProvider returns a provider backed by fsys.
func NewFSProvider(fsys fs.FS) *FSProvider {
	return &FSProvider{fsys: fsys}
}

// Builtin returns the provider for the locales compiled into the binary.
func Builtin() *FSProvider {
	sub, err := fs.Sub(builtinLocales, "locales")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return NewFSProvider(sub)
}

func (p *FSProvider) Dictionary(code string) (map[string]any, error) {
	data, err := fs.ReadFile(p.fsys, code+".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLanguageUnknown, code)
		}
		return nil, fmt.Errorf("read dictionary %s: %w", code, err)
	}
	var dict map[string]any
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", code, err)
	}
	return dict, nil
}

func (p *FSProvider) Languages() ([]Language, error) {
	entries, err := fs.ReadDir(p.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	var out []Language
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := fs.ReadFile(p.fsys, name)
		if err != nil {
			continue
		}
		var meta struct {
			Code string `json:"languageValue"`
			Name string `json:"languageName"`
		}
		if err := json.Unmarshal(data, &meta); err != nil || meta.Code == "" || meta.Name == "" {
			// Not a language file; skip rather than fail the listing.
			continue
		}
		out = append(out, Language{Code: meta.Code, Name: meta.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// Layered tries each provider in order, so a user locales directory can
// shadow the built-in set while still falling back to it.
type Layered []Provider

func (l Layered) Dictionary(code string) (map[string]any, error) {
	var lastErr error
	for _, p := range l {
		dict, err := p.Dictionary(code)
		if err == nil {
			return dict, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%w: %s", ErrLanguageUnknown, code)
	}
	return nil, lastErr
}

func (l Layered) Languages() ([]Language, error) {
	seen := make(map[string]bool)
	var out []Language
	var lastErr error
	for _, p := range l {
		langs, err := p.Languages()
		if err != nil {
			lastErr = err
			continue
		}
		for _, lang := range langs {
			if !seen[lang.Code] {
				seen[lang.Code] = true
				out = append(out, lang)
			}
		}
	}
	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
