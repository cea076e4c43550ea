package i18n

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskwallet/internal/logging"
)

type mapProvider struct {
	dicts map[string]map[string]any
	langs []Language
	fail  error
}

func (p *mapProvider) Dictionary(code string) (map[string]any, error) {
	d, ok := p.dicts[code]
	if !ok {
		return nil, ErrLanguageUnknown
	}
	return d, nil
}

func (p *mapProvider) Languages() ([]Language, error) {
	if p.fail != nil {
		return nil, p.fail
	}
	return p.langs, nil
}

func testDict() map[string]any {
	return map[string]any{
		"languageValue": "en",
		"languageName":  "English",
		"a":             map[string]any{"b": map[string]any{"c": "X"}},
		"menu":          map[string]any{"file": map[string]any{"quit": "Quit"}},
	}
}

func captureStore(t *testing.T, p Provider) (*Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewStore(p, logging.NewWriter(&buf, slog.LevelDebug)), &buf
}

func TestResolveLeaf(t *testing.T) {
	s, buf := captureStore(t, &mapProvider{dicts: map[string]map[string]any{"en": testDict()}})
	require.NoError(t, s.Load("en"))
	require.Equal(t, "en", s.Language())

	require.Equal(t, "X", s.Resolve("a.b.c", "fallback"))
	require.Empty(t, buf.String(), "successful resolve must not log")
}

func TestResolveUntranslatedShapes(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"mapping reached, not a leaf", "a.b"},
		{"missing segment", "a.b.zzz"},
		{"string hit with segments left", "a.b.c.d"},
		{"missing top-level", "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, buf := captureStore(t, &mapProvider{dicts: map[string]map[string]any{"en": testDict()}})
			require.NoError(t, s.Load("en"))
			require.Equal(t, "fallback", s.Resolve(tt.key, "fallback"))
			require.Contains(t, buf.String(), "untranslated key")
			require.Contains(t, buf.String(), tt.key)
		})
	}
}

func TestResolveWithoutDictionaryIsSilent(t *testing.T) {
	s, buf := captureStore(t, &mapProvider{})
	require.Equal(t, "Hello", s.Resolve("any.key", "Hello"))
	require.Empty(t, buf.String(), "untranslated mode must not log")
}

func TestLoadUnknownDropsToUntranslatedMode(t *testing.T) {
	p := &mapProvider{
		dicts: map[string]map[string]any{"en": testDict()},
		langs: []Language{{Code: "en", Name: "English"}},
	}
	s, buf := captureStore(t, p)
	require.NoError(t, s.Load("en"))

	err := s.Load("enn")
	require.ErrorIs(t, err, ErrLanguageUnknown)
	require.Empty(t, s.Language())
	require.Equal(t, "Hello", s.Resolve("a.b.c", "Hello"), "failed load must leave the store untranslated")
	require.Contains(t, buf.String(), "language unavailable")
	require.Contains(t, buf.String(), "closest=en", "expected a closest-code hint")
}

func TestMenuSubtree(t *testing.T) {
	s, _ := captureStore(t, &mapProvider{dicts: map[string]map[string]any{"en": testDict()}})

	if _, ok := s.MenuSubtree(); ok {
		t.Fatal("menu subtree present before any load")
	}
	require.NoError(t, s.Load("en"))
	menu, ok := s.MenuSubtree()
	require.True(t, ok)
	file, ok := menu["file"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Quit", file["quit"])
}

func TestAvailableLanguagesDegradesOnError(t *testing.T) {
	s, buf := captureStore(t, &mapProvider{fail: errors.New("disk gone")})
	require.Empty(t, s.AvailableLanguages())
	require.True(t, strings.Contains(buf.String(), "listing languages failed"))
}
