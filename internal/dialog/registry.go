// Package dialog instantiates modal dialogs from named templates and owns
// their open/close lifecycle.
package dialog

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jask/jaskwallet/internal/i18n"
	"github.com/jask/jaskwallet/internal/uidom"
)

// ---------------------------------------------------------------------------
// Template registry (TOML-defined)
// ---------------------------------------------------------------------------

// templateDef is one [[template]] block.
type templateDef struct {
	Name     string    `toml:"name"`
	Kind     string    `toml:"kind"`
	TitleKey string    `toml:"title_key"`
	Title    string    `toml:"title"`
	Body     []lineDef `toml:"body"`
	Link     []linkDef `toml:"link"`
}

type lineDef struct {
	Text string `toml:"text"`
	Key  string `toml:"key"`
}

type linkDef struct {
	Text string `toml:"text"`
	Key  string `toml:"key"`
	Href string `toml:"href"`
}

type templateFile struct {
	Template []templateDef `toml:"template"`
}

// defaultTemplatesTOML ships the dialogs the shell itself needs. Additional
// [[template]] blocks can be layered in from a user file.
const defaultTemplatesTOML = `# Jaskwallet dialog templates

[[template]]
name = "about"
kind = "dialog"
title_key = "dialogs.about.title"
title = "About Jaskwallet"

[[template.body]]
text = "A terminal wallet shell."
key = "dialogs.about.body"

[[template.link]]
text = "Project homepage"
key = "dialogs.about.link"
href = "https://github.com/jask/jaskwallet"

[[template]]
name = "language"
kind = "dialog"
title_key = "dialogs.language.title"
title = "Display language"

[[template.body]]
text = "Pick a language and press enter"
key = "dialogs.language.hint"

[[template]]
name = "confirm-reset"
kind = "dialog"
title_key = "dialogs.confirmReset.title"
title = "Reset settings"

[[template.body]]
text = "Restore default settings?"
key = "dialogs.confirmReset.body"
`

// Registry maps template names to inert template nodes. Template content is
// never part of the live document; the factory clones it on every open.
type Registry struct {
	templates map[string]*uidom.Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*uidom.Node)}
}

// DefaultRegistry parses the built-in template set.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if err := r.LoadTOML([]byte(defaultTemplatesTOML)); err != nil {
		// The default document is a compile-time constant.
		panic(err)
	}
	return r
}

// Register stores tpl under name, replacing any previous registration.
func (r *Registry) Register(name string, tpl *uidom.Node) {
	r.templates[name] = tpl
}

// Lookup returns the template registered under name.
func (r *Registry) Lookup(name string) (*uidom.Node, bool) {
	tpl, ok := r.templates[name]
	return tpl, ok
}

// Names lists the registered template names.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.templates))
	for name := range r.templates {
		out = append(out, name)
	}
	return out
}

// LoadTOML parses [[template]] blocks and registers a template node for
// each. The block's kind becomes the cloned root's kind, so a template
// declared with anything but "dialog" will be rejected by Factory.Open —
// deliberately, since that is the registration bug the contract check exists
// to catch.
func (r *Registry) LoadTOML(data []byte) error {
	var file templateFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	for _, def := range file.Template {
		if def.Name == "" {
			return fmt.Errorf("template with empty name")
		}
		r.Register(def.Name, buildTemplate(def))
	}
	return nil
}

// buildTemplate assembles the inert node tree for one template definition.
func buildTemplate(def templateDef) *uidom.Node {
	tpl := uidom.New(uidom.KindTemplate)
	tpl.Name = def.Name

	root := uidom.New(def.Kind)
	root.Name = def.Name

	title := uidom.New("title")
	title.Text = def.Title
	if def.TitleKey != "" {
		title.SetAttr(i18n.KeyAttr, def.TitleKey)
	}
	root.AppendChild(title)

	for _, line := range def.Body {
		n := uidom.NewText(line.Text)
		if line.Key != "" {
			n.SetAttr(i18n.KeyAttr, line.Key)
		}
		root.AppendChild(n)
	}
	for _, link := range def.Link {
		n := uidom.New(uidom.KindLink)
		n.Text = link.Text
		n.SetAttr("href", link.Href)
		if link.Key != "" {
			n.SetAttr(i18n.KeyAttr, link.Key)
		}
		root.AppendChild(n)
	}

	tpl.Content().AppendChild(root)
	return tpl
}
