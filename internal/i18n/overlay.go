package i18n

import "github.com/jask/jaskwallet/internal/uidom"

// KeyAttr tags a widget-tree node with its translation key.
const KeyAttr = "data-i18n"

// Overlay re-renders tagged nodes from the store's active dictionary.
type Overlay struct {
	store *Store
}

// NewOverlay returns an overlay reading from store.
func NewOverlay(store *Store) *Overlay {
	return &Overlay{store: store}
}

// ApplyAll finds every tagged node under root — through shadow roots and
// template content — and sets its text to the resolution of its key, passing
// the node's current text as the default. That default choice is what makes
// repeated application idempotent: a resolved node re-resolves to the same
// string (or to a newer translation), never back to a stale default.
// Returns the number of nodes whose text actually changed.
func (o *Overlay) ApplyAll(root *uidom.Node) int {
	changed := 0
	for _, n := range uidom.QueryDeep(uidom.ByAttr(KeyAttr), root) {
		key, _ := n.Attr(KeyAttr)
		if key == "" {
			continue
		}
		if resolved := o.store.Resolve(key, n.Text); resolved != n.Text {
			n.SetText(resolved)
			changed++
		}
	}
	return changed
}

// SetText tags n with key and renders its resolution, using def as the
// fallback. An empty key untags the node and sets def verbatim.
func (o *Overlay) SetText(n *uidom.Node, key, def string) {
	if key == "" {
		n.DelAttr(KeyAttr)
		n.SetText(def)
		return
	}
	n.SetAttr(KeyAttr, key)
	n.SetText(o.store.Resolve(key, def))
}
