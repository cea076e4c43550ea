package dialog

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/jaskwallet/internal/bridge"
	"github.com/jask/jaskwallet/internal/uidom"
)

var (
	// ErrUnknownTemplate reports an open against a name nobody registered.
	ErrUnknownTemplate = errors.New("dialog: unknown template")

	// ErrNotDialog reports a template whose cloned root is not a dialog
	// element. This is a packaging bug, not a runtime condition: it is
	// raised before anything touches the document.
	ErrNotDialog = errors.New("dialog: template root is not a dialog element")
)

// State is a dialog's position in its one-way lifecycle.
type State int

const (
	StateInstantiated State = iota
	StateAttached
	StateOpen
	StateClosing
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateInstantiated:
		return "instantiated"
	case StateAttached:
		return "attached"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	case StateRemoved:
		return "removed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// InitFunc populates a freshly attached dialog node before it opens.
type InitFunc func(node *uidom.Node)

// Factory instantiates dialogs into a document.
type Factory struct {
	doc    *uidom.Node
	reg    *Registry
	opener bridge.Opener
	log    *slog.Logger
}

// NewFactory returns a factory attaching dialogs under doc.
func NewFactory(doc *uidom.Node, reg *Registry, opener bridge.Opener, log *slog.Logger) *Factory {
	if log == nil {
		log = slog.Default()
	}
	return &Factory{doc: doc, reg: reg, opener: opener, log: log}
}

// Dialog is one open dialog instance. It owns the node it attached and is
// alone responsible for removing it again.
type Dialog struct {
	id      uuid.UUID
	node    *uidom.Node
	state   State
	onClose func()
	log     *slog.Logger
}

// Open instantiates the named template, attaches it to the document, runs
// init, registers the close handler and opens the dialog modally.
//
// Absolute-URL links inside the clone are rewired to route through the
// external-open collaborator instead of in-app navigation. A template whose
// root is not a dialog element fails before any node is attached, so a
// contract violation can never leave partially constructed UI behind.
// onClose may be nil; when set it runs exactly once, on whichever close path
// fires first.
func (f *Factory) Open(name string, init InitFunc, onClose func()) (*Dialog, error) {
	tpl, ok := f.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	content := tpl.Content()
	if content == nil || content.FirstChild() == nil {
		return nil, fmt.Errorf("%w: template %q has no content", ErrNotDialog, name)
	}

	// Instantiated: a deep, inert copy of the template content.
	node := content.FirstChild().CloneDeep()
	if node.Kind != uidom.KindDialog {
		return nil, fmt.Errorf("%w: template %q cloned a %q", ErrNotDialog, name, node.Kind)
	}
	f.rewireLinks(node)

	d := &Dialog{
		id:      uuid.New(),
		node:    node,
		state:   StateInstantiated,
		onClose: onClose,
		log:     f.log,
	}
	node.SetAttr("data-dialog-id", d.id.String())

	f.doc.AppendChild(node)
	d.state = StateAttached

	if init != nil {
		init(node)
	}

	// The close handler is the node's own activation hook: the host UI
	// signals close by activating the dialog element, programmatically or
	// on user dismissal. Either way the teardown below runs once.
	node.OnActivate = d.Close

	d.state = StateOpen
	f.log.Debug("dialog opened", "template", name, "id", d.id)
	return d, nil
}

// rewireLinks routes every absolute-URL link in the sub-tree through the
// external opener and marks it as externally handled.
func (f *Factory) rewireLinks(root *uidom.Node) {
	for _, link := range uidom.QueryDeep(uidom.ByKind(uidom.KindLink), root) {
		href, ok := link.Attr("href")
		if !ok || !isAbsoluteURL(href) {
			continue
		}
		url := href
		link.SetAttr("data-external", "true")
		link.OnActivate = func() {
			if err := f.opener.OpenExternal(url); err != nil {
				f.log.Warn("external open failed", "url", url, "err", err)
			}
		}
	}
}

func isAbsoluteURL(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// ID returns the instance identifier.
func (d *Dialog) ID() uuid.UUID { return d.id }

// Node returns the dialog's attached node.
func (d *Dialog) Node() *uidom.Node { return d.node }

// State returns the current lifecycle state.
func (d *Dialog) State() State { return d.state }

// Close runs the close path: onClose exactly once, then the node comes out
// of the document and every handler on it is dropped. Transitions are
// one-way; a second close signal on a removed dialog is a no-op.
func (d *Dialog) Close() {
	if d.state != StateOpen {
		return
	}
	d.state = StateClosing
	if d.onClose != nil {
		cb := d.onClose
		d.onClose = nil
		cb()
	}
	d.node.OnActivate = nil
	for _, link := range uidom.QueryDeep(uidom.ByKind(uidom.KindLink), d.node) {
		link.OnActivate = nil
	}
	d.node.Remove()
	d.state = StateRemoved
	d.log.Debug("dialog closed", "id", d.id)
}
