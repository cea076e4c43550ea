// Package tui is the Bubble Tea front end of the wallet shell. The chrome
// text it renders is read out of the uidom document, so the translation
// overlay changes what is on screen without the renderer knowing about
// languages at all.
package tui

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskwallet/internal/bridge"
	"github.com/jask/jaskwallet/internal/config"
	"github.com/jask/jaskwallet/internal/database/repository"
	"github.com/jask/jaskwallet/internal/dialog"
	"github.com/jask/jaskwallet/internal/i18n"
	"github.com/jask/jaskwallet/internal/uidom"
)

const historyWindow = 31 * 24 * time.Hour

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type accountsLoadedMsg struct {
	accounts []repository.Account
	history  map[string][]repository.BalancePoint
}

type settingsNotifyMsg []byte

type errMsg struct{ err error }

// ---------------------------------------------------------------------------
// Language picker items (implement list.Item)
// ---------------------------------------------------------------------------

type langItem struct {
	lang i18n.Language
}

func (l langItem) Title() string       { return l.lang.Name }
func (l langItem) Description() string { return l.lang.Code }
func (l langItem) FilterValue() string { return l.lang.Name + " " + l.lang.Code }

type langItemDelegate struct{}

func (d langItemDelegate) Height() int                             { return 1 }
func (d langItemDelegate) Spacing() int                            { return 0 }
func (d langItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d langItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(langItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = cursorStyle.Render("> ")
	}
	line := fmt.Sprintf("%s%s (%s)", prefix, entry.lang.Name, entry.lang.Code)
	fmt.Fprint(w, padRight(line, m.Width()))
}

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Quit     key.Binding
	Language key.Binding
	About    key.Binding
	Close    key.Binding
	Enter    key.Binding
	UpDown   key.Binding
	OpenLink key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		About:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		UpDown:   key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("j/k", "navigate")),
		OpenLink: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
	}
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Options wires the model to its collaborators.
type Options struct {
	Config   config.Config
	DB       *sql.DB
	Log      *slog.Logger
	Store    *i18n.Store
	Overlay  *i18n.Overlay
	Opener   bridge.Opener
	Menu     bridge.MenuSink
	Settings <-chan []byte
}

// Model is the application model.
type Model struct {
	opts    Options
	log     *slog.Logger
	doc     *uidom.Node
	store   *i18n.Store
	overlay *i18n.Overlay
	factory *dialog.Factory
	keys    keyMap

	accounts []repository.Account
	history  map[string][]repository.BalancePoint
	selected int

	dlg      *dialog.Dialog
	dlgName  string
	langList list.Model

	currency string
	status   string
	width    int
	height   int
}

// New builds the application model around an already-built document.
func New(opts Options) *Model {
	doc := BuildDocument()
	factory := dialog.NewFactory(doc, dialog.DefaultRegistry(), opts.Opener, opts.Log)

	ll := list.New(nil, langItemDelegate{}, 32, 6)
	ll.SetShowTitle(false)
	ll.SetShowStatusBar(false)
	ll.SetShowHelp(false)
	ll.SetFilteringEnabled(false)

	return &Model{
		opts:     opts,
		log:      opts.Log,
		doc:      doc,
		store:    opts.Store,
		overlay:  opts.Overlay,
		factory:  factory,
		keys:     newKeyMap(),
		currency: opts.Config.UI.Currency,
		langList: ll,
	}
}

// Document exposes the live widget tree (used by the settings reload path
// and by tests).
func (m *Model) Document() *uidom.Node { return m.doc }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadAccountsCmd(), m.waitSettingsCmd())
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func (m *Model) loadAccountsCmd() tea.Cmd {
	db := m.opts.DB
	return func() tea.Msg {
		if db == nil {
			return accountsLoadedMsg{}
		}
		ctx := context.Background()
		accounts, err := repository.NewAccountRepo(db).List(ctx)
		if err != nil {
			return errMsg{err}
		}
		histRepo := repository.NewHistoryRepo(db)
		since := time.Now().Add(-historyWindow)
		history := make(map[string][]repository.BalancePoint, len(accounts))
		for _, a := range accounts {
			points, err := histRepo.ForAccount(ctx, a.ID, since)
			if err != nil {
				return errMsg{err}
			}
			history[a.ID] = points
		}
		return accountsLoadedMsg{accounts: accounts, history: history}
	}
}

func (m *Model) waitSettingsCmd() tea.Cmd {
	ch := m.opts.Settings
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		data, ok := <-ch
		if !ok {
			return nil
		}
		return settingsNotifyMsg(data)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.langList.SetWidth(min(msg.Width-8, 40))
		return m, nil

	case accountsLoadedMsg:
		m.accounts = msg.accounts
		m.history = msg.history
		if m.selected >= len(m.accounts) {
			m.selected = 0
		}
		setAccounts(m.doc, m.accounts, m.currency)
		m.overlay.ApplyAll(m.doc)
		return m, nil

	case settingsNotifyMsg:
		m.applySettings([]byte(msg))
		return m, m.waitSettingsCmd()

	case errMsg:
		m.status = errorStyle.Render(msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		if m.dlg != nil {
			return m.updateDialog(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

func (m *Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.UpDown):
		if len(m.accounts) > 0 {
			switch msg.String() {
			case "up", "k":
				m.selected = (m.selected + len(m.accounts) - 1) % len(m.accounts)
			default:
				m.selected = (m.selected + 1) % len(m.accounts)
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Language):
		m.openLanguageDialog()
		return m, nil
	case key.Matches(msg, m.keys.About):
		m.openDialog("about")
		return m, nil
	}
	return m, nil
}

func (m *Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.signalClose()
		return m, nil
	case key.Matches(msg, m.keys.OpenLink):
		// Activate the first externally-routed link, if any.
		for _, link := range uidom.QueryDeep(uidom.ByKind(uidom.KindLink), m.dlg.Node()) {
			if link.OnActivate != nil {
				link.OnActivate()
				break
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if m.dlgName == "language" {
			if item, ok := m.langList.SelectedItem().(langItem); ok {
				code := item.lang.Code
				m.signalClose()
				m.switchLanguage(code)
			}
			return m, nil
		}
		m.signalClose()
		return m, nil
	}
	if m.dlgName == "language" {
		var cmd tea.Cmd
		m.langList, cmd = m.langList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// signalClose delivers the dialog's close signal. Teardown (onClose, node
// removal, handler cleanup) is the dialog's own job; the model only drops
// its reference once the instance reports Removed.
func (m *Model) signalClose() {
	if m.dlg == nil {
		return
	}
	if h := m.dlg.Node().OnActivate; h != nil {
		h()
	}
	if m.dlg.State() == dialog.StateRemoved {
		m.dlg = nil
		m.dlgName = ""
	}
}

func (m *Model) openDialog(name string) {
	if m.dlg != nil {
		return // modal: one at a time
	}
	d, err := m.factory.Open(name, func(node *uidom.Node) {
		// Freshly cloned template text is untranslated; run the overlay
		// over the new sub-tree before first paint.
		m.overlay.ApplyAll(node)
	}, nil)
	if err != nil {
		m.log.Error("open dialog failed", "template", name, "err", err)
		m.status = errorStyle.Render(err.Error())
		return
	}
	m.dlg = d
	m.dlgName = name
}

func (m *Model) openLanguageDialog() {
	langs := m.store.AvailableLanguages()
	items := make([]list.Item, len(langs))
	for i, l := range langs {
		items[i] = langItem{lang: l}
	}
	m.langList.SetItems(items)
	m.openDialog("language")
}

// switchLanguage runs the same reload path a settings notification takes.
func (m *Model) switchLanguage(code string) {
	payload, err := bridge.EncodeSettings(bridge.SettingsPayload{Lang: code, Currency: m.currency})
	if err != nil {
		return
	}
	m.applySettings(payload)

	// Persist the choice; failure is logged, never fatal.
	cfg := m.opts.Config
	cfg.UI.Language = code
	cfg.UI.Currency = m.currency
	if err := config.Save(cfg); err != nil {
		m.log.Warn("saving language preference failed", "err", err)
	} else {
		m.opts.Config = cfg
	}
}

// applySettings is the settings-changed entry point: reload the dictionary,
// re-apply the overlay to the whole tree, push the menu sub-tree to the
// native menu host, and re-render currency-dependent text.
func (m *Model) applySettings(data []byte) {
	payload, err := bridge.DecodeSettings(data)
	if err != nil {
		m.log.Warn("bad settings payload", "err", err)
		return
	}

	if payload.Lang != "" {
		if err := m.store.Load(payload.Lang); err != nil {
			// Untranslated mode: defaults keep rendering.
			m.log.Warn("language load failed", "lang", payload.Lang, "err", err)
		}
	}
	// Only lang is guaranteed in a settings notification; a payload without
	// a currency leaves the configured one alone.
	if payload.Currency != "" {
		m.currency = payload.Currency
	}

	setAccounts(m.doc, m.accounts, m.currency)
	changed := m.overlay.ApplyAll(m.doc)
	if m.dlg != nil {
		changed += m.overlay.ApplyAll(m.dlg.Node())
	}

	if menu, ok := m.store.MenuSubtree(); ok && m.opts.Menu != nil {
		if data, err := bridge.EncodeMenu(menu); err == nil {
			if err := m.opts.Menu.UpdateMenu(data); err != nil {
				m.log.Warn("native menu push failed", "err", err)
			}
		}
	}

	m.status = statusStyle.Render(fmt.Sprintf("language: %s (%d nodes updated)", m.store.Language(), changed))
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	base := m.renderBase()
	if m.dlg == nil {
		return base
	}
	return compositeCentered(base, m.renderDialog(), m.width, m.height)
}

func (m *Model) renderBase() string {
	var sections []string

	if title := findNode(m.doc, nodeAppTitle); title != nil {
		sections = append(sections, titleStyle.Render(" "+title.Text))
	}
	sections = append(sections, m.renderBalances(), m.renderHistory(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderBalances() string {
	var lines []string
	if t := findNode(m.doc, nodeBalancesTitle); t != nil {
		lines = append(lines, paneTitleStyle.Render(t.Text))
	}
	listNode := findNode(m.doc, nodeAccountList)
	if listNode != nil {
		for i, card := range listNode.Children() {
			sh := card.ShadowRoot()
			if sh == nil {
				continue
			}
			var name, kind, balance string
			for _, c := range sh.Children() {
				switch c.Name {
				case "name":
					name = c.Text
				case "kind":
					kind = c.Text
				case "balance":
					balance = c.Text
				}
			}
			prefix := "  "
			if i == m.selected {
				prefix = cursorStyle.Render("> ")
			}
			style := balanceStyle
			if len(balance) > 0 && balance[0] == '-' {
				style = balanceNegStyle
			}
			row := fmt.Sprintf("%s%s %s %s",
				prefix,
				accountNameStyle.Render(padRight(name, 16)),
				accountKindStyle.Render(padRight(kind, 14)),
				style.Render(balance))
			lines = append(lines, truncate(row, m.width-4))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, hintStyle.Render("no accounts"))
	}
	return paneStyle.Width(max(m.width-2, 20)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderHistory() string {
	var lines []string
	if t := findNode(m.doc, nodeHistoryTitle); t != nil {
		lines = append(lines, paneTitleStyle.Render(t.Text))
	}
	if len(m.accounts) > 0 {
		a := m.accounts[m.selected]
		if chart := balanceChart(m.history[a.ID], max(m.width-8, 16)); chart != "" {
			lines = append(lines, chart)
		} else {
			lines = append(lines, hintStyle.Render("not enough history"))
		}
	}
	return paneStyle.Width(max(m.width-2, 20)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderFooter() string {
	footer := findNode(m.doc, nodeFooter)
	if footer == nil {
		return ""
	}
	var parts []string
	for _, hint := range footer.Children() {
		parts = append(parts, hintKeyStyle.Render(hint.Name)+" "+hintStyle.Render(hint.Text))
	}
	line := "  " + joinWith(parts, hintStyle.Render("  ·  "))
	if m.status != "" {
		line += "   " + m.status
	}
	return line
}

// renderDialog paints the open dialog's node tree into a bordered box.
func (m *Model) renderDialog() string {
	node := m.dlg.Node()
	var lines []string
	for _, c := range node.Children() {
		switch c.Kind {
		case "title":
			lines = append(lines, dialogTitleStyle.Render(c.Text), "")
		case uidom.KindLink:
			lines = append(lines, dialogLinkStyle.Render(c.Text)+hintStyle.Render("  (o)"))
		default:
			lines = append(lines, c.Text)
		}
	}
	if m.dlgName == "language" {
		lines = append(lines, "", m.langList.View())
	}
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func joinWith(parts []string, sep string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return out
}
