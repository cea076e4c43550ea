package tui

import (
	"github.com/jask/jaskwallet/internal/database/repository"
	"github.com/jask/jaskwallet/internal/format"
	"github.com/jask/jaskwallet/internal/i18n"
	"github.com/jask/jaskwallet/internal/uidom"
)

// Named document nodes the renderer reads back.
const (
	nodeAppTitle      = "app-title"
	nodeBalancesTitle = "balances-title"
	nodeHistoryTitle  = "history-title"
	nodeAccountList   = "account-list"
	nodeFooter        = "footer"
)

// BuildDocument assembles the shell's widget tree. Every piece of chrome
// text lives in this tree tagged with its translation key; the renderer
// reads the tree back, so whatever the overlay resolves is what shows up on
// screen.
func BuildDocument() *uidom.Node {
	doc := uidom.New(uidom.KindDocument)

	header := uidom.New("pane")
	header.Name = "header"
	title := uidom.NewText("Jaskwallet")
	title.Name = nodeAppTitle
	title.SetAttr(i18n.KeyAttr, "app.title")
	header.AppendChild(title)
	doc.AppendChild(header)

	balances := uidom.New("pane")
	balances.Name = "balances"
	balTitle := uidom.NewText("Balances")
	balTitle.Name = nodeBalancesTitle
	balTitle.SetAttr(i18n.KeyAttr, "panes.balances.title")
	balances.AppendChild(balTitle)
	accounts := uidom.New("list")
	accounts.Name = nodeAccountList
	balances.AppendChild(accounts)
	doc.AppendChild(balances)

	history := uidom.New("pane")
	history.Name = "history"
	histTitle := uidom.NewText("Balance history")
	histTitle.Name = nodeHistoryTitle
	histTitle.SetAttr(i18n.KeyAttr, "panes.history.title")
	history.AppendChild(histTitle)
	doc.AppendChild(history)

	footer := uidom.New("pane")
	footer.Name = nodeFooter
	for _, hint := range []struct {
		key  string
		text string
		k18n string
	}{
		{"q", "quit", "footer.quit"},
		{"l", "language", "footer.language"},
		{"a", "about", "footer.about"},
		{"esc", "close", "footer.close"},
	} {
		n := uidom.NewText(hint.text)
		n.Name = hint.key
		n.SetAttr(i18n.KeyAttr, hint.k18n)
		footer.AppendChild(n)
	}
	doc.AppendChild(footer)

	return doc
}

// newAccountCard builds one account widget. The card's internals live in a
// shadow root: encapsulated from plain traversal, still reached by the
// overlay's deep query.
func newAccountCard(a repository.Account) *uidom.Node {
	card := uidom.New("card")
	card.Name = a.ID

	sh := card.AttachShadow()
	name := uidom.NewText(a.Name)
	name.Name = "name"
	sh.AppendChild(name)

	kind := uidom.NewText(a.Kind)
	kind.Name = "kind"
	if a.Kind != "" {
		kind.SetAttr(i18n.KeyAttr, "kinds."+a.Kind)
	}
	sh.AppendChild(kind)

	balance := uidom.NewText(format.Balance(a.BalanceCents, a.Currency))
	balance.Name = "balance"
	sh.AppendChild(balance)
	return card
}

// setAccounts replaces the account cards under the document's account list.
// defaultCurrency applies to accounts that carry none of their own.
func setAccounts(doc *uidom.Node, accounts []repository.Account, defaultCurrency string) {
	list := findNode(doc, nodeAccountList)
	if list == nil {
		return
	}
	for _, c := range list.Children() {
		c.Remove()
	}
	for _, a := range accounts {
		if a.Currency == "" {
			a.Currency = defaultCurrency
		}
		list.AppendChild(newAccountCard(a))
	}
}

// findNode locates a named node anywhere in the document, shadow roots and
// template content included.
func findNode(doc *uidom.Node, name string) *uidom.Node {
	matches := uidom.QueryDeep(uidom.ByName(name), doc)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
