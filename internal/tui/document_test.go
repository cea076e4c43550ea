package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskwallet/internal/database/repository"
	"github.com/jask/jaskwallet/internal/i18n"
	"github.com/jask/jaskwallet/internal/uidom"
)

func TestBuildDocumentChromeIsTagged(t *testing.T) {
	doc := BuildDocument()

	tagged := uidom.QueryDeep(uidom.ByAttr(i18n.KeyAttr), doc)
	require.NotEmpty(t, tagged)

	// Every named chrome node the renderer reads back must exist and carry a
	// translation key.
	for _, name := range []string{nodeAppTitle, nodeBalancesTitle, nodeHistoryTitle} {
		n := findNode(doc, name)
		require.NotNil(t, n, "node %q missing", name)
		_, ok := n.Attr(i18n.KeyAttr)
		require.True(t, ok, "node %q has no translation key", name)
	}

	footer := findNode(doc, nodeFooter)
	require.NotNil(t, footer)
	require.Len(t, footer.Children(), 4)
}

func TestSetAccountsReplacesCards(t *testing.T) {
	doc := BuildDocument()

	first := []repository.Account{
		{ID: "a1", Name: "Checking", Kind: "spending", Currency: "USD", BalanceCents: 123456},
		{ID: "a2", Name: "Vault", Kind: "savings", BalanceCents: -75},
	}
	setAccounts(doc, first, "EUR")

	list := findNode(doc, nodeAccountList)
	require.NotNil(t, list)
	require.Len(t, list.Children(), 2)

	// Card internals live behind a shadow root, invisible to plain children.
	card := list.Children()[0]
	require.Empty(t, card.Children())
	sh := card.ShadowRoot()
	require.NotNil(t, sh)

	texts := map[string]string{}
	for _, c := range sh.Children() {
		texts[c.Name] = c.Text
	}
	require.Equal(t, "Checking", texts["name"])
	require.Equal(t, "$1,234.56", texts["balance"])

	// The second account has no currency of its own and inherits the default.
	sh2 := list.Children()[1].ShadowRoot()
	require.NotNil(t, sh2)
	for _, c := range sh2.Children() {
		if c.Name == "balance" {
			require.Equal(t, "-€0.75", c.Text)
		}
	}

	// Replacing the set must not accumulate cards.
	setAccounts(doc, first[:1], "EUR")
	require.Len(t, list.Children(), 1)
}

func TestAccountKindIsTranslatable(t *testing.T) {
	card := newAccountCard(repository.Account{ID: "x", Name: "Cold", Kind: "crypto", Currency: "BTC"})
	sh := card.ShadowRoot()
	require.NotNil(t, sh)

	var kindNode *uidom.Node
	for _, c := range sh.Children() {
		if c.Name == "kind" {
			kindNode = c
		}
	}
	require.NotNil(t, kindNode)
	key, ok := kindNode.Attr(i18n.KeyAttr)
	require.True(t, ok)
	require.Equal(t, "kinds.crypto", key)
}

func TestBalanceChart(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var points []repository.BalancePoint
	for i := 0; i < 10; i++ {
		points = append(points, repository.BalancePoint{
			AccountID:    "a1",
			At:           base.AddDate(0, 0, i),
			BalanceCents: int64(100000 + i*500),
		})
	}

	if got := balanceChart(points, 40); got == "" {
		t.Fatal("expected chart output for 10 points")
	}
	if got := balanceChart(points[:1], 40); got != "" {
		t.Fatalf("expected no chart for a single point, got %q", got)
	}
	if got := balanceChart(points, 8); got != "" {
		t.Fatalf("expected no chart below minimum width, got %q", got)
	}
}
