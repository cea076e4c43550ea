package uidom

import "testing"

// buildFixtureTree returns a document with translation-tagged nodes spread
// across the light tree, a shadow root, template content, and a shadow root
// nested inside template content.
func buildFixtureTree() (*Node, []string) {
	doc := New(KindDocument)

	header := New("pane")
	title := New("label")
	title.SetAttr("data-i18n", "app.title")
	header.AppendChild(title)
	doc.AppendChild(header)

	// Encapsulated widget: its label is invisible to plain traversal.
	card := New("card")
	shadowLabel := New("label")
	shadowLabel.SetAttr("data-i18n", "card.balance")
	card.AttachShadow().AppendChild(shadowLabel)
	doc.AppendChild(card)

	// Inert template with a tagged node and a nested shadow root inside.
	tpl := New(KindTemplate)
	dlg := New(KindDialog)
	dlgTitle := New("label")
	dlgTitle.SetAttr("data-i18n", "dialogs.about.title")
	dlg.AppendChild(dlgTitle)
	inner := New("card")
	innerLabel := New("label")
	innerLabel.SetAttr("data-i18n", "card.nested")
	inner.AttachShadow().AppendChild(innerLabel)
	dlg.AppendChild(inner)
	tpl.Content().AppendChild(dlg)
	doc.AppendChild(tpl)

	want := []string{"app.title", "card.balance", "dialogs.about.title", "card.nested"}
	return doc, want
}

func TestQueryDeepVisitsAllRoots(t *testing.T) {
	doc, want := buildFixtureTree()

	got := QueryDeep(ByAttr("data-i18n"), doc)
	if len(got) != len(want) {
		t.Fatalf("match count = %d, want %d", len(got), len(want))
	}
	seen := make(map[*Node]int)
	for i, n := range got {
		key, _ := n.Attr("data-i18n")
		if key != want[i] {
			t.Fatalf("match[%d] = %q, want %q (root-discovery order)", i, key, want[i])
		}
		seen[n]++
	}
	for n, c := range seen {
		if c != 1 {
			t.Fatalf("node %q visited %d times", n.Kind, c)
		}
	}
}

func TestQueryDeepLeafRoot(t *testing.T) {
	leaf := New("pane")
	if got := QueryDeep(ByAttr("data-i18n"), leaf); len(got) != 0 {
		t.Fatalf("leaf root matched %d nodes, want 0", len(got))
	}
	if got := QueryDeep(ByAttr("data-i18n"), nil); got != nil {
		t.Fatalf("nil root returned %v", got)
	}
}

func TestQueryDeepZeroMatchesIsNotAnError(t *testing.T) {
	doc, _ := buildFixtureTree()
	if got := QueryDeep(ByKind("nonexistent"), doc); len(got) != 0 {
		t.Fatalf("matched %d nodes, want 0", len(got))
	}
}

func TestQueryStaysInsideRootScope(t *testing.T) {
	doc, _ := buildFixtureTree()
	// A plain per-root query over the document must not see shadow or
	// template content.
	if got := query(ByAttr("data-i18n"), doc); len(got) != 1 {
		t.Fatalf("light-tree query matched %d nodes, want 1", len(got))
	}
}

func TestQueryDeepSelectorByKindAndName(t *testing.T) {
	doc := New(KindDocument)
	a := New(KindLink)
	a.Name = "docs"
	doc.AppendChild(a)
	b := New(KindLink)
	doc.AppendChild(b)

	if got := QueryDeep(ByKind(KindLink), doc); len(got) != 2 {
		t.Fatalf("ByKind matched %d, want 2", len(got))
	}
	got := QueryDeep(ByName("docs"), doc)
	if len(got) != 1 || got[0] != a {
		t.Fatalf("ByName matched %v", got)
	}
}

func TestCount(t *testing.T) {
	doc, _ := buildFixtureTree()
	// document + header + title + card + shadow(2) + template + content +
	// dialog + dlgTitle + inner + inner shadow(2)  = 13
	if got := Count(doc); got != 13 {
		t.Fatalf("Count = %d, want 13", got)
	}
}
