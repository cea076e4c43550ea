package uidom

import "testing"

func TestAppendChildReparents(t *testing.T) {
	a := New("pane")
	b := New("pane")
	c := NewText("hello")

	a.AppendChild(c)
	if c.Parent() != a {
		t.Fatalf("parent = %v, want a", c.Parent())
	}

	b.AppendChild(c)
	if c.Parent() != b {
		t.Fatalf("parent after reparent = %v, want b", c.Parent())
	}
	if len(a.Children()) != 0 {
		t.Fatalf("old parent still has %d children", len(a.Children()))
	}
	if b.FirstChild() != c {
		t.Fatalf("b.FirstChild() != c")
	}
}

func TestRemoveDetachedIsNoOp(t *testing.T) {
	n := New("pane")
	n.Remove() // must not panic
	if n.Parent() != nil {
		t.Fatalf("detached node has parent %v", n.Parent())
	}
}

func TestAttrRoundTrip(t *testing.T) {
	n := New("label")
	if _, ok := n.Attr("data-i18n"); ok {
		t.Fatal("fresh node should have no attributes")
	}
	n.SetAttr("data-i18n", "panes.balances.title")
	v, ok := n.Attr("data-i18n")
	if !ok || v != "panes.balances.title" {
		t.Fatalf("Attr = %q, %v", v, ok)
	}
	n.DelAttr("data-i18n")
	if _, ok := n.Attr("data-i18n"); ok {
		t.Fatal("attribute survived DelAttr")
	}
}

func TestContentOnlyOnTemplates(t *testing.T) {
	if New("pane").Content() != nil {
		t.Fatal("non-template node returned content root")
	}
	tpl := New(KindTemplate)
	content := tpl.Content()
	if content == nil {
		t.Fatal("template content root is nil")
	}
	if tpl.Content() != content {
		t.Fatal("Content() not stable across calls")
	}
	// Template content is not an ordinary child.
	if len(tpl.Children()) != 0 {
		t.Fatalf("template has %d plain children", len(tpl.Children()))
	}
}

func TestCloneDeepIsIndependentAndInert(t *testing.T) {
	orig := New(KindDialog)
	orig.Name = "about"
	orig.SetAttr("data-i18n", "dialogs.about.title")
	link := New(KindLink)
	link.SetAttr("href", "https://example.org")
	link.OnActivate = func() {}
	orig.AppendChild(link)
	card := New("card")
	card.AttachShadow().AppendChild(NewText("shadowed"))
	orig.AppendChild(card)

	clone := orig.CloneDeep()
	if clone.Parent() != nil {
		t.Fatal("clone should be detached")
	}
	if clone.OnActivate != nil || clone.FirstChild().OnActivate != nil {
		t.Fatal("activation handlers must not be cloned")
	}
	if got := Count(clone); got != Count(orig) {
		t.Fatalf("clone size = %d, want %d", got, Count(orig))
	}

	// Mutating the clone must not leak into the original.
	clone.FirstChild().SetAttr("href", "https://changed.example")
	if v, _ := orig.FirstChild().Attr("href"); v != "https://example.org" {
		t.Fatalf("original href changed to %q", v)
	}
	clone.Children()[1].ShadowRoot().FirstChild().SetText("mutated")
	if got := card.ShadowRoot().FirstChild().Text; got != "shadowed" {
		t.Fatalf("original shadow text = %q", got)
	}
}
