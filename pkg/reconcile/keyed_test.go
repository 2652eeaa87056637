package reconcile

import (
	"testing"

	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/reactive"
	"github.com/weft-ui/weft/pkg/vdom"
)

func keyedList(keys ...string) *vdom.VNode {
	items := vdom.Map(keys, func(k string) *vdom.VNode {
		return vdom.Li(vdom.Key(k), vdom.Text(k))
	})
	return vdom.Ul(items)
}

func childTexts(n dom.Node) []string {
	var out []string
	for _, c := range n.Children() {
		out = append(out, c.Children()[0].Text())
	}
	return out
}

func TestKeyedReorderReusesNodes(t *testing.T) {
	tt := newTestTarget(t)

	tt.render(t, keyedList("a", "b", "c"))
	ul := tt.container.Children()[0]
	byKey := map[string]dom.Node{}
	for _, li := range ul.Children() {
		byKey[li.Children()[0].Text()] = li
	}

	tt.render(t, keyedList("c", "a", "b"))

	got := childTexts(ul)
	if len(got) != 3 || got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Fatalf("expected order [c a b], got %v", got)
	}
	for i, want := range []string{"c", "a", "b"} {
		if ul.Children()[i] != byKey[want] {
			t.Errorf("node %q was remounted instead of moved", want)
		}
	}
}

func TestKeyedRemovalKeepsSiblingIdentity(t *testing.T) {
	tt := newTestTarget(t)

	tt.render(t, keyedList("a", "b", "c"))
	ul := tt.container.Children()[0]
	a, c := ul.Children()[0], ul.Children()[2]

	tt.render(t, keyedList("a", "c"))

	got := childTexts(ul)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("expected [a c], got %v", got)
	}
	if ul.Children()[0] != a || ul.Children()[1] != c {
		t.Error("surviving siblings must keep their identity")
	}
}

func TestKeyedRemovalRunsCleanups(t *testing.T) {
	tt := newTestTarget(t)

	cleaned := map[string]bool{}
	item := vdom.Define("Item", func(props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
		name := props["name"].(string)
		reactive.OnUnmount(tt.rt, func() { cleaned[name] = true })
		return vdom.Li(vdom.Text(name))
	})

	list := func(keys ...string) *vdom.VNode {
		items := vdom.Map(keys, func(k string) *vdom.VNode {
			return vdom.Comp(item, vdom.Props{"name": k}).WithKey(k)
		})
		return vdom.Ul(items)
	}

	tt.render(t, list("a", "b", "c"))
	tt.render(t, list("a", "c"))

	if !cleaned["b"] {
		t.Error("removed child's cleanups must run")
	}
	if cleaned["a"] || cleaned["c"] {
		t.Error("surviving children must not be cleaned up")
	}
}

func TestSameKeyDifferentTagFullReplace(t *testing.T) {
	tt := newTestTarget(t)

	tt.render(t, vdom.Div(vdom.Span(vdom.Key("x"), vdom.Text("span"))))
	parent := tt.container.Children()[0]
	oldNode := parent.Children()[0]

	tt.render(t, vdom.Div(vdom.P(vdom.Key("x"), vdom.Text("para"))))

	newNode := parent.Children()[0]
	if newNode == oldNode {
		t.Error("a matching key must not suppress a type-mismatch replacement")
	}
	if newNode.Tag() != "p" {
		t.Errorf("expected replacement p, got %q", newNode.Tag())
	}
	if oldNode.Parent() != nil {
		t.Error("replaced node must be detached")
	}
}

func TestKeyedReplaceDoesNotDisturbSiblings(t *testing.T) {
	tt := newTestTarget(t)

	// One pass combining a type-mismatch replacement (which frees the old
	// record), a fresh mount (which may recycle the freed slot), and a
	// removal. Only the removed child may be unmounted.
	tt.render(t, vdom.Div(
		vdom.Span(vdom.Key("x"), vdom.Text("old")),
		vdom.Li(vdom.Key("y"), vdom.Text("gone")),
	))
	parent := tt.container.Children()[0]

	tt.render(t, vdom.Div(
		vdom.P(vdom.Key("x"), vdom.Text("new")),
		vdom.Li(vdom.Key("z"), vdom.Text("fresh")),
	))

	kids := parent.Children()
	if len(kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(kids))
	}
	if kids[0].Tag() != "p" || kids[0].Children()[0].Text() != "new" {
		t.Errorf("expected replacement p/new, got %s/%q", kids[0].Tag(), kids[0].Children()[0].Text())
	}
	if kids[1].Tag() != "li" || kids[1].Children()[0].Text() != "fresh" {
		t.Errorf("fresh mount must survive the removal pass, got %s/%q", kids[1].Tag(), kids[1].Children()[0].Text())
	}
}

func TestUnkeyedChildrenMatchByPosition(t *testing.T) {
	tt := newTestTarget(t)

	tt.render(t, vdom.Div(vdom.Span("a"), vdom.Span("b")))
	div := tt.container.Children()[0]
	first := div.Children()[0]

	tt.render(t, vdom.Div(vdom.Span("a2"), vdom.Span("b2")))

	if div.Children()[0] != first {
		t.Error("positional match must update in place")
	}
	if got := div.Children()[0].Children()[0].Text(); got != "a2" {
		t.Errorf("expected a2, got %q", got)
	}
}

func TestPrimitiveChildrenJoinKeyedAlgorithm(t *testing.T) {
	tt := newTestTarget(t)

	// Mixed list: text children are normalized into synthetic text entries
	// and matched positionally alongside keyed siblings.
	tt.render(t, vdom.Div("lead", vdom.Span(vdom.Key("s"), vdom.Text("mid")), "tail"))
	div := tt.container.Children()[0]
	lead := div.Children()[0]

	tt.render(t, vdom.Div("lead2", vdom.Span(vdom.Key("s"), vdom.Text("mid")), "tail"))

	if div.Children()[0] != lead {
		t.Error("text child must be reused positionally")
	}
	if lead.Text() != "lead2" {
		t.Errorf("expected updated text lead2, got %q", lead.Text())
	}
}

func TestGrowingAndShrinkingLists(t *testing.T) {
	tt := newTestTarget(t)

	tt.render(t, keyedList("a"))
	ul := tt.container.Children()[0]

	tt.render(t, keyedList("a", "b", "c"))
	if got := childTexts(ul); len(got) != 3 {
		t.Fatalf("expected 3 items after growth, got %v", got)
	}

	tt.render(t, keyedList("b"))
	got := childTexts(ul)
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("expected [b] after shrink, got %v", got)
	}
}
