package vdom

import "testing"

func TestElBasics(t *testing.T) {
	n := El("div", Class("card"), ID("main"), Text("hello"))

	if n.Kind != KindElement || n.Tag != "div" {
		t.Fatalf("expected div element, got %+v", n)
	}
	if len(n.Props) != 2 {
		t.Fatalf("expected 2 props, got %d", len(n.Props))
	}
	if len(n.Children) != 1 || n.Children[0].Text != "hello" {
		t.Fatalf("expected one text child, got %+v", n.Children)
	}
}

func TestElStringAndIntChildren(t *testing.T) {
	n := El("span", "count: ", 42)
	if len(n.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(n.Children))
	}
	if n.Children[0].Text != "count: " || n.Children[1].Text != "42" {
		t.Errorf("expected normalized text children, got %+v", n.Children)
	}
}

func TestElExtractsKey(t *testing.T) {
	n := El("li", Key("item-3"), Text("three"))
	if n.Key != "item-3" {
		t.Errorf("expected key item-3, got %q", n.Key)
	}
	for _, p := range n.Props {
		if p.Name == "key" {
			t.Error("key must be consumed by the factory, not stored as a prop")
		}
	}
}

func TestElSkipsNil(t *testing.T) {
	n := El("div", nil, If(false, Span()), Text("x"))
	if len(n.Children) != 1 {
		t.Errorf("expected nil args dropped, got %d children", len(n.Children))
	}
}

func TestElFlattensSlices(t *testing.T) {
	items := []*VNode{Li(Text("a")), nil, Li(Text("b"))}
	n := Ul(items, []Prop{Class("list"), Attr("role", "list")})

	if len(n.Children) != 2 {
		t.Errorf("expected 2 children after flattening, got %d", len(n.Children))
	}
	if len(n.Props) != 2 {
		t.Errorf("expected 2 props after flattening, got %d", len(n.Props))
	}
}

func TestFragment(t *testing.T) {
	f := Fragment(Span(), "text", nil, []*VNode{Div()})
	if f.Kind != KindFragment {
		t.Fatalf("expected fragment, got %s", f.Kind)
	}
	if len(f.Children) != 3 {
		t.Errorf("expected 3 children, got %d", len(f.Children))
	}
}

func TestTextf(t *testing.T) {
	n := Textf("%d items", 7)
	if n.Kind != KindText || n.Text != "7 items" {
		t.Errorf("expected text node %q, got %+v", "7 items", n)
	}
}

func TestMap(t *testing.T) {
	nodes := Map([]string{"a", "b"}, func(s string) *VNode {
		return Li(Key(s), Text(s))
	})
	if len(nodes) != 2 || nodes[0].Key != "a" || nodes[1].Key != "b" {
		t.Errorf("expected keyed list items, got %+v", nodes)
	}
}

func TestIfElse(t *testing.T) {
	yes := Span()
	no := Div()
	if IfElse(true, yes, no) != yes || IfElse(false, yes, no) != no {
		t.Error("IfElse picked the wrong branch")
	}
}

func TestWhenIsLazy(t *testing.T) {
	called := false
	When(false, func() *VNode {
		called = true
		return Div()
	})
	if called {
		t.Error("When must not evaluate the function when the condition is false")
	}
}
