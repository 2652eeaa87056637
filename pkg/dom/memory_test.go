package dom

import "testing"

func TestCreateNodes(t *testing.T) {
	doc := NewMemory()

	el := doc.CreateElement("div")
	if el.Kind() != NodeElement || el.Tag() != "div" {
		t.Errorf("expected detached div element, got %s %q", el.Kind(), el.Tag())
	}
	if el.Parent() != nil {
		t.Error("new element must be detached")
	}

	txt := doc.CreateText("hello")
	if txt.Kind() != NodeText || txt.Text() != "hello" {
		t.Errorf("expected text node %q, got %s %q", "hello", txt.Kind(), txt.Text())
	}
}

func TestAppendChild(t *testing.T) {
	doc := NewMemory()
	parent := doc.CreateElement("ul")
	a := doc.CreateElement("li")
	b := doc.CreateElement("li")

	parent.AppendChild(a)
	parent.AppendChild(b)

	kids := parent.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != b {
		t.Fatalf("expected [a b], got %v", kids)
	}
	if a.Parent() != parent {
		t.Error("child must report its parent")
	}
}

func TestInsertBefore(t *testing.T) {
	doc := NewMemory()
	parent := doc.CreateElement("div")
	a := doc.CreateText("a")
	c := doc.CreateText("c")
	parent.AppendChild(a)
	parent.AppendChild(c)

	b := doc.CreateText("b")
	parent.InsertBefore(b, c)

	kids := parent.Children()
	if len(kids) != 3 || kids[0] != a || kids[1] != b || kids[2] != c {
		t.Fatalf("expected [a b c], got %v", kids)
	}
}

func TestInsertBeforeNilRefAppends(t *testing.T) {
	doc := NewMemory()
	parent := doc.CreateElement("div")
	a := doc.CreateText("a")
	parent.AppendChild(a)

	b := doc.CreateText("b")
	parent.InsertBefore(b, nil)

	kids := parent.Children()
	if len(kids) != 2 || kids[1] != b {
		t.Fatalf("expected b appended, got %v", kids)
	}
}

func TestInsertBeforeMovesParentedChild(t *testing.T) {
	doc := NewMemory()
	parent := doc.CreateElement("div")
	a := doc.CreateText("a")
	b := doc.CreateText("b")
	c := doc.CreateText("c")
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	// Move c to the front; it must not be duplicated.
	parent.InsertBefore(c, a)

	kids := parent.Children()
	if len(kids) != 3 || kids[0] != c || kids[1] != a || kids[2] != b {
		t.Fatalf("expected [c a b], got %v", kids)
	}
}

func TestMoveBetweenParents(t *testing.T) {
	doc := NewMemory()
	first := doc.CreateElement("div")
	second := doc.CreateElement("div")
	child := doc.CreateText("x")

	first.AppendChild(child)
	second.AppendChild(child)

	if len(first.Children()) != 0 {
		t.Error("child must be detached from its old parent")
	}
	if len(second.Children()) != 1 || child.Parent() != second {
		t.Error("child must be attached to its new parent")
	}
}

func TestRemoveChild(t *testing.T) {
	doc := NewMemory()
	parent := doc.CreateElement("div")
	child := doc.CreateText("x")
	parent.AppendChild(child)

	parent.RemoveChild(child)

	if len(parent.Children()) != 0 {
		t.Error("expected no children after removal")
	}
	if child.Parent() != nil {
		t.Error("removed child must be detached")
	}

	// Removing a non-child is a no-op.
	parent.RemoveChild(doc.CreateText("y"))
}

func TestAttrs(t *testing.T) {
	doc := NewMemory()
	el := doc.CreateElement("input")

	if _, ok := el.Attr("type"); ok {
		t.Error("expected no attribute before SetAttr")
	}

	el.SetAttr("type", "text")
	if v, ok := el.Attr("type"); !ok || v != "text" {
		t.Errorf("expected type=text, got %q %v", v, ok)
	}

	el.SetAttr("type", "number")
	if v, _ := el.Attr("type"); v != "number" {
		t.Errorf("expected overwrite to number, got %q", v)
	}

	el.RemoveAttr("type")
	if _, ok := el.Attr("type"); ok {
		t.Error("expected attribute removed")
	}
}

func TestStyles(t *testing.T) {
	doc := NewMemory()
	el := doc.CreateElement("div")

	el.SetStyle("color", "red")
	if v, ok := el.Style("color"); !ok || v != "red" {
		t.Errorf("expected color=red, got %q %v", v, ok)
	}

	el.RemoveStyle("color")
	if _, ok := el.Style("color"); ok {
		t.Error("expected style removed")
	}
}

func TestListenersAndDispatch(t *testing.T) {
	doc := NewMemory()
	el := doc.CreateElement("button")

	var got Event
	calls := 0
	el.AddListener("click", func(ev Event) {
		got = ev
		calls++
	})

	el.Dispatch(Event{Type: "click", Value: "payload"})
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if got.Target != el || got.Value != "payload" {
		t.Errorf("expected target set and payload preserved, got %+v", got)
	}

	// Unregistered event types are ignored.
	el.Dispatch(Event{Type: "input"})
	if calls != 1 {
		t.Errorf("unregistered event must not invoke the handler, got %d calls", calls)
	}

	el.RemoveListener("click")
	el.Dispatch(Event{Type: "click"})
	if calls != 1 {
		t.Errorf("removed listener must not fire, got %d calls", calls)
	}
}

func TestObserver(t *testing.T) {
	doc := NewMemory()
	var muts []Mutation
	doc.Observe(func(m Mutation) { muts = append(muts, m) })

	parent := doc.CreateElement("div")
	child := doc.CreateText("x")
	parent.AppendChild(child)
	parent.SetAttr("class", "a")
	parent.SetAttr("class", "a") // no-op, same value
	child.SetText("y")
	parent.RemoveChild(child)

	want := []MutationOp{OpInsert, OpSetAttr, OpSetText, OpRemove}
	if len(muts) != len(want) {
		t.Fatalf("expected %d mutations, got %d: %+v", len(want), len(muts), muts)
	}
	for i, op := range want {
		if muts[i].Op != op {
			t.Errorf("mutation %d: expected %s, got %s", i, op, muts[i].Op)
		}
	}
}

func TestObserverReportsMoveAsSingleInsert(t *testing.T) {
	doc := NewMemory()
	parent := doc.CreateElement("div")
	a := doc.CreateText("a")
	b := doc.CreateText("b")
	parent.AppendChild(a)
	parent.AppendChild(b)

	var muts []Mutation
	doc.Observe(func(m Mutation) { muts = append(muts, m) })

	parent.InsertBefore(b, a)

	if len(muts) != 1 || muts[0].Op != OpInsert || muts[0].Index != 0 {
		t.Errorf("expected one insert at index 0, got %+v", muts)
	}
}
