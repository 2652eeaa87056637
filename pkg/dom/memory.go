package dom

// Memory is an in-memory Document. It is the host tree used by the server
// runtime and by reconciler tests; nodes are plain structs with no handles
// into an external renderer.
//
// An optional observer receives every tree mutation, which is how patch
// streams and mutation-counting tests are built.
type Memory struct {
	observer func(Mutation)
}

// NewMemory creates an in-memory document.
func NewMemory() *Memory {
	return &Memory{}
}

// Observe registers fn to receive every subsequent mutation of nodes
// created by this document. A nil fn stops observation.
func (m *Memory) Observe(fn func(Mutation)) {
	m.observer = fn
}

func (m *Memory) notify(mut Mutation) {
	if m.observer != nil {
		m.observer(mut)
	}
}

// CreateElement implements Document.
func (m *Memory) CreateElement(tag string) Node {
	return &memNode{doc: m, kind: NodeElement, tag: tag}
}

// CreateText implements Document.
func (m *Memory) CreateText(text string) Node {
	return &memNode{doc: m, kind: NodeText, text: text}
}

type memNode struct {
	doc       *Memory
	kind      NodeKind
	tag       string
	text      string
	parent    *memNode
	children  []Node
	attrs     map[string]string
	styles    map[string]string
	listeners map[string]EventHandler
}

func (n *memNode) Kind() NodeKind { return n.kind }
func (n *memNode) Tag() string    { return n.tag }

func (n *memNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *memNode) Children() []Node { return n.children }

func (n *memNode) AppendChild(child Node) {
	n.InsertBefore(child, nil)
}

func (n *memNode) InsertBefore(child, ref Node) {
	c, ok := child.(*memNode)
	if !ok || c == nil {
		return
	}
	if c.parent != nil {
		c.parent.detach(c)
	}

	idx := len(n.children)
	if ref != nil {
		for i, existing := range n.children {
			if existing == ref {
				idx = i
				break
			}
		}
	}

	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = c
	c.parent = n

	n.doc.notify(Mutation{Op: OpInsert, Target: c, Parent: n, Index: idx})
}

func (n *memNode) RemoveChild(child Node) {
	if c, ok := child.(*memNode); ok && c.parent == n {
		n.detach(c)
		n.doc.notify(Mutation{Op: OpRemove, Target: c, Parent: n})
	}
}

// detach unlinks the child without reporting, so a move shows up as a
// single insert rather than a remove/insert pair.
func (n *memNode) detach(c *memNode) {
	for i, existing := range n.children {
		if existing == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (n *memNode) SetAttr(name, value string) {
	if prev, ok := n.attrs[name]; ok && prev == value {
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
	n.doc.notify(Mutation{Op: OpSetAttr, Target: n, Name: name, Value: value})
}

func (n *memNode) RemoveAttr(name string) {
	if _, ok := n.attrs[name]; !ok {
		return
	}
	delete(n.attrs, name)
	n.doc.notify(Mutation{Op: OpRemoveAttr, Target: n, Name: name})
}

func (n *memNode) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *memNode) Attrs() map[string]string { return n.attrs }

func (n *memNode) SetStyle(prop, value string) {
	if prev, ok := n.styles[prop]; ok && prev == value {
		return
	}
	if n.styles == nil {
		n.styles = make(map[string]string)
	}
	n.styles[prop] = value
	n.doc.notify(Mutation{Op: OpSetStyle, Target: n, Name: prop, Value: value})
}

func (n *memNode) RemoveStyle(prop string) {
	if _, ok := n.styles[prop]; !ok {
		return
	}
	delete(n.styles, prop)
	n.doc.notify(Mutation{Op: OpRemoveStyle, Target: n, Name: prop})
}

func (n *memNode) Style(prop string) (string, bool) {
	v, ok := n.styles[prop]
	return v, ok
}

func (n *memNode) Styles() map[string]string { return n.styles }

func (n *memNode) SetText(text string) {
	if n.text == text {
		return
	}
	n.text = text
	n.doc.notify(Mutation{Op: OpSetText, Target: n, Value: text})
}

func (n *memNode) Text() string { return n.text }

func (n *memNode) AddListener(event string, handler EventHandler) {
	if n.listeners == nil {
		n.listeners = make(map[string]EventHandler)
	}
	n.listeners[event] = handler
}

func (n *memNode) RemoveListener(event string) {
	delete(n.listeners, event)
}

func (n *memNode) Dispatch(ev Event) {
	handler, ok := n.listeners[ev.Type]
	if !ok {
		return
	}
	ev.Target = n
	handler(ev)
}
