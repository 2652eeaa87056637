package dom

// NodeKind is the host node type discriminator.
type NodeKind uint8

const (
	NodeElement NodeKind = iota // <div>, <button>, etc.
	NodeText                    // Plain text node
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case NodeElement:
		return "Element"
	case NodeText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Event is delivered to listeners registered with AddListener.
type Event struct {
	Type   string // "click", "input", etc.
	Target Node   // Node the event was dispatched on
	Value  string // Payload for input-like events
}

// EventHandler handles a dispatched event.
type EventHandler func(Event)

// Document creates host nodes. The runtime holds exactly one document per
// mounted tree.
type Document interface {
	// CreateElement creates a detached element node with the given tag.
	CreateElement(tag string) Node

	// CreateText creates a detached text node with the given content.
	CreateText(text string) Node
}

// Node is a single host tree node. Element nodes carry attributes, styles,
// listeners and children; text nodes carry only text content.
type Node interface {
	Kind() NodeKind
	Tag() string

	Parent() Node
	Children() []Node

	// AppendChild adds child as the last child, detaching it from any
	// previous parent first.
	AppendChild(child Node)

	// InsertBefore inserts child before ref. A nil ref appends. If child is
	// already parented it is moved, not duplicated.
	InsertBefore(child, ref Node)

	// RemoveChild detaches child from this node. Removing a node that is not
	// a child is a no-op.
	RemoveChild(child Node)

	SetAttr(name, value string)
	RemoveAttr(name string)
	Attr(name string) (string, bool)

	// Attrs returns the node's attributes. The returned map must not be
	// mutated.
	Attrs() map[string]string

	SetStyle(prop, value string)
	RemoveStyle(prop string)
	Style(prop string) (string, bool)

	// Styles returns the node's inline styles. The returned map must not
	// be mutated.
	Styles() map[string]string

	SetText(text string)
	Text() string

	AddListener(event string, handler EventHandler)
	RemoveListener(event string)

	// Dispatch invokes the listener registered for ev.Type, if any. The
	// event's Target is set to this node before delivery.
	Dispatch(ev Event)
}
