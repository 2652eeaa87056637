package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Component invocation
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is a tree model node. It is a tagged variant: which fields are
// meaningful depends on Kind. Nodes are immutable once produced.
type VNode struct {
	Kind     VKind
	Tag      string   // KindElement: tag name (e.g. "div")
	Props    []Prop   // KindElement: attributes, listeners, styles, refs
	Children []*VNode // KindElement, KindFragment, KindComponent
	Key      string   // Reconciliation key; empty means positional
	Text     string   // KindText: content
	Comp     *Component
	CompProps Props // KindComponent: props passed to the render function
}

// Props holds the named values passed to a component.
type Props map[string]any

// Component is a reusable render function with a stable identity. Two
// component nodes are the same type for diff purposes iff they hold the
// same *Component.
type Component struct {
	name   string
	render func(props Props, children []*VNode) *VNode
}

// Define creates a component. The name is used in error reports only;
// identity is the returned pointer.
func Define(name string, render func(props Props, children []*VNode) *VNode) *Component {
	return &Component{name: name, render: render}
}

// Name returns the component's display name.
func (c *Component) Name() string { return c.name }

// Render invokes the component's render function.
func (c *Component) Render(props Props, children []*VNode) *VNode {
	return c.render(props, children)
}

// WithKey returns the node with its reconciliation key set.
func (n *VNode) WithKey(key string) *VNode {
	n.Key = key
	return n
}

// SameType reports whether two nodes are the same type for diff purposes:
// both intrinsic elements with an equal tag, both text, both fragments, or
// both invocations of the identical component.
func SameType(a, b *VNode) bool {
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindElement:
		return a.Tag == b.Tag
	case KindComponent:
		return a.Comp == b.Comp
	default:
		return true
	}
}
