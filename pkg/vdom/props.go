package vdom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/weft-ui/weft/pkg/dom"
)

// PropKind discriminates what a Prop does to its element. The kind is fixed
// at construction time.
type PropKind uint8

const (
	PropAttr     PropKind = iota // HTML attribute
	PropListener                 // Event listener
	PropStyle                    // Inline style sub-property
	PropRef                      // Node reference callback
	propKey                      // Consumed by the element factory
)

// String returns the string representation of the PropKind.
func (k PropKind) String() string {
	switch k {
	case PropAttr:
		return "Attr"
	case PropListener:
		return "Listener"
	case PropStyle:
		return "Style"
	case PropRef:
		return "Ref"
	default:
		return "Unknown"
	}
}

// Prop is a single tagged element prop.
type Prop struct {
	Kind    PropKind
	Name    string // Attribute name, event name, or style property
	Value   any    // PropAttr: raw value, resolved via EffectiveAttr
	Handler dom.EventHandler
	Ref     func(dom.Node)
}

// IsEmpty returns true if this is a zero/skipped prop.
func (p Prop) IsEmpty() bool {
	return p.Name == "" && p.Handler == nil && p.Ref == nil
}

// Attr creates an attribute prop. Nil and false values mean the attribute
// is absent; true means a valueless attribute; everything else is
// stringified when applied.
func Attr(name string, value any) Prop {
	return Prop{Kind: PropAttr, Name: name, Value: value}
}

// On creates an event listener prop for the given event name ("click",
// "input", ...).
func On(event string, handler dom.EventHandler) Prop {
	return Prop{Kind: PropListener, Name: event, Handler: handler}
}

// Style creates an inline style prop for one sub-property.
func Style(prop, value string) Prop {
	return Prop{Kind: PropStyle, Name: prop, Value: value}
}

// Ref creates a node reference prop. The callback is invoked with the
// concrete node after layout, and with nil on unmount.
func Ref(fn func(dom.Node)) Prop {
	return Prop{Kind: PropRef, Name: "ref", Ref: fn}
}

// Key sets the element's reconciliation key. It is consumed by the element
// factory and never applied to the node.
func Key(key string) Prop {
	return Prop{Kind: propKey, Name: "key", Value: key}
}

// booleanAttrs are attributes whose presence alone carries meaning.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if the attribute is a boolean attribute.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[strings.ToLower(name)]
}

// EffectiveAttr resolves an attribute prop's raw value to the string that
// belongs on the node. present=false means the attribute must not appear.
// A present empty string with ok on a boolean value means a valueless
// attribute. The reconciler and the HTML renderer share this rule so
// server-rendered markup matches what mount would have produced.
func EffectiveAttr(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		if v {
			return "", true
		}
		return "", false
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", value), true
	}
}
