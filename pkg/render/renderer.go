package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/weft-ui/weft/pkg/vdom"
)

// ToString renders a tree to an HTML string.
func ToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := ToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams a tree to the given writer.
func ToWriter(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err

	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := ToWriter(w, child); err != nil {
				return err
			}
		}
		return nil

	case vdom.KindComponent:
		return ToWriter(w, node.Comp.Render(node.CompProps, node.Children))

	case vdom.KindElement:
		return renderElement(w, node)

	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := renderAttributes(w, node.Props); err != nil {
		return err
	}

	if vdom.IsVoidElement(node.Tag) {
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := ToWriter(w, child); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

// renderAttributes writes the element's attributes and collected style
// string. Listeners and refs have no HTML representation. Later props win
// over earlier ones of the same name, matching live-node application order.
func renderAttributes(w io.Writer, props []vdom.Prop) error {
	attrs := make(map[string]string)
	valueless := make(map[string]bool)
	styles := make(map[string]string)

	for _, p := range props {
		switch p.Kind {
		case vdom.PropAttr:
			v, present := vdom.EffectiveAttr(p.Value)
			if !present {
				delete(attrs, p.Name)
				delete(valueless, p.Name)
				continue
			}
			if _, isBool := p.Value.(bool); isBool {
				valueless[p.Name] = true
				delete(attrs, p.Name)
				continue
			}
			attrs[p.Name] = v
			delete(valueless, p.Name)

		case vdom.PropStyle:
			if v, present := vdom.EffectiveAttr(p.Value); present {
				styles[p.Name] = v
			}
		}
	}

	if len(styles) > 0 {
		attrs["style"] = flattenStyles(styles)
	}

	// Sort keys for deterministic output.
	keys := make([]string, 0, len(attrs)+len(valueless))
	for k := range attrs {
		keys = append(keys, k)
	}
	for k := range valueless {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if valueless[key] {
			if _, err := fmt.Fprintf(w, " %s", key); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrs[key])); err != nil {
			return err
		}
	}
	return nil
}

func flattenStyles(styles map[string]string) string {
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(styles[k])
	}
	return b.String()
}
