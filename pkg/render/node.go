package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/vdom"
)

// NodeToString serializes a mounted host node to HTML. Used for snapshots
// of live trees; the output follows the same attribute rules as ToString.
func NodeToString(node dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := NodeToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// NodeToWriter streams a mounted host node to the given writer.
func NodeToWriter(w io.Writer, node dom.Node) error {
	if node == nil {
		return nil
	}

	if node.Kind() == dom.NodeText {
		_, err := io.WriteString(w, escapeHTML(node.Text()))
		return err
	}

	if _, err := fmt.Fprintf(w, "<%s", node.Tag()); err != nil {
		return err
	}

	attrs := node.Attrs()
	styles := node.Styles()
	keys := make([]string, 0, len(attrs)+1)
	for k := range attrs {
		keys = append(keys, k)
	}
	if len(styles) > 0 {
		keys = append(keys, "style")
	}
	sort.Strings(keys)

	for _, key := range keys {
		var value string
		if key == "style" && len(styles) > 0 {
			value = flattenStyles(styles)
		} else {
			value = attrs[key]
		}
		if value == "" && vdom.IsBooleanAttr(key) {
			if _, err := fmt.Fprintf(w, " %s", key); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value)); err != nil {
			return err
		}
	}

	if vdom.IsVoidElement(node.Tag()) {
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range node.Children() {
		if err := NodeToWriter(w, child); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>", node.Tag())
	return err
}
