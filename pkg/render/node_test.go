package render

import (
	"testing"

	"github.com/weft-ui/weft/pkg/dom"
)

func TestNodeToString(t *testing.T) {
	doc := dom.NewMemory()
	div := doc.CreateElement("div")
	div.SetAttr("class", "card")
	div.SetStyle("color", "red")

	span := doc.CreateElement("span")
	span.AppendChild(doc.CreateText("hi & bye"))
	div.AppendChild(span)
	div.AppendChild(doc.CreateElement("br"))

	got, err := NodeToString(div)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	want := `<div class="card" style="color: red"><span>hi &amp; bye</span><br></div>`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNodeToStringValuelessBooleanAttr(t *testing.T) {
	doc := dom.NewMemory()
	input := doc.CreateElement("input")
	input.SetAttr("type", "checkbox")
	input.SetAttr("checked", "")

	got, err := NodeToString(input)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	want := `<input checked type="checkbox">`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
