package vdom

import (
	"testing"

	"github.com/weft-ui/weft/pkg/dom"
)

func TestPropConstructorKinds(t *testing.T) {
	if p := Attr("id", "x"); p.Kind != PropAttr || p.Name != "id" {
		t.Errorf("Attr built %+v", p)
	}
	if p := On("click", func(dom.Event) {}); p.Kind != PropListener || p.Name != "click" || p.Handler == nil {
		t.Errorf("On built %+v", p)
	}
	if p := Style("color", "red"); p.Kind != PropStyle || p.Name != "color" {
		t.Errorf("Style built %+v", p)
	}
	if p := Ref(func(dom.Node) {}); p.Kind != PropRef || p.Ref == nil {
		t.Errorf("Ref built %+v", p)
	}
}

func TestEffectiveAttr(t *testing.T) {
	cases := []struct {
		name    string
		value   any
		want    string
		present bool
	}{
		{"string", "text", "text", true},
		{"empty string", "", "", true},
		{"true is valueless", true, "", true},
		{"false is absent", false, "", false},
		{"nil is absent", nil, "", false},
		{"int", 42, "42", true},
		{"int64", int64(7), "7", true},
		{"float", 1.5, "1.5", true},
	}

	for _, tc := range cases {
		got, present := EffectiveAttr(tc.value)
		if got != tc.want || present != tc.present {
			t.Errorf("%s: EffectiveAttr(%v) = (%q, %v), want (%q, %v)",
				tc.name, tc.value, got, present, tc.want, tc.present)
		}
	}
}

func TestIsBooleanAttr(t *testing.T) {
	if !IsBooleanAttr("disabled") || !IsBooleanAttr("Checked") {
		t.Error("expected disabled and checked to be boolean attributes")
	}
	if IsBooleanAttr("class") {
		t.Error("class is not a boolean attribute")
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") || !IsVoidElement("input") {
		t.Error("expected br and input to be void")
	}
	if IsVoidElement("div") {
		t.Error("div is not void")
	}
}

func TestBooleanAttrHelpers(t *testing.T) {
	n := Input(Type("checkbox"), Checked(true), Disabled(false))

	var checked, disabled *Prop
	for i := range n.Props {
		switch n.Props[i].Name {
		case "checked":
			checked = &n.Props[i]
		case "disabled":
			disabled = &n.Props[i]
		}
	}

	if checked == nil {
		t.Fatal("expected checked prop")
	}
	if _, present := EffectiveAttr(checked.Value); !present {
		t.Error("checked(true) must be present")
	}
	if disabled == nil {
		t.Fatal("expected disabled prop to be carried, resolution happens at apply time")
	}
	if _, present := EffectiveAttr(disabled.Value); present {
		t.Error("disabled(false) must resolve to absent")
	}
}
