package vdom

import (
	"strings"

	"github.com/weft-ui/weft/pkg/dom"
)

// Identity attributes

// ID sets the id attribute.
func ID(id string) Prop { return Attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Prop { return Attr("class", strings.Join(classes, " ")) }

// Common attributes

// Type sets the type attribute.
func Type(t string) Prop { return Attr("type", t) }

// Value sets the value attribute.
func Value(v string) Prop { return Attr("value", v) }

// Name sets the name attribute.
func Name(n string) Prop { return Attr("name", n) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) Prop { return Attr("placeholder", p) }

// Href sets the href attribute.
func Href(href string) Prop { return Attr("href", href) }

// Src sets the src attribute.
func Src(src string) Prop { return Attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) Prop { return Attr("alt", alt) }

// Title sets the title attribute.
func Title(title string) Prop { return Attr("title", title) }

// For sets the for attribute.
func For(id string) Prop { return Attr("for", id) }

// Boolean attributes

// Disabled sets the disabled attribute when true.
func Disabled(disabled bool) Prop { return Attr("disabled", disabled) }

// Checked sets the checked attribute when true.
func Checked(checked bool) Prop { return Attr("checked", checked) }

// Selected sets the selected attribute when true.
func Selected(selected bool) Prop { return Attr("selected", selected) }

// Required sets the required attribute when true.
func Required(required bool) Prop { return Attr("required", required) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Prop { return Attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Prop { return Attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Prop { return Attr("aria-label", label) }

// Event listeners

// OnClick attaches a click listener.
func OnClick(handler dom.EventHandler) Prop { return On("click", handler) }

// OnInput attaches an input listener.
func OnInput(handler dom.EventHandler) Prop { return On("input", handler) }

// OnChange attaches a change listener.
func OnChange(handler dom.EventHandler) Prop { return On("change", handler) }

// OnSubmit attaches a submit listener.
func OnSubmit(handler dom.EventHandler) Prop { return On("submit", handler) }

// OnKeyDown attaches a keydown listener.
func OnKeyDown(handler dom.EventHandler) Prop { return On("keydown", handler) }

// OnFocus attaches a focus listener.
func OnFocus(handler dom.EventHandler) Prop { return On("focus", handler) }

// OnBlur attaches a blur listener.
func OnBlur(handler dom.EventHandler) Prop { return On("blur", handler) }
