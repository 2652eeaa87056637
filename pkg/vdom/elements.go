package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Document structure

func Main(args ...any) *VNode    { return El("main", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
func Article(args ...any) *VNode { return El("article", args...) }
func Aside(args ...any) *VNode   { return El("aside", args...) }
func Header(args ...any) *VNode  { return El("header", args...) }
func Footer(args ...any) *VNode  { return El("footer", args...) }
func Nav(args ...any) *VNode     { return El("nav", args...) }
func Div(args ...any) *VNode     { return El("div", args...) }

// Text content

func H1(args ...any) *VNode   { return El("h1", args...) }
func H2(args ...any) *VNode   { return El("h2", args...) }
func H3(args ...any) *VNode   { return El("h3", args...) }
func H4(args ...any) *VNode   { return El("h4", args...) }
func P(args ...any) *VNode    { return El("p", args...) }
func Pre(args ...any) *VNode  { return El("pre", args...) }
func Code(args ...any) *VNode { return El("code", args...) }
func Span(args ...any) *VNode { return El("span", args...) }
func Em(args ...any) *VNode   { return El("em", args...) }
func Strong(args ...any) *VNode { return El("strong", args...) }
func Br(args ...any) *VNode   { return El("br", args...) }
func Hr(args ...any) *VNode   { return El("hr", args...) }

// Lists

func Ul(args ...any) *VNode { return El("ul", args...) }
func Ol(args ...any) *VNode { return El("ol", args...) }
func Li(args ...any) *VNode { return El("li", args...) }

// Tables

func Table(args ...any) *VNode { return El("table", args...) }
func Thead(args ...any) *VNode { return El("thead", args...) }
func Tbody(args ...any) *VNode { return El("tbody", args...) }
func Tr(args ...any) *VNode    { return El("tr", args...) }
func Th(args ...any) *VNode    { return El("th", args...) }
func Td(args ...any) *VNode    { return El("td", args...) }

// Forms

func Form(args ...any) *VNode     { return El("form", args...) }
func Input(args ...any) *VNode    { return El("input", args...) }
func Textarea(args ...any) *VNode { return El("textarea", args...) }
func Select(args ...any) *VNode   { return El("select", args...) }
func Option(args ...any) *VNode   { return El("option", args...) }
func Button(args ...any) *VNode   { return El("button", args...) }
func Label(args ...any) *VNode    { return El("label", args...) }

// Media and links

func A(args ...any) *VNode   { return El("a", args...) }
func Img(args ...any) *VNode { return El("img", args...) }
