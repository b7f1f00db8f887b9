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

// El creates an element node with the given tag. Arguments can be nil, Attr,
// []Attr, *VNode, []*VNode, or string (turned into a text child).
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    make(map[string]string),
		Children: make([]*VNode, 0, len(args)),
	}

	var rest []any
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			setAttr(node, v)
		case []Attr:
			for _, attr := range v {
				setAttr(node, attr)
			}
		default:
			rest = append(rest, arg)
		}
	}
	appendChildren(node, rest)
	return node
}

func setAttr(node *VNode, attr Attr) {
	if attr.IsZero() {
		return
	}
	// "key" is reconciliation metadata, not a real attribute.
	if attr.Key == "key" {
		node.Key = attr.Value
		return
	}
	node.Attrs[attr.Key] = attr.Value
}

// Common element constructors.

func Div(args ...any) *VNode      { return El("div", args...) }
func Span(args ...any) *VNode     { return El("span", args...) }
func P(args ...any) *VNode        { return El("p", args...) }
func A(args ...any) *VNode        { return El("a", args...) }
func H1(args ...any) *VNode       { return El("h1", args...) }
func H2(args ...any) *VNode       { return El("h2", args...) }
func H3(args ...any) *VNode       { return El("h3", args...) }
func Ul(args ...any) *VNode       { return El("ul", args...) }
func Ol(args ...any) *VNode       { return El("ol", args...) }
func Li(args ...any) *VNode       { return El("li", args...) }
func Nav(args ...any) *VNode      { return El("nav", args...) }
func Main(args ...any) *VNode     { return El("main", args...) }
func Header(args ...any) *VNode   { return El("header", args...) }
func Footer(args ...any) *VNode   { return El("footer", args...) }
func Section(args ...any) *VNode  { return El("section", args...) }
func Article(args ...any) *VNode  { return El("article", args...) }
func Button(args ...any) *VNode   { return El("button", args...) }
func Form(args ...any) *VNode     { return El("form", args...) }
func Input(args ...any) *VNode    { return El("input", args...) }
func Textarea(args ...any) *VNode { return El("textarea", args...) }
func Label(args ...any) *VNode    { return El("label", args...) }
func Pre(args ...any) *VNode      { return El("pre", args...) }
func Code(args ...any) *VNode     { return El("code", args...) }
func Strong(args ...any) *VNode   { return El("strong", args...) }
func Em(args ...any) *VNode       { return El("em", args...) }
func Small(args ...any) *VNode    { return El("small", args...) }
func Br() *VNode                  { return El("br") }
func Hr() *VNode                  { return El("hr") }

// Common attribute constructors.

func Class(v string) Attr       { return Attr{Key: "class", Value: v} }
func ID(v string) Attr          { return Attr{Key: "id", Value: v} }
func Href(v string) Attr        { return Attr{Key: "href", Value: v} }
func Title(v string) Attr       { return Attr{Key: "title", Value: v} }
func Type(v string) Attr        { return Attr{Key: "type", Value: v} }
func Name(v string) Attr        { return Attr{Key: "name", Value: v} }
func Value(v string) Attr       { return Attr{Key: "value", Value: v} }
func Placeholder(v string) Attr { return Attr{Key: "placeholder", Value: v} }
func Key(v string) Attr         { return Attr{Key: "key", Value: v} }

// Data creates a data-* attribute.
func Data(suffix, v string) Attr { return Attr{Key: "data-" + suffix, Value: v} }
