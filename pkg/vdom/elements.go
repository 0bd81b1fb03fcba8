package vdom

import (
	"fmt"
	"reflect"
)

// H creates a host element. Props are copied and a "key" prop becomes
// the element's Key. Children may be *Element, []*Element, strings,
// numbers or fmt.Stringers; nil, false, "", nil elements and nil pointers
// are dropped, and every non-element child becomes a text element.
func H(tag string, props Props, children ...any) *Element {
	return newElement(HostType(tag), props, children)
}

// C creates a component element. The children are exposed to the
// component through Base.Children.
func C(f *Factory, props Props, children ...any) *Element {
	return newElement(ComponentType(f), props, children)
}

func newElement(t Type, props Props, children []any) *Element {
	el := &Element{
		Type:     t,
		Props:    props.clone(),
		Children: normalizeChildren(children),
	}
	if k, ok := el.Props[keyAttr]; ok {
		delete(el.Props, keyAttr)
		if k != nil {
			el.Key = fmt.Sprint(k)
		}
	}
	return el
}

// normalizeChildren filters falsy children and wraps primitives as text.
func normalizeChildren(children []any) []*Element {
	out := make([]*Element, 0, len(children))
	for _, child := range children {
		out = appendChild(out, child)
	}
	return out
}

func appendChild(out []*Element, child any) []*Element {
	switch v := child.(type) {
	case nil:
		return out
	case *Element:
		if v != nil {
			out = append(out, v)
		}
	case []*Element:
		for _, c := range v {
			if c != nil {
				out = append(out, c)
			}
		}
	case []any:
		for _, c := range v {
			out = appendChild(out, c)
		}
	case bool:
		// false drops the child; true has no text form either.
	case string:
		if v != "" {
			out = append(out, Text(v))
		}
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return out
		}
		if str, ok := v.(fmt.Stringer); ok {
			return append(out, Text(str.String()))
		}
		out = append(out, Text(fmt.Sprint(v)))
	}
	return out
}

// Tag creates a host element from variadic arguments.
// Arguments can be: nil, Attr, []Attr, EventHandler, *Element, []*Element,
// string or any other value rendered as text.
func Tag(tag string, args ...any) *Element {
	return createElement(tag, args)
}

// createElement creates a new Element with the given tag and arguments.
func createElement(tag string, args []any) *Element {
	el := &Element{
		Type:     HostType(tag),
		Props:    make(Props),
		Children: make([]*Element, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue
		case Attr:
			el.applyAttr(v)
		case []Attr:
			for _, a := range v {
				el.applyAttr(a)
			}
		case EventHandler:
			if v.Event != "" && v.Handler != nil {
				el.Props[v.Event] = v.Handler
			}
		default:
			el.Children = appendChild(el.Children, v)
		}
	}

	return el
}

func (e *Element) applyAttr(a Attr) {
	if a.IsEmpty() {
		return
	}
	if a.Key == keyAttr {
		e.Key = fmt.Sprint(a.Value)
		return
	}
	e.Props[a.Key] = a.Value
}

// Document structure

func Header(args ...any) *Element  { return createElement("header", args) }
func Footer(args ...any) *Element  { return createElement("footer", args) }
func Main(args ...any) *Element    { return createElement("main", args) }
func Nav(args ...any) *Element     { return createElement("nav", args) }
func Section(args ...any) *Element { return createElement("section", args) }
func Article(args ...any) *Element { return createElement("article", args) }
func H1(args ...any) *Element      { return createElement("h1", args) }
func H2(args ...any) *Element      { return createElement("h2", args) }
func H3(args ...any) *Element      { return createElement("h3", args) }

// Content

func Div(args ...any) *Element  { return createElement("div", args) }
func P(args ...any) *Element    { return createElement("p", args) }
func Span(args ...any) *Element { return createElement("span", args) }
func Pre(args ...any) *Element  { return createElement("pre", args) }
func Ul(args ...any) *Element   { return createElement("ul", args) }
func Ol(args ...any) *Element   { return createElement("ol", args) }
func Li(args ...any) *Element   { return createElement("li", args) }
func Hr(args ...any) *Element   { return createElement("hr", args) }

// Inline

func A(args ...any) *Element      { return createElement("a", args) }
func Strong(args ...any) *Element { return createElement("strong", args) }
func Em(args ...any) *Element     { return createElement("em", args) }
func B(args ...any) *Element      { return createElement("b", args) }
func I(args ...any) *Element      { return createElement("i", args) }
func Code(args ...any) *Element   { return createElement("code", args) }
func Br(args ...any) *Element     { return createElement("br", args) }

// Forms

func Form(args ...any) *Element     { return createElement("form", args) }
func Input(args ...any) *Element    { return createElement("input", args) }
func Textarea(args ...any) *Element { return createElement("textarea", args) }
func Button(args ...any) *Element   { return createElement("button", args) }
func Label(args ...any) *Element    { return createElement("label", args) }
