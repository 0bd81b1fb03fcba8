package vdom

import (
	"fmt"
	"strconv"
)

const (
	// TextTag is the host tag of text elements.
	TextTag = "TEXT ELEMENT"

	// NodeValue is the prop that carries a text element's content.
	NodeValue = "nodeValue"

	// ChildrenKey is never applied to a host node.
	ChildrenKey = "children"
)

// Kind discriminates the Type union.
type Kind uint8

const (
	KindInvalid   Kind = iota // Zero Type
	KindHost                  // <div>, <button>, text
	KindComponent             // User-defined Factory
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindHost:
		return "Host"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Type is either a host tag or a component Factory. Types are comparable;
// two Types are equal when they name the same tag or the same Factory.
type Type struct {
	tag     string
	factory *Factory
}

// HostType returns the Type of a host element with the given tag.
func HostType(tag string) Type {
	return Type{tag: tag}
}

// ComponentType returns the Type of elements rendered by f.
func ComponentType(f *Factory) Type {
	return Type{factory: f}
}

// Kind returns which variant t holds.
func (t Type) Kind() Kind {
	switch {
	case t.factory != nil:
		return KindComponent
	case t.tag != "":
		return KindHost
	default:
		return KindInvalid
	}
}

// Tag returns the host tag, or "" for component types.
func (t Type) Tag() string { return t.tag }

// Factory returns the component factory, or nil for host types.
func (t Type) Factory() *Factory { return t.factory }

// IsText reports whether t is the text sentinel type.
func (t Type) IsText() bool { return t.factory == nil && t.tag == TextTag }

// String returns "<tag>", "#text", the factory name, or "<invalid>".
func (t Type) String() string {
	switch t.Kind() {
	case KindHost:
		if t.IsText() {
			return "#text"
		}
		return "<" + t.tag + ">"
	case KindComponent:
		return t.factory.Name()
	default:
		return "<invalid>"
	}
}

// Props holds attributes and event handlers.
type Props map[string]any

// clone returns a shallow copy of p. The copy is never nil.
func (p Props) clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Element is an immutable description of a node. Construct Elements with
// H, C, Text or the tag helpers; do not modify them after handing them to
// a Reconciler.
type Element struct {
	Type     Type
	Props    Props
	Children []*Element

	// Key identifies the element among its siblings. It is only consulted
	// by keyed matching.
	Key string
}

// Text creates a text element.
func Text(content string) *Element {
	return &Element{
		Type:  HostType(TextTag),
		Props: Props{NodeValue: content},
	}
}

// Textf creates a formatted text element.
func Textf(format string, args ...any) *Element {
	return Text(fmt.Sprintf(format, args...))
}

// TextValue returns the content of a text element.
func (e *Element) TextValue() string {
	if e == nil || !e.Type.IsText() {
		return ""
	}
	s, _ := e.Props[NodeValue].(string)
	return s
}

// describe labels e for error messages.
func describe(e *Element) string {
	if e == nil {
		return "<nil>"
	}
	d := e.Type.String()
	if e.Key != "" {
		d += "[key=" + strconv.Quote(e.Key) + "]"
	}
	return d
}
