package vdom

import (
	"fmt"
	"strings"
)

// keyAttr is routed to Element.Key instead of Props.
const keyAttr = "key"

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Prop sets an arbitrary property.
func Prop(key string, value any) Attr { return attr(key, value) }

// Key sets the element's reconciliation key.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr(keyAttr, fmt.Sprintf("%v", key))
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaPressed sets the aria-pressed attribute.
func AriaPressed(pressed bool) Attr { return attr("aria-pressed", pressed) }

// Visibility attributes

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// TitleAttr sets the title attribute (named to avoid conflict with a Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Links and forms

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// TypeAttr sets the type attribute.
func TypeAttr(t string) Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(v string) Attr { return attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) Attr { return attr("placeholder", p) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Checked sets the checked attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// For sets the for attribute on labels.
func For(id string) Attr { return attr("for", id) }
