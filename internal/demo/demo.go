// Package demo holds the component trees mounted by the retain CLI.
package demo

import (
	"sort"

	"github.com/vango-dev/retain/pkg/vdom"
)

// Step is one scripted event: fire Event at the node at Path.
type Step struct {
	Path  string
	Event string
	Value string
}

// Demo is a named root element with a script that exercises it.
type Demo struct {
	Name        string
	Description string
	Element     func() *vdom.Element
	Script      []Step
}

var demos = map[string]Demo{
	"toggle": {
		Name:        "toggle",
		Description: "a button swapping <span> and <i> on click",
		Element:     func() *vdom.Element { return vdom.C(Toggle, nil) },
		Script: []Step{
			{Path: "0/0", Event: "click"},
			{Path: "0/0", Event: "click"},
		},
	},
	"counter": {
		Name:        "counter",
		Description: "two independent counters",
		Element: func() *vdom.Element {
			return vdom.Div(
				vdom.C(Counter, vdom.Props{"label": "apples"}),
				vdom.C(Counter, vdom.Props{"label": "pears", "step": 2}),
			)
		},
		Script: []Step{
			{Path: "0/0/2", Event: "click"},
			{Path: "0/1/2", Event: "click"},
			{Path: "0/0/0", Event: "click"},
		},
	},
	"todo": {
		Name:        "todo",
		Description: "a keyed todo list",
		Element:     func() *vdom.Element { return vdom.C(Todo, nil) },
		Script: []Step{
			{Path: "0/0/0", Event: "input", Value: "write tests"},
			{Path: "0/0/1", Event: "click"},
			{Path: "0/0/0", Event: "input", Value: "ship"},
			{Path: "0/0/1", Event: "click"},
			{Path: "0/1/0/1", Event: "click"},
		},
	},
}

// Lookup returns the demo registered under name.
func Lookup(name string) (Demo, bool) {
	d, ok := demos[name]
	return d, ok
}

// Names returns the registered demo names, sorted.
func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
