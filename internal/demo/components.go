package demo

import (
	"strconv"

	"github.com/vango-dev/retain/pkg/host"
	"github.com/vango-dev/retain/pkg/vdom"
)

// Toggle renders a button followed by <span>on</span> or <i>off</i>.
var Toggle = vdom.Define("Toggle", func(vdom.Props) vdom.Component {
	return &toggle{}
})

type toggle struct {
	vdom.Base
}

func (t *toggle) Render() *vdom.Element {
	on, _ := t.State()["on"].(bool)
	return vdom.Div(
		vdom.Button(
			vdom.AriaPressed(on),
			vdom.OnClick(func() error { return t.SetState(vdom.State{"on": !on}) }),
			"toggle",
		),
		vdom.IfElse(on, vdom.Span("on"), vdom.I("off")),
	)
}

// Counter renders "-", the count and "+". Props: label (string), step
// (int, default 1).
var Counter = vdom.Define("Counter", func(vdom.Props) vdom.Component {
	c := &counter{}
	c.InitState(vdom.State{"count": 0})
	return c
})

type counter struct {
	vdom.Base
}

func (c *counter) Render() *vdom.Element {
	n, _ := c.State()["count"].(int)
	step, ok := c.Props()["step"].(int)
	if !ok {
		step = 1
	}
	add := func(d int) func() error {
		return func() error { return c.SetState(vdom.State{"count": n + d}) }
	}
	return vdom.Div(vdom.Class("counter"),
		vdom.Button(vdom.OnClick(add(-step)), "-"),
		vdom.Span(vdom.Textf("%v: %d", c.Props()["label"], n)),
		vdom.Button(vdom.OnClick(add(step)), "+"),
	)
}

type todoItem struct {
	id   int
	text string
}

// Todo is a list with an input, an add button and per-item remove
// buttons. Items are keyed by id.
var Todo = vdom.Define("Todo", func(vdom.Props) vdom.Component {
	t := &todo{}
	t.InitState(vdom.State{"items": []todoItem(nil), "draft": "", "next": 1})
	return t
})

type todo struct {
	vdom.Base
}

func (t *todo) Render() *vdom.Element {
	st := t.State()
	items, _ := st["items"].([]todoItem)
	draft, _ := st["draft"].(string)
	next, _ := st["next"].(int)

	add := func() error {
		if draft == "" {
			return nil
		}
		grown := append(append([]todoItem(nil), items...), todoItem{id: next, text: draft})
		return t.SetState(vdom.State{"items": grown, "draft": "", "next": next + 1})
	}
	remove := func(id int) func() error {
		return func() error {
			kept := make([]todoItem, 0, len(items))
			for _, it := range items {
				if it.id != id {
					kept = append(kept, it)
				}
			}
			return t.SetState(vdom.State{"items": kept})
		}
	}

	return vdom.Div(vdom.Class("todo"),
		vdom.Form(
			vdom.Input(
				vdom.TypeAttr("text"),
				vdom.Value(draft),
				vdom.OnInput(func(e host.Event) error { return t.SetState(vdom.State{"draft": e.Value}) }),
			),
			vdom.Button(vdom.OnClick(add), "add"),
		),
		vdom.Ul(vdom.Range(items, func(it todoItem, _ int) *vdom.Element {
			return vdom.Li(vdom.Key(it.id),
				vdom.Span(it.text),
				vdom.Button(vdom.OnClick(remove(it.id)), "x"),
			)
		})),
		vdom.P(strconv.Itoa(len(items))+" items"),
	)
}
