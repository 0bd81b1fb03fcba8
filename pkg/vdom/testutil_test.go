package vdom

import (
	"context"
	"testing"

	"github.com/vango-dev/retain/pkg/host"
	"github.com/vango-dev/retain/pkg/host/htmlhost"
)

// newTestRoot returns a root rendering into a fresh html document.
func newTestRoot(t *testing.T, opts ...Option) (*Root, *htmlhost.Document) {
	t.Helper()
	doc := htmlhost.New()
	return NewRoot(doc, doc.Container(), opts...), doc
}

// mustRender renders el and fails the test on error.
func mustRender(t *testing.T, root *Root, el *Element) {
	t.Helper()
	if err := root.Render(context.Background(), el); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
}

// countOps counts journal entries with the given op.
func countOps(doc *htmlhost.Document, op host.Op) int {
	n := 0
	for _, m := range doc.Mutations() {
		if m.Op == op {
			n++
		}
	}
	return n
}

// structuralOps returns the journal entries that change tree shape or
// create nodes.
func structuralOps(doc *htmlhost.Document) []host.Mutation {
	var out []host.Mutation
	for _, m := range doc.Mutations() {
		if m.Op.IsStructural() || m.Op == host.OpCreateElement || m.Op == host.OpCreateText {
			out = append(out, m)
		}
	}
	return out
}

// toggle renders <span> when state "on" is true and <i> otherwise.
type toggle struct {
	Base
}

func (t *toggle) Render() *Element {
	on, _ := t.State()["on"].(bool)
	return IfElse(on, Span(), I())
}

var toggleFactory = Define("Toggle", func(Props) Component { return &toggle{} })

// counter renders a button that increments its own count.
type counter struct {
	Base
}

func (c *counter) Render() *Element {
	n, _ := c.State()["count"].(int)
	return Button(
		OnClick(func() error { return c.SetState(State{"count": n + 1}) }),
		Textf("%s: %d", c.Props()["label"], n),
	)
}

var counterFactory = Define("Counter", func(Props) Component {
	c := &counter{}
	c.InitState(State{"count": 0})
	return c
})

// wrapper renders a single nested Toggle.
type wrapper struct {
	Base
}

func (w *wrapper) Render() *Element { return C(toggleFactory, nil) }

var wrapperFactory = Define("Wrapper", func(Props) Component { return &wrapper{} })
