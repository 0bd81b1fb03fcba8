package vdom

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/retain/pkg/host"
	"github.com/vango-dev/retain/pkg/host/htmlhost"
)

func TestComponentToggleReplacesChild(t *testing.T) {
	root, doc := newTestRoot(t)
	mustRender(t, root, C(toggleFactory, nil))
	if got := doc.HTML(); got != "<i></i>" {
		t.Fatalf("HTML() = %q, want <i></i>", got)
	}

	inst := root.Instance()
	tg := inst.Component.(*toggle)
	doc.ResetJournal()

	if err := tg.SetState(State{"on": true}); err != nil {
		t.Fatalf("SetState(on) error: %v", err)
	}
	if got := doc.HTML(); got != "<span></span>" {
		t.Errorf("HTML() = %q, want <span></span>", got)
	}
	if err := tg.SetState(State{"on": false}); err != nil {
		t.Fatalf("SetState(off) error: %v", err)
	}
	if got := doc.HTML(); got != "<i></i>" {
		t.Errorf("HTML() = %q, want <i></i>", got)
	}

	if got := countOps(doc, host.OpReplaceChild); got != 2 {
		t.Errorf("ReplaceChild count = %d, want 2", got)
	}
	if root.Instance() != inst {
		t.Error("component instance identity changed")
	}
	if n, _ := doc.Resolve("0"); inst.Node != n {
		t.Error("component instance should mirror its child's node")
	}
	if inst.Child.Node != inst.Node {
		t.Error("Child and Node disagree")
	}
}

func TestSetStateMergesShallow(t *testing.T) {
	root, _ := newTestRoot(t)
	mustRender(t, root, C(counterFactory, Props{"label": "n"}))
	c := root.Instance().Component.(*counter)

	if err := c.SetState(State{"extra": "x"}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetState(State{"count": 5}); err != nil {
		t.Fatal(err)
	}

	want := State{"count": 5, "extra": "x"}
	if diff := cmp.Diff(want, c.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestStateDefaultsToEmpty(t *testing.T) {
	root, _ := newTestRoot(t)
	mustRender(t, root, C(toggleFactory, nil))
	st := root.Instance().Component.(*toggle).State()
	if st == nil || len(st) != 0 {
		t.Errorf("State() = %v, want empty non-nil map", st)
	}
}

func TestSetStateFromEventHandler(t *testing.T) {
	root, doc := newTestRoot(t)
	mustRender(t, root, C(counterFactory, Props{"label": "clicks"}))
	if got := doc.HTML(); got != "<button>clicks: 0</button>" {
		t.Fatalf("HTML() = %q", got)
	}
	button := root.Instance().Node

	for i := 0; i < 3; i++ {
		if err := doc.Dispatch(button, host.Event{Type: "click"}); err != nil {
			t.Fatalf("Dispatch error: %v", err)
		}
	}

	if got := doc.HTML(); got != "<button>clicks: 3</button>" {
		t.Errorf("HTML() = %q, want clicks: 3", got)
	}
	if root.Instance().Node != button {
		t.Error("button node should be updated in place")
	}
	if got := doc.Listeners(button, "click"); got != 1 {
		t.Errorf("Listeners(click) = %d, want 1", got)
	}
}

func TestComponentPropsUpdate(t *testing.T) {
	greeting := Func("Greeting", func(p Props, _ []*Element) *Element {
		return P(Textf("hello %v", p["name"]))
	})

	root, doc := newTestRoot(t)
	mustRender(t, root, C(greeting, Props{"name": "ada"}))
	comp := root.Instance().Component

	mustRender(t, root, C(greeting, Props{"name": "bob"}))

	if root.Instance().Component != comp {
		t.Error("public component identity changed")
	}
	if got := doc.HTML(); got != "<p>hello bob</p>" {
		t.Errorf("HTML() = %q", got)
	}
}

func TestComponentChildren(t *testing.T) {
	card := Func("Card", func(p Props, children []*Element) *Element {
		return Div(Class("card"), children)
	})

	root, doc := newTestRoot(t)
	mustRender(t, root, C(card, nil, H("b", nil, "one"), "two"))

	if got, want := doc.HTML(), `<div class="card"><b>one</b>two</div>`; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestNestedComponentMirrorsNode(t *testing.T) {
	root, doc := newTestRoot(t)
	mustRender(t, root, C(wrapperFactory, nil))

	outer := root.Instance()
	inner := outer.Child
	tg := inner.Component.(*toggle)

	if err := tg.SetState(State{"on": true}); err != nil {
		t.Fatalf("SetState error: %v", err)
	}
	if outer.Node != inner.Node {
		t.Error("outer component should mirror the inner component's node")
	}
	if n, _ := doc.Resolve("0"); outer.Node != n {
		t.Error("outer node is stale")
	}

	// A later top-level render still reconciles against the live node.
	mustRender(t, root, C(wrapperFactory, nil))
	if got := doc.HTML(); got != "<span></span>" {
		t.Errorf("HTML() = %q, want <span></span>", got)
	}
}

func TestSetStateOnUnmountedComponent(t *testing.T) {
	t.Run("never mounted", func(t *testing.T) {
		tg := &toggle{}
		if err := tg.SetState(State{"on": true}); !IsUnmounted(err) {
			t.Errorf("SetState error = %v, want unmounted", err)
		}
		if tg.Mounted() {
			t.Error("Mounted() = true")
		}
	})

	t.Run("removed", func(t *testing.T) {
		root, _ := newTestRoot(t)
		mustRender(t, root, Div(C(toggleFactory, nil)))
		tg := root.Instance().Children[0].Component.(*toggle)
		if !tg.Mounted() {
			t.Fatal("Mounted() = false after render")
		}

		mustRender(t, root, Div())
		if err := tg.SetState(State{"on": true}); !IsUnmounted(err) {
			t.Errorf("SetState error = %v, want unmounted", err)
		}
	})

	t.Run("replaced", func(t *testing.T) {
		root, _ := newTestRoot(t)
		mustRender(t, root, C(toggleFactory, nil))
		tg := root.Instance().Component.(*toggle)

		mustRender(t, root, Div())
		if tg.Mounted() {
			t.Error("replaced component should be unmounted")
		}
	})
}

func TestComponentRenderErrors(t *testing.T) {
	t.Run("nil render", func(t *testing.T) {
		empty := Func("Empty", func(Props, []*Element) *Element { return nil })
		root, _ := newTestRoot(t)
		if err := root.Render(context.Background(), C(empty, nil)); !IsNilRender(err) {
			t.Errorf("error = %v, want nil render", err)
		}
	})

	t.Run("missing runtime", func(t *testing.T) {
		bare := Define("Bare", func(Props) Component { return bareComponent{} })
		root, _ := newTestRoot(t)
		if err := root.Render(context.Background(), C(bare, nil)); !IsMissingRuntime(err) {
			t.Errorf("error = %v, want missing runtime", err)
		}
	})

	t.Run("nil factory output", func(t *testing.T) {
		none := Define("None", func(Props) Component { return nil })
		root, _ := newTestRoot(t)
		if err := root.Render(context.Background(), C(none, nil)); !IsMissingRuntime(err) {
			t.Errorf("error = %v, want missing runtime", err)
		}
	})
}

type bareComponent struct{}

func (bareComponent) Render() *Element { return Div() }

// reentrant calls Render on its own root while rendering.
type reentrant struct {
	Base
	root *Root
	err  error
}

func (r *reentrant) Render() *Element {
	r.err = r.root.Render(context.Background(), Div())
	return Div()
}

func TestReentrantRenderIsRejected(t *testing.T) {
	root, doc := newTestRoot(t)
	comp := &reentrant{root: root}
	f := Define("Reentrant", func(Props) Component { return comp })

	mustRender(t, root, C(f, nil))
	if !IsReentrant(comp.err) {
		t.Errorf("nested Render error = %v, want reentrant", comp.err)
	}
	if got := doc.HTML(); got != "<div></div>" {
		t.Errorf("HTML() = %q", got)
	}
}

// eager marks itself done from its first Render.
type eager struct {
	Base
	renders int
}

func (e *eager) Render() *Element {
	e.renders++
	done, _ := e.State()["done"].(bool)
	if !done {
		if err := e.SetState(State{"done": true}); err != nil {
			return P(Textf("error: %v", err))
		}
	}
	return P(Textf("done: %v", done))
}

func TestSetStateDuringMountRender(t *testing.T) {
	var comp *eager
	factory := Define("Eager", func(Props) Component {
		comp = &eager{}
		return comp
	})

	root, doc := newTestRoot(t)
	mustRender(t, root, C(factory, nil))

	if got, want := doc.HTML(), "<p>done: true</p>"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
	if comp.renders != 2 {
		t.Errorf("renders = %d, want 2", comp.renders)
	}
	if got := countOps(doc, host.OpCreateElement); got != 1 {
		t.Errorf("CreateElement count = %d, want 1", got)
	}
}

// syncer copies its "n" prop into state from Render.
type syncer struct {
	Base
	renders int
}

func (s *syncer) Render() *Element {
	s.renders++
	n := s.Props()["n"]
	if s.State()["seen"] != n {
		if err := s.SetState(State{"seen": n}); err != nil {
			return P(Textf("error: %v", err))
		}
	}
	return P(Textf("seen: %v", s.State()["seen"]))
}

func TestSetStateDuringUpdateRender(t *testing.T) {
	var comp *syncer
	factory := Define("Syncer", func(Props) Component {
		comp = &syncer{}
		return comp
	})

	var passes []Trigger
	root, doc := newTestRoot(t, WithObserver(ObserverFunc(func(p Pass) {
		passes = append(passes, p.Trigger)
	})))
	mustRender(t, root, C(factory, nil))
	if got := doc.HTML(); got != "<p>seen: &lt;nil&gt;</p>" {
		t.Fatalf("HTML() = %q", got)
	}
	passes, comp.renders = nil, 0

	mustRender(t, root, C(factory, Props{"n": 1}))
	if got, want := doc.HTML(), "<p>seen: 1</p>"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
	if comp.renders != 2 {
		t.Errorf("renders = %d, want 2", comp.renders)
	}
	if diff := cmp.Diff([]Trigger{TriggerRender}, passes); diff != "" {
		t.Errorf("passes mismatch (-want +got):\n%s", diff)
	}
}

// restless sets state on every Render.
type restless struct {
	Base
}

func (r *restless) Render() *Element {
	n, _ := r.State()["n"].(int)
	_ = r.SetState(State{"n": n + 1})
	return Div()
}

func TestSetStateOnEveryRenderIsBounded(t *testing.T) {
	factory := Define("Restless", func(Props) Component { return &restless{} })

	root, doc := newTestRoot(t)
	err := root.Render(context.Background(), C(factory, nil))
	if !IsRenderLoop(err) {
		t.Fatalf("Render() error = %v, want render loop", err)
	}
	if doc.HTML() != "" {
		t.Errorf("HTML() = %q, want empty", doc.HTML())
	}
}

func TestRepeatedToggleKeepsDocumentBounded(t *testing.T) {
	root, doc := newTestRoot(t)
	mustRender(t, root, Div(C(toggleFactory, nil)))
	tg := root.Instance().Children[0].Component.(*toggle)
	size := doc.Size()

	for i := 0; i < 3*htmlhost.DefaultJournalLimit; i++ {
		if err := tg.SetState(State{"on": i%2 == 0}); err != nil {
			t.Fatalf("SetState #%d error: %v", i, err)
		}
	}

	if got := doc.Size(); got != size {
		t.Errorf("Size() = %d after toggling, want %d", got, size)
	}
	if got := len(doc.Mutations()); got > htmlhost.DefaultJournalLimit {
		t.Errorf("len(Mutations()) = %d, want at most %d", got, htmlhost.DefaultJournalLimit)
	}
}
