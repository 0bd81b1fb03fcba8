package vdom

import (
	"context"

	"github.com/vango-dev/retain/internal/errors"
)

// Component is anything that can render to an Element. Concrete
// components also embed Base.
type Component interface {
	Render() *Element
}

// State is a component's state bag.
type State map[string]any

// Factory constructs components. Factories are compared by identity, so
// define each one once, usually as a package-level variable.
type Factory struct {
	name      string
	construct func(props Props) Component
}

// Define creates a Factory. The constructor receives the element's props
// and must return a value that embeds Base.
func Define(name string, construct func(props Props) Component) *Factory {
	return &Factory{name: name, construct: construct}
}

// Name returns the name given to Define.
func (f *Factory) Name() string {
	if f == nil {
		return "<nil factory>"
	}
	return f.name
}

// Func defines a stateless component from a render function.
func Func(name string, render func(props Props, children []*Element) *Element) *Factory {
	return Define(name, func(Props) Component {
		return &funcComponent{render: render}
	})
}

type funcComponent struct {
	Base
	render func(Props, []*Element) *Element
}

func (f *funcComponent) Render() *Element {
	return f.render(f.Props(), f.Children())
}

// runtime is satisfied by every type that embeds Base.
type runtime interface {
	Component
	base() *Base
}

// Base supplies props, state and SetState to a component.
type Base struct {
	props    Props
	children []*Element
	state    State

	inst *Instance
	rec  *Reconciler

	rendering bool
	dirty     bool
}

func (b *Base) base() *Base { return b }

// Props returns the props of the element that last rendered the component.
func (b *Base) Props() Props { return b.props }

// Children returns the children of the element that last rendered the
// component.
func (b *Base) Children() []*Element { return b.children }

// State returns the current state. It is never nil once mounted.
func (b *Base) State() State { return b.state }

// InitState sets the initial state. Call it from the constructor; the
// runtime only defaults state to an empty map when it is still nil.
func (b *Base) InitState(s State) { b.state = s }

// Mounted reports whether the component is part of a live tree.
func (b *Base) Mounted() bool { return b.inst != nil && b.rec != nil }

// SetState shallow-merges partial into the state and synchronously
// re-renders the component's subtree. Keys in partial overwrite existing
// keys; other keys are kept.
//
// Called from the component's own Render, SetState only merges; the
// runtime renders the component again once Render returns.
func (b *Base) SetState(partial State) error {
	merged := make(State, len(b.state)+len(partial))
	for k, v := range b.state {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	b.state = merged

	if b.rendering {
		b.dirty = true
		return nil
	}
	if !b.Mounted() {
		return errors.New(errors.CodeUnmounted)
	}
	return b.rec.update(context.Background(), b.inst)
}

// mount binds b to inst.
func (b *Base) mount(rec *Reconciler, inst *Instance, el *Element) {
	b.rec = rec
	b.inst = inst
	b.props = el.Props
	b.children = el.Children
	if b.state == nil {
		b.state = State{}
	}
}

// maxRenderPasses bounds how often one component renders in a row while
// its Render keeps calling SetState.
const maxRenderPasses = 25

// render calls Render until it stops changing the component's state.
func render(rt runtime, el *Element) (*Element, error) {
	b := rt.base()
	for i := 0; i < maxRenderPasses; i++ {
		out := b.renderOnce(rt)
		if !b.dirty {
			if out == nil {
				return nil, errors.New(errors.CodeNilRender).WithElement(describe(el))
			}
			return out, nil
		}
		b.dirty = false
	}
	return nil, errors.New(errors.CodeRenderLoop).WithElement(describe(el))
}

func (b *Base) renderOnce(rt runtime) *Element {
	b.rendering = true
	defer func() { b.rendering = false }()
	return rt.Render()
}

func (b *Base) unmount() {
	b.inst = nil
	b.rec = nil
}
