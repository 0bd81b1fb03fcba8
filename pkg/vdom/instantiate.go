package vdom

import (
	"github.com/vango-dev/retain/internal/errors"
	"github.com/vango-dev/retain/pkg/host"
)

// instantiate builds a new instance subtree and its detached host nodes.
func (r *Reconciler) instantiate(el *Element) (*Instance, error) {
	switch el.Type.Kind() {
	case KindHost:
		return r.instantiateHost(el)
	case KindComponent:
		return r.instantiateComponent(el)
	default:
		return nil, errors.New(errors.CodeUnknownType).
			WithElement(describe(el)).
			WithSuggestion("Build elements with vdom.H, vdom.C or the tag helpers")
	}
}

func (r *Reconciler) instantiateHost(el *Element) (*Instance, error) {
	var (
		node host.Node
		err  error
	)
	if el.Type.IsText() {
		node, err = r.host.CreateText()
	} else {
		node, err = r.host.CreateElement(el.Type.Tag())
	}
	if err != nil {
		return nil, r.hostErr(err, el)
	}
	r.stats.Created++

	if err := r.applyProperties(node, el, nil, el.Props); err != nil {
		return nil, err
	}

	children := make([]*Instance, 0, len(el.Children))
	for _, childEl := range el.Children {
		child, err := r.instantiate(childEl)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	for _, child := range children {
		if err := r.host.AppendChild(node, child.Node); err != nil {
			return nil, r.hostErr(err, child.Element)
		}
	}

	return &Instance{Node: node, Element: el, Children: children}, nil
}

func (r *Reconciler) instantiateComponent(el *Element) (*Instance, error) {
	f := el.Type.Factory()
	var comp Component
	if f.construct != nil {
		comp = f.construct(el.Props)
	}
	rt, ok := comp.(runtime)
	if !ok {
		return nil, errors.New(errors.CodeNoRuntime).WithElement(describe(el))
	}

	inst := &Instance{Element: el, Component: comp}
	rt.base().mount(r, inst, el)

	childEl, err := render(rt, el)
	if err != nil {
		return nil, err
	}
	child, err := r.instantiate(childEl)
	if err != nil {
		return nil, err
	}
	inst.setChild(child)
	return inst, nil
}
