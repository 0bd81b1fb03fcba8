package vdom

import "github.com/vango-dev/retain/pkg/host"

// Instance records what is rendered for one Element. Instances are
// created and mutated only by a Reconciler.
type Instance struct {
	// Node is the host node this instance controls. For a component it is
	// the node of its rendered child.
	Node host.Node

	// Element is the element that last updated this instance.
	Element *Element

	// Children are the child instances of a host instance, aligned with
	// Element.Children.
	Children []*Instance

	// Child is the single rendered child of a component instance.
	Child *Instance

	// Component is the public component of a component instance.
	Component Component

	// owner is the component instance whose Child this is.
	owner *Instance
}

// IsComponent reports whether the instance was produced by a component.
func (i *Instance) IsComponent() bool {
	return i != nil && i.Component != nil
}

// Walk visits i and every instance beneath it, depth first. Returning
// false from fn skips that instance's subtree.
func (i *Instance) Walk(fn func(*Instance) bool) {
	if i == nil || !fn(i) {
		return
	}
	if i.Child != nil {
		i.Child.Walk(fn)
	}
	for _, c := range i.Children {
		c.Walk(fn)
	}
}

// setChild links child as the rendered output of component instance i and
// mirrors its node.
func (i *Instance) setChild(child *Instance) {
	i.Child = child
	child.owner = i
	i.Node = child.Node
}

// release unmounts every component in the subtree.
func release(inst *Instance) {
	inst.Walk(func(i *Instance) bool {
		if rt, ok := i.Component.(runtime); ok {
			rt.base().unmount()
		}
		return true
	})
}
