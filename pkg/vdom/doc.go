// Package vdom implements a retained-mode reconciler.
//
// An Element is an immutable description of what should exist. A
// Reconciler turns Elements into live nodes on a host.Host and keeps an
// Instance tree that records, for every live node, the Element that
// produced it. Each later render compares the new Element tree against
// that Instance tree and applies the smallest set of host mutations it
// can find: insert, remove, replace a whole subtree, or update a node's
// properties and children in place.
//
// # Core Types
//
// Element is the description: a Type (a host tag or a component Factory),
// Props, and ordered Children. Instance is the bookkeeping the reconciler
// owns. Root is a render target that remembers the Instance produced by
// its previous Render.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// or with the props-and-children form:
//
//	H("div", Props{"class": "card"}, "hello", H("b", nil, "world"))
//
// # Matching
//
// Children are matched by position. A node whose type changed is rebuilt
// from scratch; a node whose type matches is updated in place and keeps
// both its Instance and its host node. Keyed matching is available only
// when a Reconciler is built with WithKeyedChildren.
//
// # Components
//
// A component embeds Base and implements Render. Base supplies Props,
// State and SetState; SetState merges the partial state and synchronously
// re-renders that component's subtree.
//
// # Concurrency
//
// Nothing in this package starts goroutines or takes locks. Callers must
// serialise Render and SetState calls on a given Root.
package vdom
