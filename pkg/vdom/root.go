package vdom

import (
	"context"

	"github.com/vango-dev/retain/internal/errors"
	"github.com/vango-dev/retain/pkg/host"
)

// Root is a render target: a host container plus the instance produced by
// the previous Render. Independent roots may coexist. A Root is not safe
// for concurrent use.
type Root struct {
	rec       *Reconciler
	container host.Node
	instance  *Instance
	rendering bool
}

// NewRoot creates a Root that renders into container on h.
func NewRoot(h host.Host, container host.Node, opts ...Option) *Root {
	return &Root{
		rec:       NewReconciler(h, opts...),
		container: container,
	}
}

// Render reconciles el against the previous render and stores the
// resulting instance. A nil el removes whatever was rendered.
//
// If the pass fails, the previous instance is kept and the host tree may
// be partially updated.
func (r *Root) Render(ctx context.Context, el *Element) error {
	if r.rendering {
		return errors.New(errors.CodeReentrantRender)
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	inst, err := r.rec.Reconcile(ctx, r.container, r.instance, el)
	if err != nil {
		return err
	}
	r.instance = inst
	return nil
}

// Unmount removes the rendered tree from the container.
func (r *Root) Unmount(ctx context.Context) error {
	return r.Render(ctx, nil)
}

// Instance returns the instance produced by the last successful Render.
func (r *Root) Instance() *Instance { return r.instance }

// Container returns the host node the root renders into.
func (r *Root) Container() host.Node { return r.container }

// Reconciler returns the root's reconciler.
func (r *Root) Reconciler() *Reconciler { return r.rec }
