package vdom

import (
	"context"
	"log/slog"
	"time"

	"github.com/vango-dev/retain/internal/errors"
	"github.com/vango-dev/retain/pkg/host"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTracerName is the tracer used when no tracer option is given.
const DefaultTracerName = "retain"

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTracer sets the tracer used for pass spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Reconciler) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}

// WithTracerName resolves the pass tracer from the global provider.
func WithTracerName(name string) Option {
	return func(r *Reconciler) {
		r.tracer = otel.Tracer(name)
	}
}

// WithObserver adds an observer notified after every pass.
func WithObserver(o Observer) Option {
	return func(r *Reconciler) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// WithKeyedChildren enables keyed child matching. Without it, Element.Key
// is ignored and children are matched by position only.
func WithKeyedChildren() Option {
	return func(r *Reconciler) {
		r.keyed = true
	}
}

// Reconciler applies Element trees to a host.
type Reconciler struct {
	host      host.Host
	logger    *slog.Logger
	tracer    trace.Tracer
	observers []Observer
	keyed     bool

	// stats of the pass in progress.
	stats *Stats
}

// NewReconciler creates a Reconciler driving h.
func NewReconciler(h host.Host, opts ...Option) *Reconciler {
	r := &Reconciler{
		host:   h,
		logger: slog.Default(),
		tracer: otel.Tracer(DefaultTracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Host returns the host the reconciler drives.
func (r *Reconciler) Host() host.Host { return r.host }

// Reconcile makes the host children of parent that prev controls match
// next, and returns the resulting instance:
//
//   - prev == nil: next is instantiated and appended to parent.
//   - next == nil: prev's node is removed and nil is returned.
//   - types differ: next is instantiated and replaces prev's node.
//   - same host tag: prev is updated in place and returned.
//   - same component: the component re-renders and prev is returned.
//
// The first error aborts the pass; host changes made before it remain.
func (r *Reconciler) Reconcile(ctx context.Context, parent host.Node, prev *Instance, next *Element) (*Instance, error) {
	var out *Instance
	err := r.run(ctx, TriggerRender, func() error {
		var err error
		out, err = r.reconcile(parent, prev, next)
		return err
	})
	return out, err
}

// update re-renders a component instance in place after a state change.
func (r *Reconciler) update(ctx context.Context, inst *Instance) error {
	return r.run(ctx, TriggerSetState, func() error {
		parent := r.host.Parent(inst.Node)
		if parent == nil {
			return errors.New(errors.CodeUnmounted).WithElement(describe(inst.Element))
		}
		if _, err := r.reconcile(parent, inst, inst.Element); err != nil {
			return err
		}
		// Components that rendered this one mirror its node.
		for o := inst.owner; o != nil; o = o.owner {
			o.Node = o.Child.Node
		}
		return nil
	})
}

// run wraps one pass with stats, tracing, logging and observers. Passes
// may nest when a component calls SetState while rendering.
func (r *Reconciler) run(ctx context.Context, trigger Trigger, fn func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := r.tracer.Start(ctx, "retain."+string(trigger))
	defer span.End()

	outer := r.stats
	r.stats = &Stats{}
	start := time.Now()

	err := fn()

	pass := Pass{
		Trigger:  trigger,
		Stats:    *r.stats,
		Duration: time.Since(start),
		Err:      err,
	}
	r.stats = outer

	span.SetAttributes(
		attribute.Int("retain.inserted", pass.Stats.Inserted),
		attribute.Int("retain.removed", pass.Stats.Removed),
		attribute.Int("retain.replaced", pass.Stats.Replaced),
		attribute.Int("retain.updated", pass.Stats.Updated),
		attribute.Int("retain.moved", pass.Stats.Moved),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Debug("reconcile failed", "trigger", trigger, "error", err)
	} else {
		span.SetStatus(codes.Ok, "")
		r.logger.Debug("reconcile pass",
			"trigger", trigger,
			"inserted", pass.Stats.Inserted,
			"removed", pass.Stats.Removed,
			"replaced", pass.Stats.Replaced,
			"updated", pass.Stats.Updated,
			"duration", pass.Duration,
		)
	}

	for _, o := range r.observers {
		o.ObservePass(pass)
	}
	return err
}

// reconcile is the recursive core. It must run inside run.
func (r *Reconciler) reconcile(parent host.Node, prev *Instance, next *Element) (*Instance, error) {
	switch {
	case prev == nil && next == nil:
		return nil, nil

	case prev == nil:
		inst, err := r.instantiate(next)
		if err != nil {
			return nil, err
		}
		if err := r.host.AppendChild(parent, inst.Node); err != nil {
			return nil, r.hostErr(err, next)
		}
		r.stats.Inserted++
		return inst, nil

	case next == nil:
		if err := r.host.RemoveChild(parent, prev.Node); err != nil {
			return nil, r.hostErr(err, prev.Element)
		}
		release(prev)
		r.stats.Removed++
		return nil, nil

	case prev.Element.Type != next.Type:
		inst, err := r.instantiate(next)
		if err != nil {
			return nil, err
		}
		if err := r.host.ReplaceChild(parent, inst.Node, prev.Node); err != nil {
			return nil, r.hostErr(err, next)
		}
		release(prev)
		r.stats.Replaced++
		return inst, nil

	case next.Type.Kind() == KindHost:
		if err := r.applyProperties(prev.Node, next, prev.Element.Props, next.Props); err != nil {
			return nil, err
		}
		children, err := r.reconcileChildren(prev, next)
		if err != nil {
			return nil, err
		}
		prev.Children = children
		prev.Element = next
		r.stats.Updated++
		return prev, nil

	default:
		return r.updateComponent(parent, prev, next)
	}
}

// updateComponent re-renders a component whose type is unchanged and
// reconciles its single child under the same parent.
func (r *Reconciler) updateComponent(parent host.Node, prev *Instance, next *Element) (*Instance, error) {
	rt := prev.Component.(runtime)
	b := rt.base()
	b.props = next.Props
	b.children = next.Children

	childEl, err := render(rt, next)
	if err != nil {
		return nil, err
	}
	child, err := r.reconcile(parent, prev.Child, childEl)
	if err != nil {
		return nil, err
	}
	prev.setChild(child)
	prev.Element = next
	r.stats.Updated++
	return prev, nil
}

// hostErr wraps a host primitive failure.
func (r *Reconciler) hostErr(err error, el *Element) error {
	return errors.New(errors.CodeHost).WithElement(describe(el)).Wrap(err)
}
