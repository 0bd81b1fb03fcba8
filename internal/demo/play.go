package demo

import (
	"context"
	"fmt"

	"github.com/vango-dev/retain/pkg/host"
	"github.com/vango-dev/retain/pkg/host/htmlhost"
	"github.com/vango-dev/retain/pkg/vdom"
)

// Play renders d into root, then fires each scripted step at doc. after,
// if non-nil, runs once after the initial render (with index -1) and once
// after every step.
func Play(ctx context.Context, d Demo, root *vdom.Root, doc *htmlhost.Document, after func(i int, s Step) error) error {
	if err := root.Render(ctx, d.Element()); err != nil {
		return err
	}
	if after != nil {
		if err := after(-1, Step{}); err != nil {
			return err
		}
	}

	for i, s := range d.Script {
		n, ok := doc.Resolve(s.Path)
		if !ok {
			return fmt.Errorf("demo %s step %d: no node at path %s", d.Name, i, s.Path)
		}
		if err := doc.Dispatch(n, host.Event{Type: s.Event, Value: s.Value}); err != nil {
			return fmt.Errorf("demo %s step %d: %w", d.Name, i, err)
		}
		if after != nil {
			if err := after(i, s); err != nil {
				return err
			}
		}
	}
	return nil
}
