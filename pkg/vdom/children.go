package vdom

import "github.com/vango-dev/retain/pkg/host"

// reconcileChildren reconciles inst's children against next.Children and
// returns the compacted child list.
func (r *Reconciler) reconcileChildren(inst *Instance, next *Element) ([]*Instance, error) {
	if r.keyed && (instancesHaveKeys(inst.Children) || elementsHaveKeys(next.Children)) {
		return r.reconcileKeyedChildren(inst, next)
	}
	return r.reconcilePositional(inst.Node, inst.Children, next.Children)
}

// reconcilePositional matches old[i] with next[i]. Missing slots on
// either side are nil; removed children leave no hole in the result.
func (r *Reconciler) reconcilePositional(parent host.Node, old []*Instance, next []*Element) ([]*Instance, error) {
	count := max(len(old), len(next))
	out := make([]*Instance, 0, len(next))

	for i := 0; i < count; i++ {
		var prev *Instance
		var el *Element
		if i < len(old) {
			prev = old[i]
		}
		if i < len(next) {
			el = next[i]
		}

		child, err := r.reconcile(parent, prev, el)
		if err != nil {
			return nil, err
		}
		if child != nil {
			out = append(out, child)
		}
	}
	return out, nil
}

// reconcileKeyedChildren matches children by Key. Unkeyed new children
// are always inserted, and old children that no new child claims are
// removed. Host nodes are then moved into the new order.
func (r *Reconciler) reconcileKeyedChildren(inst *Instance, next *Element) ([]*Instance, error) {
	parent := inst.Node
	old := inst.Children

	byKey := make(map[string]int, len(old))
	for i, child := range old {
		if key := child.Element.Key; key != "" {
			if _, dup := byKey[key]; !dup {
				byKey[key] = i
			}
		}
	}

	// order mirrors the host children of parent as they change.
	order := make([]host.Node, len(old))
	for i, child := range old {
		order[i] = child.Node
	}

	claimed := make([]bool, len(old))
	out := make([]*Instance, len(next.Children))
	for i, el := range next.Children {
		idx, ok := -1, false
		if el.Key != "" {
			idx, ok = byKey[el.Key]
		}
		if !ok || claimed[idx] {
			child, err := r.instantiate(el)
			if err != nil {
				return nil, err
			}
			out[i] = child
			continue
		}

		claimed[idx] = true
		prevNode := old[idx].Node
		child, err := r.reconcile(parent, old[idx], el)
		if err != nil {
			return nil, err
		}
		if child.Node != prevNode {
			order[indexOf(order, prevNode)] = child.Node
		}
		out[i] = child
	}

	for i, child := range old {
		if claimed[i] {
			continue
		}
		if _, err := r.reconcile(parent, child, nil); err != nil {
			return nil, err
		}
		order = removeAt(order, indexOf(order, child.Node))
	}

	for i, child := range out {
		if i < len(order) && order[i] == child.Node {
			continue
		}
		var ref host.Node
		if i < len(order) {
			ref = order[i]
		}
		if err := r.host.InsertBefore(parent, child.Node, ref); err != nil {
			return nil, r.hostErr(err, child.Element)
		}

		if at := indexOf(order, child.Node); at >= 0 {
			order = removeAt(order, at)
			r.stats.Moved++
		} else {
			r.stats.Inserted++
		}
		order = insertAt(order, i, child.Node)
	}
	return out, nil
}

func instancesHaveKeys(children []*Instance) bool {
	for _, c := range children {
		if c.Element.Key != "" {
			return true
		}
	}
	return false
}

func elementsHaveKeys(children []*Element) bool {
	for _, c := range children {
		if c.Key != "" {
			return true
		}
	}
	return false
}

func indexOf(nodes []host.Node, n host.Node) int {
	for i, x := range nodes {
		if x == n {
			return i
		}
	}
	return -1
}

func removeAt(nodes []host.Node, i int) []host.Node {
	if i < 0 {
		return nodes
	}
	return append(nodes[:i], nodes[i+1:]...)
}

func insertAt(nodes []host.Node, i int, n host.Node) []host.Node {
	nodes = append(nodes, nil)
	copy(nodes[i+1:], nodes[i:])
	nodes[i] = n
	return nodes
}
