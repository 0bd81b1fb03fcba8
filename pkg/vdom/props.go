package vdom

import (
	"sort"
	"strings"

	"github.com/vango-dev/retain/pkg/host"
)

// isEventHandler returns true if the key is an event handler (starts with "on").
// Case-insensitive to catch onclick, ONCLICK, onClick, OnLoad, etc.
func isEventHandler(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// eventName derives the host event name from a handler key: onClick -> click.
func eventName(key string) string {
	return strings.ToLower(key[2:])
}

// applyProperties moves node from prev to next. Every old key is cleared
// or unregistered before any new key is set or registered, so a key in
// both bags is cleared and then set again. Keys are visited in sorted
// order.
func (r *Reconciler) applyProperties(node host.Node, el *Element, prev, next Props) error {
	for _, key := range sortedKeys(prev) {
		if key == ChildrenKey {
			continue
		}
		if isEventHandler(key) {
			if err := r.host.RemoveEventListener(node, eventName(key), prev[key]); err != nil {
				return r.hostErr(err, el)
			}
			r.stats.ListenersRemoved++
			continue
		}
		if err := r.host.SetProperty(node, key, nil); err != nil {
			return r.hostErr(err, el)
		}
		r.stats.PropsCleared++
	}

	for _, key := range sortedKeys(next) {
		if key == ChildrenKey {
			continue
		}
		if isEventHandler(key) {
			if err := r.host.AddEventListener(node, eventName(key), next[key]); err != nil {
				return r.hostErr(err, el)
			}
			r.stats.ListenersAdded++
			continue
		}
		if err := r.host.SetProperty(node, key, next[key]); err != nil {
			return r.hostErr(err, el)
		}
		r.stats.PropsSet++
	}
	return nil
}

func sortedKeys(p Props) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
