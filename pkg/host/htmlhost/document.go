package htmlhost

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/vango-dev/retain/pkg/host"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeValue is the property key that holds a text node's content.
const NodeValue = "nodeValue"

var (
	// ErrForeignNode is returned when a handle was not created by this document.
	ErrForeignNode = errors.New("htmlhost: node does not belong to this document")

	// ErrNotChild is returned when a node is not a child of the given parent.
	ErrNotChild = errors.New("htmlhost: node is not a child of parent")

	// ErrAttached is returned when appending a node that already has a parent.
	ErrAttached = errors.New("htmlhost: node is already attached")

	// ErrEmptyTag is returned by CreateElement for an empty tag name.
	ErrEmptyTag = errors.New("htmlhost: empty tag name")
)

// DefaultJournalLimit is the number of mutations a Document keeps unless
// WithJournalLimit says otherwise.
const DefaultJournalLimit = 4096

// Document is a host tree made of golang.org/x/net/html nodes.
//
// Tree operations are not safe for concurrent use. The journal and its
// subscribers are guarded separately so they can be read from other
// goroutines while the owner mutates the tree.
//
// Nodes removed or replaced by RemoveChild and ReplaceChild are released
// together with their subtree: their listeners are dropped and their
// handles become foreign to the document.
type Document struct {
	container *html.Node
	ids       map[*html.Node]string
	listeners map[*html.Node]map[string][]host.Handler
	nextID    int

	mu           sync.Mutex
	journal      []host.Mutation
	journalLimit int
	subscribers  map[chan host.Mutation]struct{}
}

var _ host.Host = (*Document)(nil)

// Option configures a Document.
type Option func(*Document)

// WithJournalLimit keeps only the most recent n mutations in the journal.
// n <= 0 keeps every mutation.
func WithJournalLimit(n int) Option {
	return func(d *Document) {
		d.journalLimit = n
	}
}

// New creates an empty document whose container is a <body> element.
func New(opts ...Option) *Document {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	d := &Document{
		container:    body,
		ids:          map[*html.Node]string{body: "root"},
		listeners:    make(map[*html.Node]map[string][]host.Handler),
		journalLimit: DefaultJournalLimit,
		subscribers:  make(map[chan host.Mutation]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Container returns the root node that renders are mounted into.
func (d *Document) Container() host.Node {
	return d.container
}

// CreateElement implements host.Host.
func (d *Document) CreateElement(tag string) (host.Node, error) {
	if tag == "" {
		return nil, ErrEmptyTag
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	id := d.register(n)
	d.record(host.Mutation{Op: host.OpCreateElement, Target: id, Value: tag})
	return n, nil
}

// CreateText implements host.Host.
func (d *Document) CreateText() (host.Node, error) {
	n := &html.Node{Type: html.TextNode}
	id := d.register(n)
	d.record(host.Mutation{Op: host.OpCreateText, Target: id})
	return n, nil
}

// AppendChild implements host.Host.
func (d *Document) AppendChild(parent, child host.Node) error {
	p, c, err := d.pair(parent, child)
	if err != nil {
		return err
	}
	if c.Parent != nil {
		return ErrAttached
	}
	p.AppendChild(c)
	d.record(host.Mutation{Op: host.OpAppendChild, Target: d.ids[c], Parent: d.ids[p]})
	return nil
}

// InsertBefore implements host.Host. An attached child is moved.
func (d *Document) InsertBefore(parent, child, ref host.Node) error {
	p, c, err := d.pair(parent, child)
	if err != nil {
		return err
	}
	var r *html.Node
	if ref != nil {
		if r, err = d.node(ref); err != nil {
			return err
		}
		if r.Parent != p {
			return ErrNotChild
		}
		if r == c {
			return nil
		}
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	p.InsertBefore(c, r)
	m := host.Mutation{Op: host.OpInsertBefore, Target: d.ids[c], Parent: d.ids[p]}
	if r != nil {
		m.Key = d.ids[r]
	}
	d.record(m)
	return nil
}

// ReplaceChild implements host.Host.
func (d *Document) ReplaceChild(parent, newChild, oldChild host.Node) error {
	p, nc, err := d.pair(parent, newChild)
	if err != nil {
		return err
	}
	oc, err := d.node(oldChild)
	if err != nil {
		return err
	}
	if oc.Parent != p {
		return ErrNotChild
	}
	if nc.Parent != nil {
		return ErrAttached
	}
	p.InsertBefore(nc, oc)
	p.RemoveChild(oc)
	d.record(host.Mutation{
		Op:     host.OpReplaceChild,
		Target: d.ids[oc],
		Parent: d.ids[p],
		Value:  d.ids[nc],
	})
	d.release(oc)
	return nil
}

// RemoveChild implements host.Host.
func (d *Document) RemoveChild(parent, child host.Node) error {
	p, c, err := d.pair(parent, child)
	if err != nil {
		return err
	}
	if c.Parent != p {
		return ErrNotChild
	}
	p.RemoveChild(c)
	d.record(host.Mutation{Op: host.OpRemoveChild, Target: d.ids[c], Parent: d.ids[p]})
	d.release(c)
	return nil
}

// Parent implements host.Host.
func (d *Document) Parent(n host.Node) host.Node {
	hn, err := d.node(n)
	if err != nil || hn.Parent == nil {
		return nil
	}
	return hn.Parent
}

// SetProperty implements host.Host.
//
// On text nodes only NodeValue has a visible effect. On elements the value
// becomes an attribute; nil or false removes it.
func (d *Document) SetProperty(n host.Node, key string, value any) error {
	hn, err := d.node(n)
	if err != nil {
		return err
	}

	op := host.OpSetProperty
	if value == nil {
		op = host.OpClearProperty
	}
	d.record(host.Mutation{Op: op, Target: d.ids[hn], Key: key, Value: propToString(value)})

	if hn.Type == html.TextNode {
		if key == NodeValue {
			hn.Data = propToString(value)
		}
		return nil
	}

	name := attrName(key)
	if b, ok := value.(bool); ok && !b || value == nil {
		removeAttr(hn, name)
		return nil
	}
	val := propToString(value)
	if b, ok := value.(bool); ok && b {
		val = ""
	}
	setAttr(hn, name, val)
	return nil
}

// AddEventListener implements host.Host.
func (d *Document) AddEventListener(n host.Node, event string, h host.Handler) error {
	hn, err := d.node(n)
	if err != nil {
		return err
	}
	byEvent := d.listeners[hn]
	if byEvent == nil {
		byEvent = make(map[string][]host.Handler)
		d.listeners[hn] = byEvent
	}
	byEvent[event] = append(byEvent[event], h)
	d.record(host.Mutation{Op: host.OpAddListener, Target: d.ids[hn], Key: event})
	return nil
}

// RemoveEventListener implements host.Host. Removing a handler that was
// never registered is a no-op, as in the DOM.
func (d *Document) RemoveEventListener(n host.Node, event string, h host.Handler) error {
	hn, err := d.node(n)
	if err != nil {
		return err
	}
	d.record(host.Mutation{Op: host.OpRemoveListener, Target: d.ids[hn], Key: event})

	handlers := d.listeners[hn][event]
	for i, existing := range handlers {
		if sameHandler(existing, h) {
			d.listeners[hn][event] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
	return nil
}

// Listeners returns the number of handlers registered for event on n.
func (d *Document) Listeners(n host.Node, event string) int {
	hn, err := d.node(n)
	if err != nil {
		return 0
	}
	return len(d.listeners[hn][event])
}

// Dispatch delivers evt to the handlers registered on n for evt.Type, in
// registration order. It does not bubble. The first handler error stops
// delivery and is returned.
//
// Supported handler shapes are func(), func() error, func(host.Event) and
// func(host.Event) error.
func (d *Document) Dispatch(n host.Node, evt host.Event) error {
	hn, err := d.node(n)
	if err != nil {
		return err
	}
	evt.Target = hn

	// Handlers may re-render and change the listener set.
	handlers := append([]host.Handler(nil), d.listeners[hn][evt.Type]...)
	for _, h := range handlers {
		if err := invoke(h, evt); err != nil {
			return err
		}
	}
	return nil
}

func invoke(h host.Handler, evt host.Event) error {
	switch fn := h.(type) {
	case func():
		fn()
	case func() error:
		return fn()
	case func(host.Event):
		fn(evt)
	case func(host.Event) error:
		return fn(evt)
	default:
		return fmt.Errorf("htmlhost: unsupported handler type %T", h)
	}
	return nil
}

// ID returns the stable label the journal uses for n.
func (d *Document) ID(n host.Node) string {
	hn, err := d.node(n)
	if err != nil {
		return ""
	}
	return d.ids[hn]
}

// Path returns the slash-separated child indices leading from the
// container to n, or false when n is not attached under the container.
func (d *Document) Path(n host.Node) (string, bool) {
	hn, err := d.node(n)
	if err != nil {
		return "", false
	}
	var parts []string
	for cur := hn; cur != d.container; cur = cur.Parent {
		if cur.Parent == nil {
			return "", false
		}
		i := 0
		for s := cur.Parent.FirstChild; s != cur; s = s.NextSibling {
			i++
		}
		parts = append(parts, strconv.Itoa(i))
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/"), true
}

// Resolve returns the node at path, as produced by Path.
func (d *Document) Resolve(path string) (host.Node, bool) {
	cur := d.container
	if path == "" {
		return cur, true
	}
	for _, part := range strings.Split(path, "/") {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, false
		}
		child := cur.FirstChild
		for i := 0; i < idx && child != nil; i++ {
			child = child.NextSibling
		}
		if child == nil {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

// Attr returns the attribute key on element n.
func (d *Document) Attr(n host.Node, key string) (string, bool) {
	hn, err := d.node(n)
	if err != nil {
		return "", false
	}
	name := attrName(key)
	for _, a := range hn.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the concatenated text content of n.
func (d *Document) Text(n host.Node) string {
	hn, err := d.node(n)
	if err != nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(hn)
	return b.String()
}

// Render writes the container's children as HTML.
func (d *Document) Render(w io.Writer) error {
	for c := d.container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return err
		}
	}
	return nil
}

// HTML returns the container's children as an HTML string.
func (d *Document) HTML() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

func (d *Document) register(n *html.Node) string {
	d.nextID++
	id := "n" + strconv.Itoa(d.nextID)
	d.ids[n] = id
	return id
}

// release forgets n and its descendants.
func (d *Document) release(n *html.Node) {
	delete(d.ids, n)
	delete(d.listeners, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.release(c)
	}
}

// Size returns the number of nodes the document tracks, the container
// included.
func (d *Document) Size() int {
	return len(d.ids)
}

func (d *Document) node(n host.Node) (*html.Node, error) {
	hn, ok := n.(*html.Node)
	if !ok || hn == nil {
		return nil, ErrForeignNode
	}
	if _, known := d.ids[hn]; !known {
		return nil, ErrForeignNode
	}
	return hn, nil
}

func (d *Document) pair(parent, child host.Node) (*html.Node, *html.Node, error) {
	p, err := d.node(parent)
	if err != nil {
		return nil, nil, err
	}
	c, err := d.node(child)
	if err != nil {
		return nil, nil, err
	}
	return p, c, nil
}

// attrName maps DOM property names onto their attribute names.
func attrName(key string) string {
	switch key {
	case "className":
		return "class"
	case "htmlFor":
		return "for"
	}
	return key
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// sameHandler compares handlers by identity. Funcs are not comparable in
// Go, so they are compared by code pointer.
func sameHandler(a, b host.Handler) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.Func && vb.Kind() == reflect.Func {
		return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
	}
	if va.IsValid() && vb.IsValid() && va.Type().Comparable() && vb.Type().Comparable() {
		return a == b
	}
	return false
}

// propToString converts a property value to its attribute text.
func propToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
