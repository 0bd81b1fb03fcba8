package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stringer struct{}

func (stringer) String() string { return "str" }

type ptrStringer struct{ s string }

func (p *ptrStringer) String() string { return p.s }

func TestHNormalizesChildren(t *testing.T) {
	var none *Element
	el := H("p", nil,
		"a", nil, false, true, "", none,
		[]*Element{Text("b"), nil},
		[]any{"c", []any{0}},
		stringer{},
		(*ptrStringer)(nil),
		&ptrStringer{"d"},
		(*int)(nil),
		3.5,
	)

	var got []string
	for _, c := range el.Children {
		if !c.Type.IsText() {
			t.Fatalf("child %v is not text", c.Type)
		}
		got = append(got, c.TextValue())
	}
	want := []string{"a", "b", "c", "0", "str", "d", "3.5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestHCopiesProps(t *testing.T) {
	props := Props{"id": "a"}
	el := H("div", props)
	props["id"] = "b"
	if el.Props["id"] != "a" {
		t.Error("H should copy props")
	}
	if H("div", nil).Props == nil {
		t.Error("Props should never be nil")
	}
}

func TestKeyProp(t *testing.T) {
	f := Define("Row", nil)
	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{"host", H("li", Props{"key": 7, "id": "a"}), "7"},
		{"component", C(f, Props{"key": "r1"}), "r1"},
		{"nil key", H("li", Props{"key": nil}), ""},
		{"tag helper", Li(Key(7), ID("a")), "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.el.Key != tt.want {
				t.Errorf("Key = %q, want %q", tt.el.Key, tt.want)
			}
			if _, ok := tt.el.Props["key"]; ok {
				t.Error("key should not be a prop")
			}
		})
	}
}

func TestKeyPropIsNotAppliedToHost(t *testing.T) {
	root, doc := newTestRoot(t)
	mustRender(t, root, H("ul", nil, H("li", Props{"key": "a"}, "x")))
	if got, want := doc.HTML(), "<ul><li>x</li></ul>"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestTagArguments(t *testing.T) {
	handler := func() {}
	el := Button(
		nil,
		ID("save"),
		[]Attr{Class("btn", "primary"), Disabled(true)},
		Attr{},
		Key(7),
		OnClick(handler),
		OnInput(nil),
		"Save",
	)

	if el.Type != HostType("button") {
		t.Errorf("Type = %v, want <button>", el.Type)
	}
	if el.Key != "7" {
		t.Errorf("Key = %q, want 7", el.Key)
	}
	if _, ok := el.Props["key"]; ok {
		t.Error("key should not be a prop")
	}
	if el.Props["id"] != "save" || el.Props["class"] != "btn primary" || el.Props["disabled"] != true {
		t.Errorf("Props = %v", el.Props)
	}
	if _, ok := el.Props["onclick"]; !ok {
		t.Error("onclick handler missing")
	}
	if _, ok := el.Props["oninput"]; ok {
		t.Error("nil handler should be skipped")
	}
	if len(el.Children) != 1 || el.Children[0].TextValue() != "Save" {
		t.Errorf("Children = %v", el.Children)
	}
}

func TestTypeString(t *testing.T) {
	f := Define("Widget", nil)
	tests := []struct {
		typ  Type
		kind Kind
		want string
	}{
		{HostType("div"), KindHost, "<div>"},
		{HostType(TextTag), KindHost, "#text"},
		{ComponentType(f), KindComponent, "Widget"},
		{Type{}, KindInvalid, "<invalid>"},
	}
	for _, tt := range tests {
		if got := tt.typ.Kind(); got != tt.kind {
			t.Errorf("%v.Kind() = %v, want %v", tt.typ, got, tt.kind)
		}
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if ComponentType(f) != C(f, nil).Type {
		t.Error("component types with the same factory should be equal")
	}
	if ComponentType(f) == ComponentType(Define("Widget", nil)) {
		t.Error("factories are compared by identity, not name")
	}
}

func TestTextValue(t *testing.T) {
	if got := Textf("%d items", 3).TextValue(); got != "3 items" {
		t.Errorf("TextValue() = %q", got)
	}
	if got := Div().TextValue(); got != "" {
		t.Errorf("TextValue() of non-text = %q, want empty", got)
	}
	var nilEl *Element
	if got := nilEl.TextValue(); got != "" {
		t.Errorf("TextValue() of nil = %q", got)
	}
}

func TestDescribe(t *testing.T) {
	if got := describe(Li(Key("x"))); got != `<li>[key="x"]` {
		t.Errorf("describe = %q", got)
	}
	if got := describe(nil); got != "<nil>" {
		t.Errorf("describe(nil) = %q", got)
	}
}

func TestConditionalHelpers(t *testing.T) {
	a, b := Span(), I()
	if If(true, a) != a || If(false, a) != nil {
		t.Error("If")
	}
	if IfElse(false, a, b) != b {
		t.Error("IfElse")
	}
	if Unless(true, a) != nil {
		t.Error("Unless")
	}
	called := false
	When(false, func() *Element { called = true; return a })
	if called {
		t.Error("When should not evaluate when false")
	}
	if got := len(Repeat(3, func(int) *Element { return Li() })); got != 3 {
		t.Errorf("Repeat len = %d, want 3", got)
	}
	if Repeat(0, func(int) *Element { return Li() }) != nil {
		t.Error("Repeat(0) should be nil")
	}
	odd := Range([]int{1, 2, 3}, func(n, _ int) *Element { return If(n%2 == 1, Li()) })
	if len(odd) != 2 {
		t.Errorf("Range len = %d, want 2", len(odd))
	}
}
