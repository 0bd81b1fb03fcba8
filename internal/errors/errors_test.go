package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "unknown type",
			code:    CodeUnknownType,
			wantMsg: "Unknown element type",
			wantCat: CategoryRender,
		},
		{
			name:    "nil render",
			code:    CodeNilRender,
			wantMsg: "Component rendered nil",
			wantCat: CategoryComponent,
		},
		{
			name:    "host failure",
			code:    CodeHost,
			wantMsg: "Host operation failed",
			wantCat: CategoryHost,
		},
		{
			name:    "config",
			code:    CodeInvalidConfig,
			wantMsg: "Invalid configuration",
			wantCat: CategoryConfig,
		},
		{
			name:    "unregistered code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "flag %q missing", "addr")
	if err.Message != `flag "addr" missing` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
	if err.Error() != `flag "addr" missing` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRenderError_Error(t *testing.T) {
	cause := stderrors.New("node detached")
	err := New(CodeHost).WithElement("<div>").Wrap(cause)

	want := "E105: Host operation failed at <div>: node detached"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestRenderError_IsAndUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := fmt.Errorf("render: %w", New(CodeHost).Wrap(cause))

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if !stderrors.Is(err, New(CodeHost)) {
		t.Error("errors.Is should match by code")
	}
	if stderrors.Is(err, New(CodeUnknownType)) {
		t.Error("errors.Is should not match a different code")
	}

	var re *RenderError
	if !stderrors.As(err, &re) || re.Code != CodeHost {
		t.Error("errors.As should find the RenderError")
	}
}

func TestHasCode(t *testing.T) {
	inner := New(CodeNilRender)
	outer := New(CodeHost).Wrap(inner)

	if !HasCode(outer, CodeHost) {
		t.Error("HasCode(outer, E105) = false")
	}
	if !HasCode(outer, CodeNilRender) {
		t.Error("HasCode should find nested codes")
	}
	if HasCode(outer, CodeUnmounted) {
		t.Error("HasCode(outer, E104) = true")
	}
	if HasCode(nil, CodeHost) {
		t.Error("HasCode(nil) = true")
	}
	if HasCode(stderrors.New("plain"), CodeHost) {
		t.Error("HasCode(plain error) = true")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(CodeHost).Wrap(New(CodeNilRender))); got != CodeHost {
		t.Errorf("CodeOf = %q, want %q", got, CodeHost)
	}
	if got := CodeOf(stderrors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Errorf("CodeOf(nil) = %q, want empty", got)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeHost) != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	re := New(CodeUnknownType)
	if FromError(fmt.Errorf("wrapped: %w", re), CodeHost) != re {
		t.Error("FromError should return an existing RenderError as-is")
	}

	plain := stderrors.New("plain")
	got := FromError(plain, CodeHost)
	if got.Wrapped != plain || got.Code != CodeHost {
		t.Errorf("FromError(plain) = %+v", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeUnknownType).
		WithElement("<nil type>").
		WithSuggestion("Build elements with vdom.H").
		Wrap(stderrors.New("type is zero"))

	formatted := err.Format()
	for _, want := range []string{
		"ERROR E101: Unknown element type",
		"at <nil type>",
		"neither a host tag nor a component class",
		"Cause: type is zero",
		"Hint: Build elements with vdom.H",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q:\n%s", want, formatted)
		}
	}
	if strings.Contains(formatted, "\033[") {
		t.Error("Format() should not contain ANSI codes when colors are disabled")
	}
}

func TestFormatJSON(t *testing.T) {
	err := New(CodeUnmounted).WithElement("Toggle")

	var decoded map[string]any
	if jerr := json.Unmarshal([]byte(err.FormatJSON()), &decoded); jerr != nil {
		t.Fatalf("FormatJSON produced invalid JSON: %v", jerr)
	}
	if decoded["code"] != CodeUnmounted {
		t.Errorf("code = %v, want %v", decoded["code"], CodeUnmounted)
	}
	if decoded["category"] != string(CategoryComponent) {
		t.Errorf("category = %v", decoded["category"])
	}
	if decoded["element"] != "Toggle" {
		t.Errorf("element = %v", decoded["element"])
	}
	if _, ok := decoded["cause"]; ok {
		t.Error("cause should be omitted when nothing is wrapped")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("wrapText = %q, want %q", lines, want)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup(CodeReentrantRender); !ok {
		t.Error("Lookup(E103) should succeed")
	}
	if _, ok := Lookup("E000"); ok {
		t.Error("Lookup(E000) should fail")
	}
}
