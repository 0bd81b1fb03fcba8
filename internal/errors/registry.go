package errors

// Registered error codes.
const (
	CodeUnknownType     = "E101"
	CodeNilRender       = "E102"
	CodeReentrantRender = "E103"
	CodeUnmounted       = "E104"
	CodeHost            = "E105"
	CodeNoRuntime       = "E106"
	CodeRenderLoop      = "E107"

	CodeInvalidConfig = "E201"
	CodeConfigRead    = "E202"

	CodeUsage = "E301"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E101-E199)
	// ============================================

	CodeUnknownType: {
		Category: CategoryRender,
		Message:  "Unknown element type",
		Detail:   "An element's type is neither a host tag nor a component class.",
	},
	CodeNilRender: {
		Category: CategoryComponent,
		Message:  "Component rendered nil",
		Detail:   "A component must render exactly one element. Wrap optional output in a host element.",
	},
	CodeReentrantRender: {
		Category: CategoryRender,
		Message:  "Render called during render",
		Detail:   "A root was asked to render while a render on the same root was still running. Use SetState from event handlers instead.",
	},
	CodeUnmounted: {
		Category: CategoryComponent,
		Message:  "SetState on unmounted component",
		Detail:   "The component has not been mounted by a root, or its host node is no longer attached.",
	},
	CodeHost: {
		Category: CategoryHost,
		Message:  "Host operation failed",
		Detail:   "A host primitive returned an error. The host tree may be partially updated.",
	},
	CodeNoRuntime: {
		Category: CategoryComponent,
		Message:  "Component does not embed vdom.Base",
		Detail:   "Factories must return a value that embeds vdom.Base so the runtime can supply props and state.",
	},
	CodeRenderLoop: {
		Category: CategoryComponent,
		Message:  "Component keeps setting state while rendering",
		Detail:   "Render called SetState on every pass. Derive the value in Render or set it from an event handler instead.",
	},

	// ============================================
	// Config Errors (E201-E299)
	// ============================================

	CodeInvalidConfig: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A value in retain.json is out of range or malformed.",
	},
	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "retain.json exists but could not be read or parsed as JSON.",
	},

	// ============================================
	// CLI Errors (E301-E399)
	// ============================================

	CodeUsage: {
		Category: CategoryCLI,
		Message:  "Invalid command usage",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
