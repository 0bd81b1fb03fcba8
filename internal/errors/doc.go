// Package errors provides structured, coded errors for the reconciler and
// its tooling.
//
// Every failure the reconciler surfaces is a *RenderError carrying a code
// from the registry, a category, and the element it was processing. Host
// failures are wrapped so errors.Is and errors.As still reach the
// original cause.
//
// # Error Categories
//
//   - render: reconciliation failures (unknown element type, re-entry)
//   - component: component runtime failures (nil render, unmounted setState)
//   - host: a host primitive returned an error
//   - config: configuration file problems
//   - cli: command-line usage problems
//
// # Usage
//
//	err := errors.New(errors.CodeUnknownType).
//	    WithElement("<nil type>").
//	    WithSuggestion("Build elements with vdom.H or vdom.C")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Unknown element type
//	//
//	//   at <nil type>
//	//
//	//   An element's type is neither a host tag nor a component class.
//	//
//	//   Hint: Build elements with vdom.H or vdom.C
package errors
