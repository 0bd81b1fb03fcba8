package vdom

import "github.com/vango-dev/retain/internal/errors"

// IsUnknownType reports whether err was caused by an element whose type
// is neither a host tag nor a component factory.
func IsUnknownType(err error) bool { return errors.HasCode(err, errors.CodeUnknownType) }

// IsNilRender reports whether err was caused by a component rendering nil.
func IsNilRender(err error) bool { return errors.HasCode(err, errors.CodeNilRender) }

// IsReentrant reports whether err was caused by Render being called on a
// root that was already rendering.
func IsReentrant(err error) bool { return errors.HasCode(err, errors.CodeReentrantRender) }

// IsUnmounted reports whether err was caused by SetState on a component
// that is not part of a live tree.
func IsUnmounted(err error) bool { return errors.HasCode(err, errors.CodeUnmounted) }

// IsHostFailure reports whether err wraps a failed host primitive.
func IsHostFailure(err error) bool { return errors.HasCode(err, errors.CodeHost) }

// IsMissingRuntime reports whether err was caused by a component that
// does not embed Base.
func IsMissingRuntime(err error) bool { return errors.HasCode(err, errors.CodeNoRuntime) }

// IsRenderLoop reports whether err was caused by a component whose Render
// called SetState on every pass.
func IsRenderLoop(err error) bool { return errors.HasCode(err, errors.CodeRenderLoop) }
