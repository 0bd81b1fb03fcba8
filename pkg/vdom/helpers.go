package vdom

// If returns the element if condition is true, nil otherwise.
func If(condition bool, el *Element) *Element {
	if condition {
		return el
	}
	return nil
}

// IfElse returns the first element if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Element) *Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Element) *Element {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, el *Element) *Element {
	if !condition {
		return el
	}
	return nil
}

// Range maps a slice to Elements, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *Element) []*Element {
	result := make([]*Element, 0, len(items))
	for i, item := range items {
		if el := fn(item, i); el != nil {
			result = append(result, el)
		}
	}
	return result
}

// Repeat creates n elements using the given function.
func Repeat(n int, fn func(i int) *Element) []*Element {
	if n <= 0 {
		return nil
	}
	result := make([]*Element, 0, n)
	for i := 0; i < n; i++ {
		if el := fn(i); el != nil {
			result = append(result, el)
		}
	}
	return result
}
