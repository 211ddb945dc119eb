package grid

import "reflect"

// Flatten returns the cells of g in row-major order.
func Flatten[T any](g Grid[T]) []T {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	out := make([]T, 0, n)
	for _, row := range g {
		out = append(out, row...)
	}
	return out
}

// FlattenDeep flattens arbitrarily nested slices and arrays into a single
// sequence of leaf values, depth first. A non-slice value yields itself.
// Nesting depth is bounded only by memory: the walk uses an explicit stack.
func FlattenDeep(v any) []any {
	var out []any
	stack := []reflect.Value{reflect.ValueOf(v)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.Kind() == reflect.Interface && !top.IsNil() {
			top = top.Elem()
		}

		switch top.Kind() {
		case reflect.Slice, reflect.Array:
			// Push in reverse so the first element is visited first.
			for k := top.Len() - 1; k >= 0; k-- {
				stack = append(stack, top.Index(k))
			}
		case reflect.Invalid:
			out = append(out, nil)
		default:
			out = append(out, top.Interface())
		}
	}

	return out
}

// Reduce folds the flattened cells of g into an accumulator.
func Reduce[T, A any](g Grid[T], fn func(acc A, cell T) A, initial A) A {
	acc := initial
	for _, row := range g {
		for _, cell := range row {
			acc = fn(acc, cell)
		}
	}
	return acc
}

// Sum adds up every cell of a numeric grid.
func Sum[T Number](g Grid[T]) T {
	return Reduce(g, func(acc T, cell T) T { return acc + cell }, 0)
}
