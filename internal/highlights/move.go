package highlights

// Move returns a new slice with the element at from placed at to. Out of
// range indexes return an unchanged copy.
func Move[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return out
	}

	item := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = item
	return out
}

func MoveUp[T any](items []T, index int) []T {
	return Move(items, index, index-1)
}

func MoveDown[T any](items []T, index int) []T {
	return Move(items, index, index+1)
}

// Remove returns a new slice without the element at index.
func Remove[T any](items []T, index int) []T {
	if index < 0 || index >= len(items) {
		return append([]T(nil), items...)
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}
