package catalog

// PageStep is the number of extra items revealed by "load more".
const PageStep = 12

// Window is the visible prefix of an already fetched list.
type Window[T any] struct {
	Items   []T
	Total   int
	Shown   int
	HasMore bool
	Next    int
}

// Slice reveals the first count items of all. Counts below one fall back to
// PageStep.
func Slice[T any](all []T, count int) Window[T] {
	if count <= 0 {
		count = PageStep
	}
	shown := count
	if shown > len(all) {
		shown = len(all)
	}
	return Window[T]{
		Items:   all[:shown],
		Total:   len(all),
		Shown:   shown,
		HasMore: shown < len(all),
		Next:    count + PageStep,
	}
}
