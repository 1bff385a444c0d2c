package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// IDSet is an unordered, duplicate-free set of entity IDs. The zero value is
// an empty set ready to use.
type IDSet struct {
	ids map[int64]struct{}
}

// NewIDSet builds a set from ids, dropping duplicates.
func NewIDSet(ids ...int64) IDSet {
	s := IDSet{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// ParseIDSet builds a set from form values. Blank and non-numeric values are
// skipped.
func ParseIDSet(values []string) IDSet {
	s := NewIDSet()
	for _, v := range values {
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		s.ids[id] = struct{}{}
	}
	return s
}

func (s IDSet) Len() int { return len(s.ids) }

func (s IDSet) Empty() bool { return len(s.ids) == 0 }

func (s IDSet) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Toggle returns a copy of the set with id added when absent, removed when
// present. The receiver is left untouched.
func (s IDSet) Toggle(id int64) IDSet {
	out := NewIDSet(s.Slice()...)
	if out.Has(id) {
		delete(out.ids, id)
	} else {
		out.ids[id] = struct{}{}
	}
	return out
}

// Intersects reports whether any of ids is in the set.
func (s IDSet) Intersects(ids []int64) bool {
	for _, id := range ids {
		if s.Has(id) {
			return true
		}
	}
	return false
}

// Slice returns the IDs in ascending order.
func (s IDSet) Slice() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the IDs as decimal strings, ascending, for repeated form
// fields and query parameters.
func (s IDSet) Strings() []string {
	ids := s.Slice()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatInt(id, 10)
	}
	return out
}

// Equal reports whether both sets hold the same IDs.
func (s IDSet) Equal(other IDSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
