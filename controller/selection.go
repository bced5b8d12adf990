package controller

import "sort"

// Selection is the set of row ids chosen for a bulk action. It is an
// immutable value: every operation returns a new Selection, which makes the
// page-scoped select-all semantics an explicit contract instead of a side
// effect of whatever rows happen to be rendered.
type Selection struct {
	ids map[uint]struct{}
}

// NewSelection creates an empty selection
func NewSelection() Selection {
	return Selection{}
}

// Toggle returns the selection with the given id added or removed
func (s Selection) Toggle(id uint) Selection {
	next := s.copyIDs()
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return Selection{ids: next}
}

// SelectAll returns the selection with all given ids added. Callers pass the
// ids of the currently loaded page only; selecting across pages is out of
// contract.
func (s Selection) SelectAll(ids []uint) Selection {
	next := s.copyIDs()
	for _, id := range ids {
		next[id] = struct{}{}
	}
	return Selection{ids: next}
}

// Clear returns an empty selection
func (s Selection) Clear() Selection {
	return Selection{}
}

// Has reports whether the id is selected
func (s Selection) Has(id uint) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the selected ids in ascending order
func (s Selection) IDs() []uint {
	ids := make([]uint, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of selected ids
func (s Selection) Len() int {
	return len(s.ids)
}

func (s Selection) copyIDs() map[uint]struct{} {
	next := make(map[uint]struct{}, len(s.ids)+1)
	for id := range s.ids {
		next[id] = struct{}{}
	}
	return next
}
