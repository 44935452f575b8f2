// SPDX-License-Identifier: MIT

package inventory

import "fmt"

// Index is a bidirectional mapping between EntityIDs and dense matrix
// indices [0, n). It is immutable once built.
type Index struct {
	ids []EntityID
	pos map[EntityID]int
}

// NewIndex assigns index i to ids[i].
// Returns ErrDuplicateEntity if an ID appears twice.
func NewIndex(ids []EntityID) (*Index, error) {
	ix := &Index{
		ids: make([]EntityID, len(ids)),
		pos: make(map[EntityID]int, len(ids)),
	}
	copy(ix.ids, ids)
	for i, id := range ids {
		if _, dup := ix.pos[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntity, id)
		}
		ix.pos[id] = i
	}

	return ix, nil
}

// IndexOf returns the matrix index of id.
func (ix *Index) IndexOf(id EntityID) (int, bool) {
	i, ok := ix.pos[id]

	return i, ok
}

// IDAt returns the EntityID at matrix index i.
func (ix *Index) IDAt(i int) (EntityID, bool) {
	if i < 0 || i >= len(ix.ids) {
		return "", false
	}

	return ix.ids[i], true
}

// Len returns the number of indexed entities.
func (ix *Index) Len() int { return len(ix.ids) }

// IDs returns a copy of all IDs in index order.
func (ix *Index) IDs() []EntityID {
	out := make([]EntityID, len(ix.ids))
	copy(out, ix.ids)

	return out
}
