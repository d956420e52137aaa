package structs

import "slices"

// FavoritesState is the persisted set of favorited hero IDs. Uniqueness of
// IDs is enforced by the mutation logic, not by the storage layer.
// UpdatedAt is epoch milliseconds.
type FavoritesState struct {
	IDs       []int `json:"ids"`
	UpdatedAt int64 `json:"updatedAt"`
}

// Contains reports whether heroID is favorited.
func (f *FavoritesState) Contains(heroID int) bool {
	return f != nil && slices.Contains(f.IDs, heroID)
}
