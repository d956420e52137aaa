package structs

import "slices"

// Team is a user-created group of heroes. MemberIDs are logical foreign keys
// into the hero catalog and are never validated against it; a dangling
// reference simply resolves to nothing downstream.
//
// Timestamps are epoch milliseconds.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MemberIDs []int  `json:"memberIds"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

func (t *Team) GetID() string {
	return t.ID
}

func (t *Team) GetName() string {
	return t.Name
}

// HasMember reports whether heroID is already part of the team.
func (t *Team) HasMember(heroID int) bool {
	return slices.Contains(t.MemberIDs, heroID)
}
