package models

// ChildProfile is one child record with its full activity history embedded.
// ParentIDs links the profile to zero or more accounts; OwnerEmail is the
// legacy single-owner field kept for records predating multi-parent linking.
type ChildProfile struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Sex        string          `json:"sex,omitempty"`
	BirthDate  string          `json:"birthDate,omitempty"`
	CreatedAt  any             `json:"createdAt,omitempty"`
	Events     []ActivityEvent `json:"events"`
	ParentIDs  []string        `json:"parents"`
	OwnerEmail string          `json:"ownerEmail,omitempty"`
}

// ActivityEvent is one logged activity. Type is a free-form label matched by
// keyword, not an enum. Value's meaning depends on the category: volume for
// feeding, minutes for sleep. Nursing events carry the left/right pair
// instead. Subtype discriminates diaper events, with Kind as its deprecated
// alias.
type ActivityEvent struct {
	Type          string `json:"type"`
	OccurredAt    any    `json:"date,omitempty"`
	Value         any    `json:"value,omitempty"`
	Subtype       string `json:"subtype,omitempty"`
	Kind          string `json:"kind,omitempty"`
	LeftDuration  any    `json:"leftDuration,omitempty"`
	RightDuration any    `json:"rightDuration,omitempty"`
	Comment       string `json:"comment,omitempty"`
}
