package models

// Flat row shapes handed to the export pipeline. Encoding (CSV, spreadsheet)
// happens outside this service; these carry the resolved, window-filtered
// data only.

type AccountRow struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	Deleted   bool   `json:"deleted"`
	DeletedAt string `json:"deleted_at,omitempty"`
}

type ChildRow struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Sex          string   `json:"sex,omitempty"`
	BirthDate    string   `json:"birth_date,omitempty"`
	Age          string   `json:"age,omitempty"`
	CreatedAt    string   `json:"created_at"`
	EventCount   int      `json:"event_count"`
	ParentEmails []string `json:"parent_emails"`
}

type EventRow struct {
	ChildID    string `json:"child_id"`
	ChildName  string `json:"child_name"`
	Type       string `json:"type"`
	OccurredAt string `json:"occurred_at"`
	Value      string `json:"value,omitempty"`
	Comment    string `json:"comment,omitempty"`
}
