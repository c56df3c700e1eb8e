package model

import "time"

// Contact represents one contact-form submission. All fields except IsRead
// are immutable after insertion; IsRead only ever transitions false→true.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
	Source    string    `json:"source"`
}

// ContactListOptions carries pagination parameters for listing contacts.
type ContactListOptions struct {
	Limit  int
	Offset int
}

// Pagination describes the page of results returned by an admin listing.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ContactStats holds the inbox counters shown alongside a listing.
type ContactStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}

// TableStats aggregates the contacts table for operator diagnostics.
// FirstContact/LatestContact are nil when the table is empty.
type TableStats struct {
	TotalContacts  int        `json:"total_contacts"`
	UnreadContacts int        `json:"unread_contacts"`
	FirstContact   *time.Time `json:"first_contact"`
	LatestContact  *time.Time `json:"latest_contact"`
}

// ColumnInfo describes one column of the contacts table, as reported by
// information_schema.
type ColumnInfo struct {
	TableName  string `json:"table_name"`
	ColumnName string `json:"column_name"`
	DataType   string `json:"data_type"`
}
