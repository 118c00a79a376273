package models

// Student is a learner provisioned out of band; this service never mutates
// the roster. IDs are externally assigned (barcode values).
type Student struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	ClassName *string `db:"class_name" json:"class_name"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

// ClassOption is one entry of the distinct class list backing the admin
// filter dropdown.
type ClassOption struct {
	ClassName string `db:"class_name" json:"class_name"`
}

// RosterEntry is a roster row for the admin student filter.
type RosterEntry struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	ClassName *string `db:"class_name" json:"class_name"`
}
