package models

// PickupRecord is one logged event of a guardian or staff member picking a
// student up. PickedUpAt is the stored naive local-time string; it never
// carries a timezone offset.
type PickupRecord struct {
	ID         int64   `db:"id" json:"id"`
	StudentID  string  `db:"student_id" json:"student_id"`
	PickedUpBy *string `db:"picked_up_by" json:"picked_up_by"`
	PickedUpAt string  `db:"picked_up_at" json:"picked_up_at"`
}

// AdminPickupRecord joins the record with student identity for the admin
// table. Records of unknown students are excluded by the join.
type AdminPickupRecord struct {
	ID          int64   `db:"id" json:"id"`
	StudentID   string  `db:"student_id" json:"student_id"`
	PickedUpBy  *string `db:"picked_up_by" json:"picked_up_by"`
	PickedUpAt  string  `db:"picked_up_at" json:"picked_up_at"`
	StudentName string  `db:"student_name" json:"student_name"`
	ClassName   *string `db:"class_name" json:"class_name"`
}

// PickupFilter holds the optional admin filters. Every present field is
// AND-combined; date bounds are inclusive calendar dates (YYYY-MM-DD).
type PickupFilter struct {
	ClassName string
	StudentID string
	DateFrom  string
	DateTo    string
}

// PickupStat counts pickups per calendar day.
type PickupStat struct {
	Date  string `db:"date" json:"date"`
	Count int    `db:"count" json:"count"`
}
