package dto

// CreateRecordRequest is the front-desk confirm payload. The student id is
// trusted as scanned; existence is not checked on this path.
type CreateRecordRequest struct {
	StudentID  string  `json:"student_id" validate:"required"`
	PickedUpBy *string `json:"picked_up_by"`
}

// CreateRecordResponse acknowledges a front-desk pickup.
type CreateRecordResponse struct {
	Success    bool   `json:"success"`
	PickedUpAt string `json:"picked_up_at"`
}

// AdminCreateRecordRequest is the admin add-record payload. PickedUpAt is
// optional and defaults to the current local time.
type AdminCreateRecordRequest struct {
	StudentID  string  `json:"student_id" validate:"required"`
	PickedUpBy *string `json:"picked_up_by"`
	PickedUpAt string  `json:"picked_up_at"`
}

// AdminCreateRecordResponse carries the generated record id.
type AdminCreateRecordResponse struct {
	Success    bool   `json:"success"`
	ID         int64  `json:"id"`
	PickedUpAt string `json:"picked_up_at"`
}

// UpdateRecordRequest replaces all mutable fields of a record. Unlike
// creation, PickedUpAt must be supplied explicitly.
type UpdateRecordRequest struct {
	StudentID  string  `json:"student_id" validate:"required"`
	PickedUpBy *string `json:"picked_up_by"`
	PickedUpAt string  `json:"picked_up_at" validate:"required"`
}

// UpdateRecordResponse acknowledges an edit.
type UpdateRecordResponse struct {
	Success    bool   `json:"success"`
	PickedUpAt string `json:"picked_up_at"`
}

// DeleteRecordsRequest names the records to remove in one bulk operation.
type DeleteRecordsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

// DeleteRecordsResponse reports how many rows were actually removed, which
// may be fewer than requested.
type DeleteRecordsResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deleted_count"`
}

// VerifyPasswordRequest is the admin gate payload.
type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// VerifyPasswordResponse acknowledges a matching password.
type VerifyPasswordResponse struct {
	Success bool `json:"success"`
}

// ExportResult is a rendered download of the filtered admin table.
type ExportResult struct {
	Content     []byte
	Filename    string
	ContentType string
}
