package services

import (
	"database/sql"
	"errors"

	"aicoach-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const inquiryColumns = `
id, name, email, phone, type, message, status, admin_notes, created_at, updated_at`

var inquiryStatuses = map[string]bool{"new": true, "processing": true, "completed": true}

func ValidInquiryStatus(value string) bool {
	return inquiryStatuses[value]
}

type InquiryInput struct {
	Name    string
	Email   string
	Phone   *string
	Type    string
	Message string
}

func AllInquiries(db *sqlx.DB) ([]models.Inquiry, error) {
	items := []models.Inquiry{}
	err := db.Select(&items, `SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC`)
	return items, err
}

func InquiryByID(db *sqlx.DB, id int64) (*models.Inquiry, error) {
	item := models.Inquiry{}
	err := db.Get(&item, `SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateInquiry appends a customer inquiry; status starts at "new".
func CreateInquiry(db *sqlx.DB, in InquiryInput) (int64, error) {
	var id int64
	err := db.Get(&id, `
INSERT INTO inquiries (name, email, phone, type, message)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, in.Name, in.Email, in.Phone, in.Type, in.Message)
	return id, err
}

// UpdateInquiryStatus sets the status and, only when supplied, the
// admin notes. Transitions are not constrained beyond enum membership.
func UpdateInquiryStatus(db *sqlx.DB, id int64, status string, adminNotes *string) error {
	var result sql.Result
	var err error
	if adminNotes != nil {
		result, err = db.Exec(`UPDATE inquiries SET status = $1, admin_notes = $2, updated_at = now() WHERE id = $3`,
			status, *adminNotes, id)
	} else {
		result, err = db.Exec(`UPDATE inquiries SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	}
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound("Inquiry not found")
	}
	return nil
}
