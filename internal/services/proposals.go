package services

import (
	"database/sql"
	"errors"
	"fmt"

	"aicoach-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const proposalColumns = `
id, type, title, description, file_url, file_key, file_name, file_size, created_at, updated_at`

var proposalTypes = map[string]bool{"personal": true, "corporate": true}

func ValidProposalType(value string) bool {
	return proposalTypes[value]
}

type ProposalInput struct {
	ID          *int64  `json:"id"`
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FileURL     *string `json:"fileUrl"`
	FileKey     *string `json:"fileKey"`
	FileName    *string `json:"fileName"`
	FileSize    *int64  `json:"fileSize"`
}

func (in ProposalInput) patch() *patch {
	p := &patch{}
	p.setString("type", in.Type)
	p.setString("title", in.Title)
	p.setString("description", in.Description)
	p.setString("file_url", in.FileURL)
	p.setString("file_key", in.FileKey)
	p.setString("file_name", in.FileName)
	p.setInt64("file_size", in.FileSize)
	return p
}

func AllProposals(db *sqlx.DB) ([]models.Proposal, error) {
	items := []models.Proposal{}
	err := db.Select(&items, `SELECT `+proposalColumns+` FROM proposals ORDER BY id`)
	return items, err
}

// ProposalByType returns the first proposal of the given type; the type
// column acts as a natural key even though the schema does not enforce it.
func ProposalByType(db *sqlx.DB, proposalType string) (*models.Proposal, error) {
	item := models.Proposal{}
	err := db.Get(&item, `SELECT `+proposalColumns+` FROM proposals WHERE type = $1 LIMIT 1`, proposalType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SaveProposal follows the same optional-id contract as SaveInstructor.
func SaveProposal(db *sqlx.DB, in ProposalInput) (int64, error) {
	p := in.patch()
	if in.ID != nil {
		if p.empty() {
			return *in.ID, nil
		}
		args := append(p.args, *in.ID)
		query := fmt.Sprintf(`UPDATE proposals SET %s, updated_at = now() WHERE id = $%d`,
			p.assignments(), len(args))
		result, err := db.Exec(query, args...)
		if err != nil {
			return 0, err
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return 0, ErrNotFound("Proposal not found")
		}
		return *in.ID, nil
	}
	if !p.has("type") || !p.has("title") || !p.has("file_url") || !p.has("file_key") {
		return 0, ErrBadRequest("Required fields missing for new proposal")
	}
	var id int64
	query := fmt.Sprintf(`INSERT INTO proposals %s RETURNING id`, p.insertClause())
	if err := db.Get(&id, query, p.args...); err != nil {
		return 0, err
	}
	return id, nil
}
