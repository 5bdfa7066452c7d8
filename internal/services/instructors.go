package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"aicoach-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const instructorColumns = `
id, name, title, bio, expertise,
name_ko, name_zh, name_en, title_ko, title_zh, title_en,
bio_ko, bio_zh, bio_en, expertise_ko, expertise_zh, expertise_en,
photo_url, photo_key, email, phone, profile_link, created_at, updated_at`

// InstructorInput carries an optional id plus only the fields the
// caller wants to touch; nil fields are left untouched on update.
type InstructorInput struct {
	ID          *int64  `json:"id"`
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Bio         *string `json:"bio"`
	Expertise   *string `json:"expertise"`
	NameKo      *string `json:"nameKo"`
	NameZh      *string `json:"nameZh"`
	NameEn      *string `json:"nameEn"`
	TitleKo     *string `json:"titleKo"`
	TitleZh     *string `json:"titleZh"`
	TitleEn     *string `json:"titleEn"`
	BioKo       *string `json:"bioKo"`
	BioZh       *string `json:"bioZh"`
	BioEn       *string `json:"bioEn"`
	ExpertiseKo *string `json:"expertiseKo"`
	ExpertiseZh *string `json:"expertiseZh"`
	ExpertiseEn *string `json:"expertiseEn"`
	PhotoURL    *string `json:"photoUrl"`
	PhotoKey    *string `json:"photoKey"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	ProfileLink *string `json:"profileLink"`
}

func (in InstructorInput) patch() *patch {
	p := &patch{}
	p.setString("name", in.Name)
	p.setString("title", in.Title)
	p.setString("bio", in.Bio)
	p.setString("expertise", in.Expertise)
	p.setString("name_ko", in.NameKo)
	p.setString("name_zh", in.NameZh)
	p.setString("name_en", in.NameEn)
	p.setString("title_ko", in.TitleKo)
	p.setString("title_zh", in.TitleZh)
	p.setString("title_en", in.TitleEn)
	p.setString("bio_ko", in.BioKo)
	p.setString("bio_zh", in.BioZh)
	p.setString("bio_en", in.BioEn)
	p.setString("expertise_ko", in.ExpertiseKo)
	p.setString("expertise_zh", in.ExpertiseZh)
	p.setString("expertise_en", in.ExpertiseEn)
	p.setString("photo_url", in.PhotoURL)
	p.setString("photo_key", in.PhotoKey)
	p.setString("email", in.Email)
	p.setString("phone", in.Phone)
	p.setString("profile_link", in.ProfileLink)
	return p
}

func AllInstructors(db *sqlx.DB) ([]models.Instructor, error) {
	items := []models.Instructor{}
	err := db.Select(&items, `SELECT `+instructorColumns+` FROM instructors ORDER BY id`)
	return items, err
}

func InstructorByID(db *sqlx.DB, id int64) (*models.Instructor, error) {
	item := models.Instructor{}
	err := db.Get(&item, `SELECT `+instructorColumns+` FROM instructors WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SaveInstructor updates only the supplied fields when an id is given,
// otherwise inserts a new row (name required) and returns the new id.
func SaveInstructor(db *sqlx.DB, in InstructorInput) (int64, error) {
	p := in.patch()
	if in.ID != nil {
		if p.empty() {
			return *in.ID, nil
		}
		args := append(p.args, *in.ID)
		query := fmt.Sprintf(`UPDATE instructors SET %s, updated_at = now() WHERE id = $%d`,
			p.assignments(), len(args))
		result, err := db.Exec(query, args...)
		if err != nil {
			return 0, err
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return 0, ErrNotFound("Instructor not found")
		}
		return *in.ID, nil
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return 0, ErrBadRequest("Name is required for new instructor")
	}
	var id int64
	query := fmt.Sprintf(`INSERT INTO instructors %s RETURNING id`, p.insertClause())
	if err := db.Get(&id, query, p.args...); err != nil {
		return 0, err
	}
	return id, nil
}
