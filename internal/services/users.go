package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"aicoach-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserUpsert struct {
	OpenID      string
	Name        *string
	Email       *string
	LoginMethod *string
	Role        *string
}

// UpsertUser inserts or refreshes the account row for an external
// identity. Only the supplied fields are written on conflict;
// last_signed_in is bumped on every call. A login matching ownerOpenID
// is promoted to the admin role.
func UpsertUser(db *sqlx.DB, ownerOpenID string, in UserUpsert) error {
	if strings.TrimSpace(in.OpenID) == "" {
		return ErrBadRequest("openId is required")
	}
	p := &patch{}
	p.set("open_id", in.OpenID)
	p.setString("name", in.Name)
	p.setString("email", in.Email)
	p.setString("login_method", in.LoginMethod)
	switch {
	case in.Role != nil:
		p.set("role", *in.Role)
	case ownerOpenID != "" && in.OpenID == ownerOpenID:
		p.set("role", "admin")
	}
	p.set("last_signed_in", time.Now().UTC())

	updates := make([]string, 0, len(p.columns))
	for _, column := range p.columns {
		if column == "open_id" {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}
	updates = append(updates, "updated_at = now()")
	query := fmt.Sprintf(`
INSERT INTO users %s
ON CONFLICT (open_id) DO UPDATE SET %s
`, p.insertClause(), strings.Join(updates, ", "))
	_, err := db.Exec(query, p.args...)
	return err
}

func UserByOpenID(db *sqlx.DB, openID string) (*models.User, error) {
	user := models.User{}
	err := db.Get(&user, `
SELECT id, open_id, name, email, login_method, role, last_signed_in, created_at, updated_at
FROM users
WHERE open_id = $1
`, openID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
