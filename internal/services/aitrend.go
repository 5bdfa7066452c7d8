package services

import (
	"database/sql"
	"errors"
	"fmt"

	"aicoach-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const aiTrendColumns = `
id, title_ko, title_zh, title_en, subtitle_ko, subtitle_zh, subtitle_en,
link_url, created_at, updated_at`

// AiTrend returns the promotional block. The table is a singleton by
// convention, so only the first row is ever read.
func AiTrend(db *sqlx.DB) (*models.AiTrendSection, error) {
	item := models.AiTrendSection{}
	err := db.Get(&item, `SELECT `+aiTrendColumns+` FROM ai_trend_section ORDER BY id LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

type AiTrendInput struct {
	ID         *int64  `json:"id"`
	TitleKo    *string `json:"titleKo"`
	TitleZh    *string `json:"titleZh"`
	TitleEn    *string `json:"titleEn"`
	SubtitleKo *string `json:"subtitleKo"`
	SubtitleZh *string `json:"subtitleZh"`
	SubtitleEn *string `json:"subtitleEn"`
	LinkURL    *string `json:"linkUrl"`
}

func (in AiTrendInput) patch() *patch {
	p := &patch{}
	p.setString("title_ko", in.TitleKo)
	p.setString("title_zh", in.TitleZh)
	p.setString("title_en", in.TitleEn)
	p.setString("subtitle_ko", in.SubtitleKo)
	p.setString("subtitle_zh", in.SubtitleZh)
	p.setString("subtitle_en", in.SubtitleEn)
	p.setString("link_url", in.LinkURL)
	return p
}

func SaveAiTrend(db *sqlx.DB, in AiTrendInput) (int64, error) {
	p := in.patch()
	if in.ID != nil {
		if p.empty() {
			return *in.ID, nil
		}
		args := append(p.args, *in.ID)
		query := fmt.Sprintf(`UPDATE ai_trend_section SET %s, updated_at = now() WHERE id = $%d`,
			p.assignments(), len(args))
		result, err := db.Exec(query, args...)
		if err != nil {
			return 0, err
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return 0, ErrNotFound("AI trend section not found")
		}
		return *in.ID, nil
	}
	if p.empty() {
		return 0, ErrBadRequest("No fields supplied")
	}
	var id int64
	query := fmt.Sprintf(`INSERT INTO ai_trend_section %s RETURNING id`, p.insertClause())
	if err := db.Get(&id, query, p.args...); err != nil {
		return 0, err
	}
	return id, nil
}

// EnsureDefaultAiTrend seeds the single promotional row on first boot.
func EnsureDefaultAiTrend(db *sqlx.DB) error {
	existing, err := AiTrend(db)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	_, err = db.Exec(`
INSERT INTO ai_trend_section (
  title_ko, title_zh, title_en, subtitle_ko, subtitle_zh, subtitle_en, link_url
) VALUES ($1,$2,$3,$4,$5,$6,$7)
`, "최신 AI 트렌드", "最新AI趋势", "Latest AI Trends",
		"매주 업데이트되는 AI 소식을 확인하세요", "查看每周更新的AI资讯", "Check the AI news updated every week",
		"https://www.aitrend.kr")
	return err
}
