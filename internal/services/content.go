package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"aicoach-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const sectionColumns = `
id, section_type, title_ko, title_zh, title_en,
description_ko, description_zh, description_en,
display_order, is_active, created_at, updated_at`

const itemColumns = `
id, section_id, icon_name, title_ko, title_zh, title_en,
content_ko, content_zh, content_en, display_order, created_at, updated_at`

var sectionTypes = map[string]bool{"personal": true, "corporate": true}

func ValidSectionType(value string) bool {
	return sectionTypes[value]
}

func AllSections(db *sqlx.DB) ([]models.ContentSection, error) {
	items := []models.ContentSection{}
	err := db.Select(&items, `SELECT `+sectionColumns+` FROM content_sections ORDER BY display_order, id`)
	return items, err
}

func SectionByType(db *sqlx.DB, sectionType string) (*models.ContentSection, error) {
	item := models.ContentSection{}
	err := db.Get(&item, `SELECT `+sectionColumns+` FROM content_sections WHERE section_type = $1`, sectionType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

type SectionInput struct {
	SectionType   string
	TitleKo       string
	TitleZh       string
	TitleEn       string
	DescriptionKo string
	DescriptionZh string
	DescriptionEn string
	DisplayOrder  *int
	IsActive      *string
}

// SaveSection upserts a section keyed on section_type; the three title
// and description locales are all required.
func SaveSection(db *sqlx.DB, in SectionInput) error {
	if !ValidSectionType(in.SectionType) {
		return ErrBadRequest("Invalid section type")
	}
	for _, value := range []string{in.TitleKo, in.TitleZh, in.TitleEn, in.DescriptionKo, in.DescriptionZh, in.DescriptionEn} {
		if strings.TrimSpace(value) == "" {
			return ErrBadRequest("All locale fields are required")
		}
	}
	displayOrder := 0
	if in.DisplayOrder != nil {
		displayOrder = *in.DisplayOrder
	}
	isActive := "active"
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	_, err := db.Exec(`
INSERT INTO content_sections (
  section_type, title_ko, title_zh, title_en,
  description_ko, description_zh, description_en, display_order, is_active
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (section_type) DO UPDATE SET
  title_ko = EXCLUDED.title_ko,
  title_zh = EXCLUDED.title_zh,
  title_en = EXCLUDED.title_en,
  description_ko = EXCLUDED.description_ko,
  description_zh = EXCLUDED.description_zh,
  description_en = EXCLUDED.description_en,
  display_order = EXCLUDED.display_order,
  is_active = EXCLUDED.is_active,
  updated_at = now()
`, in.SectionType, in.TitleKo, in.TitleZh, in.TitleEn,
		in.DescriptionKo, in.DescriptionZh, in.DescriptionEn, displayOrder, isActive)
	return err
}

func ItemsBySection(db *sqlx.DB, sectionID int64) ([]models.ContentItem, error) {
	items := []models.ContentItem{}
	err := db.Select(&items, `
SELECT `+itemColumns+`
FROM content_items
WHERE section_id = $1
ORDER BY display_order, id
`, sectionID)
	return items, err
}

type ItemInput struct {
	ID           *int64  `json:"id"`
	SectionID    *int64  `json:"sectionId"`
	IconName     *string `json:"iconName"`
	TitleKo      *string `json:"titleKo"`
	TitleZh      *string `json:"titleZh"`
	TitleEn      *string `json:"titleEn"`
	ContentKo    *string `json:"contentKo"`
	ContentZh    *string `json:"contentZh"`
	ContentEn    *string `json:"contentEn"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (in ItemInput) patch() *patch {
	p := &patch{}
	p.setInt64("section_id", in.SectionID)
	p.setString("icon_name", in.IconName)
	p.setString("title_ko", in.TitleKo)
	p.setString("title_zh", in.TitleZh)
	p.setString("title_en", in.TitleEn)
	p.setString("content_ko", in.ContentKo)
	p.setString("content_zh", in.ContentZh)
	p.setString("content_en", in.ContentEn)
	p.setInt("display_order", in.DisplayOrder)
	return p
}

// SaveItem updates the supplied fields when an id is given, otherwise
// inserts a new item under its section.
func SaveItem(db *sqlx.DB, in ItemInput) (int64, error) {
	p := in.patch()
	if in.ID != nil {
		if p.empty() {
			return *in.ID, nil
		}
		args := append(p.args, *in.ID)
		query := fmt.Sprintf(`UPDATE content_items SET %s, updated_at = now() WHERE id = $%d`,
			p.assignments(), len(args))
		result, err := db.Exec(query, args...)
		if err != nil {
			return 0, err
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return 0, ErrNotFound("Content item not found")
		}
		return *in.ID, nil
	}
	required := []string{"section_id", "icon_name", "title_ko", "title_zh", "title_en", "content_ko", "content_zh", "content_en"}
	for _, column := range required {
		if !p.has(column) {
			return 0, ErrBadRequest("Required fields missing for new content item")
		}
	}
	var id int64
	query := fmt.Sprintf(`INSERT INTO content_items %s RETURNING id`, p.insertClause())
	if err := db.Get(&id, query, p.args...); err != nil {
		return 0, err
	}
	return id, nil
}

type seedItem struct {
	icon      string
	titleKo   string
	titleZh   string
	titleEn   string
	contentKo string
	contentZh string
	contentEn string
}

type seedSection struct {
	sectionType   string
	titleKo       string
	titleZh       string
	titleEn       string
	descriptionKo string
	descriptionZh string
	descriptionEn string
	displayOrder  int
	items         []seedItem
}

var defaultSections = []seedSection{
	{
		sectionType:   "personal",
		titleKo:       "당신이 중심입니다: 코칭의 3가지 원칙",
		titleZh:       "以您为中心：辅导的3个原则",
		titleEn:       "You Are the Center: 3 Principles of Coaching",
		descriptionKo: "도구는 그 다음 문제입니다. 당신의 생각과 목표를 먼저 정리합니다.",
		descriptionZh: "工具是次要问题。首先整理您的想法和目标。",
		descriptionEn: "Tools are secondary. We organize your thoughts and goals first.",
		displayOrder:  1,
		items: []seedItem{
			{
				icon:      "User",
				titleKo:   "개인의 목표와 사고 구조 먼저 정리",
				titleZh:   "首先整理个人目标和思维结构",
				titleEn:   "Organize Personal Goals and Thinking Structure First",
				contentKo: "도구는 그 다음 문제입니다. 당신의 생각이 먼저입니다.",
				contentZh: "工具是次要问题。首先是您的想法。",
				contentEn: "Tools are secondary. Your thoughts come first.",
			},
			{
				icon:      "CheckCircle",
				titleKo:   "\"진짜 AI가 필요한지\"부터 판단",
				titleZh:   "首先判断\"是否真的需要AI\"",
				titleEn:   "Determine \"Do You Really Need AI\" First",
				contentKo: "AI가 만능 해결사는 아닙니다. 현재 상황에서 AI가 진짜 필요한지 함께 진단합니다.",
				contentZh: "AI不是万能的解决方案。我们一起诊断在当前情况下是否真的需要AI。",
				contentEn: "AI is not a universal solution. We diagnose together whether AI is really needed in your current situation.",
			},
			{
				icon:      "TrendingUp",
				titleKo:   "필요할 때마다 다음 단계로 진행",
				titleZh:   "根据需要进入下一阶段",
				titleEn:   "Move to the Next Stage as Needed",
				contentKo: "1차 미팅 후, 필요하면 다음 단계로 진행합니다. 불필요한 과정은 건너뜁니다.",
				contentZh: "第一次会议后，如果需要，我们将进入下一阶段。跳过不必要的过程。",
				contentEn: "After the first meeting, we move to the next stage if needed. We skip unnecessary processes.",
			},
		},
	},
	{
		sectionType:   "corporate",
		titleKo:       "조직을 위한 AI 코칭: 3가지 약속",
		titleZh:       "面向组织的AI辅导：3项承诺",
		titleEn:       "AI Coaching for Organizations: 3 Commitments",
		descriptionKo: "팀의 업무 흐름에 맞는 AI 활용법을 함께 설계합니다.",
		descriptionZh: "共同设计适合团队工作流程的AI应用方法。",
		descriptionEn: "We design AI adoption that fits how your team actually works.",
		displayOrder:  2,
		items: []seedItem{
			{
				icon:      "Building",
				titleKo:   "조직의 업무 구조 진단부터 시작",
				titleZh:   "从诊断组织的工作结构开始",
				titleEn:   "Start by Diagnosing Your Organization's Workflow",
				contentKo: "부서별 업무 흐름을 먼저 파악한 뒤 AI 적용 지점을 찾습니다.",
				contentZh: "先了解各部门的工作流程，再寻找AI的应用点。",
				contentEn: "We map each team's workflow first, then find where AI fits.",
			},
			{
				icon:      "Users",
				titleKo:   "실무자 눈높이에 맞춘 교육",
				titleZh:   "符合实务人员水平的培训",
				titleEn:   "Training Matched to Practitioners",
				contentKo: "직급과 역할에 맞춰 교육 난이도와 사례를 조정합니다.",
				contentZh: "根据职级和角色调整培训难度和案例。",
				contentEn: "Difficulty and examples are adjusted to each role and level.",
			},
			{
				icon:      "Target",
				titleKo:   "측정 가능한 성과 목표 설정",
				titleZh:   "设定可衡量的成果目标",
				titleEn:   "Set Measurable Outcome Goals",
				contentKo: "도입 전후를 비교할 수 있는 지표를 함께 정의합니다.",
				contentZh: "共同定义可以比较导入前后的指标。",
				contentEn: "We define metrics that compare before and after adoption.",
			},
		},
	},
}

// EnsureDefaultContent seeds the personal and corporate sections with
// their three items on first boot. Idempotent.
func EnsureDefaultContent(db *sqlx.DB) error {
	for _, seed := range defaultSections {
		existing, err := SectionByType(db, seed.sectionType)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		var sectionID int64
		err = db.Get(&sectionID, `
INSERT INTO content_sections (
  section_type, title_ko, title_zh, title_en,
  description_ko, description_zh, description_en, display_order, is_active
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'active')
RETURNING id
`, seed.sectionType, seed.titleKo, seed.titleZh, seed.titleEn,
			seed.descriptionKo, seed.descriptionZh, seed.descriptionEn, seed.displayOrder)
		if err != nil {
			return err
		}
		for order, item := range seed.items {
			_, err = db.Exec(`
INSERT INTO content_items (
  section_id, icon_name, title_ko, title_zh, title_en,
  content_ko, content_zh, content_en, display_order
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`, sectionID, item.icon, item.titleKo, item.titleZh, item.titleEn,
				item.contentKo, item.contentZh, item.contentEn, order+1)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
