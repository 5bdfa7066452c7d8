package models

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	OpenID       string    `db:"open_id" json:"openId"`
	Name         *string   `db:"name" json:"name"`
	Email        *string   `db:"email" json:"email"`
	LoginMethod  *string   `db:"login_method" json:"loginMethod"`
	Role         string    `db:"role" json:"role"`
	LastSignedIn time.Time `db:"last_signed_in" json:"lastSignedIn"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Instructor keeps the legacy single-language columns next to the
// ko/zh/en triplicates; all content columns are nullable.
type Instructor struct {
	ID          int64     `db:"id" json:"id"`
	Name        *string   `db:"name" json:"name"`
	Title       *string   `db:"title" json:"title"`
	Bio         *string   `db:"bio" json:"bio"`
	Expertise   *string   `db:"expertise" json:"expertise"`
	NameKo      *string   `db:"name_ko" json:"nameKo"`
	NameZh      *string   `db:"name_zh" json:"nameZh"`
	NameEn      *string   `db:"name_en" json:"nameEn"`
	TitleKo     *string   `db:"title_ko" json:"titleKo"`
	TitleZh     *string   `db:"title_zh" json:"titleZh"`
	TitleEn     *string   `db:"title_en" json:"titleEn"`
	BioKo       *string   `db:"bio_ko" json:"bioKo"`
	BioZh       *string   `db:"bio_zh" json:"bioZh"`
	BioEn       *string   `db:"bio_en" json:"bioEn"`
	ExpertiseKo *string   `db:"expertise_ko" json:"expertiseKo"`
	ExpertiseZh *string   `db:"expertise_zh" json:"expertiseZh"`
	ExpertiseEn *string   `db:"expertise_en" json:"expertiseEn"`
	PhotoURL    *string   `db:"photo_url" json:"photoUrl"`
	PhotoKey    *string   `db:"photo_key" json:"photoKey"`
	Email       *string   `db:"email" json:"email"`
	Phone       *string   `db:"phone" json:"phone"`
	ProfileLink *string   `db:"profile_link" json:"profileLink"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type Proposal struct {
	ID          int64     `db:"id" json:"id"`
	Type        string    `db:"type" json:"type"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	FileURL     string    `db:"file_url" json:"fileUrl"`
	FileKey     string    `db:"file_key" json:"fileKey"`
	FileName    *string   `db:"file_name" json:"fileName"`
	FileSize    *int64    `db:"file_size" json:"fileSize"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type Inquiry struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Phone      *string   `db:"phone" json:"phone"`
	Type       string    `db:"type" json:"type"`
	Message    string    `db:"message" json:"message"`
	Status     string    `db:"status" json:"status"`
	AdminNotes *string   `db:"admin_notes" json:"adminNotes"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

type ActivityLog struct {
	ID        int64     `db:"id" json:"id"`
	IPAddress *string   `db:"ip_address" json:"ipAddress"`
	UserAgent *string   `db:"user_agent" json:"userAgent"`
	PageURL   *string   `db:"page_url" json:"pageUrl"`
	PagePath  *string   `db:"page_path" json:"pagePath"`
	Referrer  *string   `db:"referrer" json:"referrer"`
	Action    *string   `db:"action" json:"action"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

type ContentSection struct {
	ID            int64     `db:"id" json:"id"`
	SectionType   string    `db:"section_type" json:"sectionType"`
	TitleKo       string    `db:"title_ko" json:"titleKo"`
	TitleZh       string    `db:"title_zh" json:"titleZh"`
	TitleEn       string    `db:"title_en" json:"titleEn"`
	DescriptionKo string    `db:"description_ko" json:"descriptionKo"`
	DescriptionZh string    `db:"description_zh" json:"descriptionZh"`
	DescriptionEn string    `db:"description_en" json:"descriptionEn"`
	DisplayOrder  int       `db:"display_order" json:"displayOrder"`
	IsActive      string    `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

type ContentItem struct {
	ID           int64     `db:"id" json:"id"`
	SectionID    int64     `db:"section_id" json:"sectionId"`
	IconName     string    `db:"icon_name" json:"iconName"`
	TitleKo      string    `db:"title_ko" json:"titleKo"`
	TitleZh      string    `db:"title_zh" json:"titleZh"`
	TitleEn      string    `db:"title_en" json:"titleEn"`
	ContentKo    string    `db:"content_ko" json:"contentKo"`
	ContentZh    string    `db:"content_zh" json:"contentZh"`
	ContentEn    string    `db:"content_en" json:"contentEn"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// AiTrendSection is a singleton by convention; the access layer only ever
// reads and updates the first row.
type AiTrendSection struct {
	ID         int64     `db:"id" json:"id"`
	TitleKo    *string   `db:"title_ko" json:"titleKo"`
	TitleZh    *string   `db:"title_zh" json:"titleZh"`
	TitleEn    *string   `db:"title_en" json:"titleEn"`
	SubtitleKo *string   `db:"subtitle_ko" json:"subtitleKo"`
	SubtitleZh *string   `db:"subtitle_zh" json:"subtitleZh"`
	SubtitleEn *string   `db:"subtitle_en" json:"subtitleEn"`
	LinkURL    *string   `db:"link_url" json:"linkUrl"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

type StatusSample struct {
	ID                int64     `db:"id" json:"-"`
	CapturedAt        time.Time `db:"captured_at" json:"capturedAt"`
	VisitsToday       int64     `db:"visits_today" json:"visitsToday"`
	UniqueIPsToday    int64     `db:"unique_ips_today" json:"uniqueIpsToday"`
	InquiriesNew      int64     `db:"inquiries_new" json:"inquiriesNew"`
	ProcessRSSBytes   int64     `db:"process_rss_bytes" json:"processRssBytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes" json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes" json:"systemMemoryUsedBytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load" json:"processCpuLoad"`
	SystemCpuLoad     float64   `db:"system_cpu_load" json:"systemCpuLoad"`
}
