package services

import (
	"log"
	"time"

	"aicoach-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const activityColumns = `
id, ip_address, user_agent, page_url, page_path, referrer, action, timestamp`

type ActivityInput struct {
	IPAddress *string
	UserAgent *string
	PageURL   *string
	PagePath  *string
	Referrer  *string
	Action    *string
}

// RecordActivity writes one page-view or action row. Failures are
// logged and swallowed so a broken log write never fails the request
// that triggered it.
func RecordActivity(db *sqlx.DB, in ActivityInput) {
	_, err := db.Exec(`
INSERT INTO activity_logs (ip_address, user_agent, page_url, page_path, referrer, action)
VALUES ($1, $2, $3, $4, $5, $6)
`, in.IPAddress, in.UserAgent, in.PageURL, in.PagePath, in.Referrer, in.Action)
	if err != nil {
		log.Printf("activity log insert failed: %v", err)
	}
}

func RecentActivity(db *sqlx.DB, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	items := []models.ActivityLog{}
	err := db.Select(&items, `
SELECT `+activityColumns+`
FROM activity_logs
ORDER BY timestamp DESC
LIMIT $1
`, limit)
	return items, err
}

type ActivityStats struct {
	TotalVisits int            `json:"totalVisits"`
	UniqueIPs   int            `json:"uniqueIps"`
	PageViews   map[string]int `json:"pageViews"`
}

// GetActivityStats aggregates the rows in [start, end] in memory: total
// row count, distinct non-empty IPs, and per-path view counts. Rows
// without a page path contribute to the total but not to PageViews.
func GetActivityStats(db *sqlx.DB, start, end time.Time) (ActivityStats, error) {
	rows := []models.ActivityLog{}
	err := db.Select(&rows, `
SELECT `+activityColumns+`
FROM activity_logs
WHERE timestamp >= $1 AND timestamp <= $2
`, start, end)
	if err != nil {
		return ActivityStats{}, err
	}
	ips := map[string]bool{}
	pageViews := map[string]int{}
	for _, row := range rows {
		if row.IPAddress != nil && *row.IPAddress != "" {
			ips[*row.IPAddress] = true
		}
		if row.PagePath != nil && *row.PagePath != "" {
			pageViews[*row.PagePath]++
		}
	}
	return ActivityStats{
		TotalVisits: len(rows),
		UniqueIPs:   len(ips),
		PageViews:   pageViews,
	}, nil
}

// PruneActivity deletes rows older than the cutoff and reports how many
// were removed.
func PruneActivity(db *sqlx.DB, cutoff time.Time) (int64, error) {
	result, err := db.Exec(`DELETE FROM activity_logs WHERE timestamp < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return affected, nil
}
