package services

import (
	"context"
	"os"
	"time"

	"aicoach-backend-go/internal/models"

	"github.com/gorilla/websocket"
	"github.com/jmoiron/sqlx"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// CaptureStatusSample joins today's visitor counters with process and
// system load into one dashboard sample and persists it.
func CaptureStatusSample(db *sqlx.DB) (models.StatusSample, error) {
	var visits, uniqueIPs, inquiriesNew int64
	if err := db.Get(&visits, `SELECT count(*) FROM activity_logs WHERE timestamp >= date_trunc('day', now())`); err != nil {
		return models.StatusSample{}, err
	}
	if err := db.Get(&uniqueIPs, `
SELECT count(DISTINCT ip_address)
FROM activity_logs
WHERE timestamp >= date_trunc('day', now()) AND ip_address IS NOT NULL AND ip_address <> ''
`); err != nil {
		return models.StatusSample{}, err
	}
	if err := db.Get(&inquiriesNew, `SELECT count(*) FROM inquiries WHERE status = 'new'`); err != nil {
		return models.StatusSample{}, err
	}

	proc, _ := process.NewProcess(int32(os.Getpid()))
	memStat, _ := mem.VirtualMemory()
	processRSS := int64(0)
	processCPU := float64(0)
	if proc != nil {
		rss, _ := proc.MemoryInfo()
		if rss != nil {
			processRSS = int64(rss.RSS)
		}
		cpuPerc, _ := proc.CPUPercent()
		processCPU = cpuPerc / 100.0
	}
	sysCPU, _ := cpu.Percent(0, false)
	sysCPUValue := 0.0
	if len(sysCPU) > 0 {
		sysCPUValue = sysCPU[0] / 100.0
	}
	sample := models.StatusSample{
		CapturedAt:      time.Now().UTC(),
		VisitsToday:     visits,
		UniqueIPsToday:  uniqueIPs,
		InquiriesNew:    inquiriesNew,
		ProcessRSSBytes: processRSS,
		ProcessCpuLoad:  processCPU,
		SystemCpuLoad:   sysCPUValue,
	}
	if memStat != nil {
		sample.SystemMemoryTotal = int64(memStat.Total)
		sample.SystemMemoryUsed = int64(memStat.Total - memStat.Available)
	}

	_, err := db.Exec(`
INSERT INTO status_samples (
  captured_at, visits_today, unique_ips_today, inquiries_new,
  process_rss_bytes, system_memory_total_bytes, system_memory_used_bytes,
  process_cpu_load, system_cpu_load
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`, sample.CapturedAt, sample.VisitsToday, sample.UniqueIPsToday, sample.InquiriesNew,
		sample.ProcessRSSBytes, sample.SystemMemoryTotal, sample.SystemMemoryUsed,
		sample.ProcessCpuLoad, sample.SystemCpuLoad)
	if err != nil {
		return models.StatusSample{}, err
	}
	return sample, nil
}

// LatestStatusSamples returns up to limit samples, oldest first.
func LatestStatusSamples(db *sqlx.DB, limit int) ([]models.StatusSample, error) {
	rows := []models.StatusSample{}
	if err := db.Select(&rows, `
SELECT id, captured_at, visits_today, unique_ips_today, inquiries_new,
       process_rss_bytes, system_memory_total_bytes, system_memory_used_bytes,
       process_cpu_load, system_cpu_load
FROM status_samples
ORDER BY captured_at DESC
LIMIT $1
`, limit); err != nil {
		return nil, err
	}
	items := make([]models.StatusSample, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		items = append(items, rows[i])
	}
	return items, nil
}

// StatsHub fans dashboard samples out to the admin websocket clients.
type StatsHub struct {
	clients map[*websocket.Conn]bool
	ch      chan models.StatusSample
}

func NewStatsHub() *StatsHub {
	return &StatsHub{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan models.StatusSample, 16),
	}
}

func (h *StatsHub) Run(ctx context.Context) {
	for {
		select {
		case sample := <-h.ch:
			for conn := range h.clients {
				_ = conn.WriteJSON(sample)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *StatsHub) Broadcast(sample models.StatusSample) {
	select {
	case h.ch <- sample:
	default:
	}
}

func (h *StatsHub) Add(conn *websocket.Conn) {
	h.clients[conn] = true
}

func (h *StatsHub) Remove(conn *websocket.Conn) {
	delete(h.clients, conn)
}
