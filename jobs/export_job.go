package jobs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/LALo99-vk/Photography-Website/services"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const (
	defaultExportSchedule = "0 2 * * *"
	exportTimezone        = "America/New_York"
	exportRetention       = 30 * 24 * time.Hour
)

// ExportJob writes the recurring spreadsheet export of bookings,
// selections and payments. It is constructed explicitly with its store
// and clock so the retention and gating logic is testable without
// waiting on real time.
type ExportJob struct {
	DB  *gorm.DB
	Dir string
	Now func() time.Time

	cron *cron.Cron
}

func NewExportJob(db *gorm.DB, dir string) *ExportJob {
	return &ExportJob{DB: db, Dir: dir, Now: time.Now}
}

// Start registers the recurring trigger from excel_export_schedule and
// fires one run immediately. The enabled flag is checked on every run,
// not here, so flipping auto_excel_export needs no restart.
func (j *ExportJob) Start() error {
	schedule := j.setting(models.SettingExcelExportSchedule)
	if schedule == "" {
		schedule = defaultExportSchedule
	}

	loc, err := time.LoadLocation(exportTimezone)
	if err != nil {
		return fmt.Errorf("load export timezone: %w", err)
	}

	j.cron = cron.New(cron.WithLocation(loc))
	if _, err := j.cron.AddFunc(schedule, j.Run); err != nil {
		return fmt.Errorf("register export schedule %q: %w", schedule, err)
	}
	j.cron.Start()
	log.Printf("Excel export scheduler started with schedule: %s", schedule)

	go j.Run()
	return nil
}

func (j *ExportJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// Run performs one export. Errors are logged and swallowed; the next
// scheduled tick is the only retry.
func (j *ExportJob) Run() {
	if j.setting(models.SettingAutoExcelExport) != "true" {
		log.Println("Auto Excel export is disabled")
		return
	}

	if err := os.MkdirAll(j.Dir, 0o755); err != nil {
		log.Printf("Automatic Excel export error: %v", err)
		return
	}

	workbook, err := services.BuildExportWorkbook(j.DB, services.ExportFilter{})
	if err != nil {
		log.Printf("Automatic Excel export error: %v", err)
		return
	}

	filename := fmt.Sprintf("photography_export_%s.xlsx", j.Now().Format("2006-01-02"))
	if err := workbook.SaveAs(filepath.Join(j.Dir, filename)); err != nil {
		log.Printf("Automatic Excel export error: %v", err)
		return
	}
	log.Printf("Excel export completed: %s", filename)

	j.PruneOldExports()
}

// PruneOldExports deletes export files whose modification time is more
// than 30 days before now.
func (j *ExportJob) PruneOldExports() {
	cutoff := j.Now().Add(-exportRetention)

	entries, err := os.ReadDir(j.Dir)
	if err != nil {
		log.Printf("Export cleanup error: %v", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(j.Dir, entry.Name())); err != nil {
				log.Printf("Export cleanup error: %v", err)
				continue
			}
			log.Printf("Deleted old export: %s", entry.Name())
		}
	}
}

func (j *ExportJob) setting(key string) string {
	var setting models.Setting
	if err := j.DB.First(&setting, "setting_key = ?", key).Error; err != nil {
		return ""
	}
	return setting.SettingValue
}
