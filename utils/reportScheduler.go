package utils

import (
	"fintrack/database"
	"fintrack/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeReportScheduler sets up the monthly summary email scheduler
func InitializeReportScheduler() {
	log.Println("[REPORT-SCHEDULER] Initializing monthly report scheduler...")

	c := cron.New()

	// Run on the 1st of every month at 8 AM
	c.AddFunc("0 8 1 * *", func() {
		log.Println("[REPORT-SCHEDULER] Running monthly summary run...")
		SendMonthlySummaries(time.Now())
	})

	c.Start()
	log.Println("[REPORT-SCHEDULER] Monthly report scheduler started - runs on the 1st at 8 AM")
}

// SendMonthlySummaries mails every user their previous month's totals.
// Users with no activity in that month are skipped.
func SendMonthlySummaries(now time.Time) {
	db := database.Database.Db

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := monthStart.AddDate(0, -1, 0)

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		log.Printf("[REPORT-SCHEDULER] Error fetching users: %v", err)
		return
	}

	log.Printf("[REPORT-SCHEDULER] Building summaries for %d users", len(users))

	for _, user := range users {
		var income, expense float64

		if err := db.Model(&models.Income{}).
			Where("user_id = ? AND date >= ? AND date < ?", user.ID, prevStart, monthStart).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&income).Error; err != nil {
			log.Printf("[REPORT-SCHEDULER] Error summing income for user %d: %v", user.ID, err)
			continue
		}

		if err := db.Model(&models.Expense{}).
			Where("user_id = ? AND date >= ? AND date < ?", user.ID, prevStart, monthStart).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&expense).Error; err != nil {
			log.Printf("[REPORT-SCHEDULER] Error summing expenses for user %d: %v", user.ID, err)
			continue
		}

		if income == 0 && expense == 0 {
			continue
		}

		month := prevStart.Format("January 2006")
		SendMonthlySummaryEmail(user.Email, user.FullName, month, income, expense, income-expense)
		log.Printf("[REPORT-SCHEDULER] Sent %s summary to %s", month, user.Email)
	}
}
