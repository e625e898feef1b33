package dashboardController

import (
	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"
	"log"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DashboardTransaction is a record from either collection tagged with
// its type for the recent-activity feed
type DashboardTransaction struct {
	ID       uint      `json:"id"`
	Type     string    `json:"type"`
	Icon     string    `json:"icon"`
	Source   string    `json:"source,omitempty"`
	Category string    `json:"category,omitempty"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}

// DashboardResponse aggregates a user's records at request time
type DashboardResponse struct {
	TotalIncome        float64                `json:"totalIncome"`
	TotalExpense       float64                `json:"totalExpense"`
	Balance            float64                `json:"balance"`
	TotalIncomeLast30  float64                `json:"totalIncomeLast30"`
	TotalExpenseLast30 float64                `json:"totalExpenseLast30"`
	IncomeLast30       []models.Income        `json:"incomeLast30"`
	ExpenseLast30      []models.Expense       `json:"expenseLast30"`
	IncomeLast60       []models.Income        `json:"incomeLast60"`
	Last5Transactions  []DashboardTransaction `json:"last5Transactions"`
}

// GetDashboardData returns totals, trailing-window sums and the merged
// recent-activity feed for the authenticated user
func GetDashboardData(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var incomes []models.Income
	if err := db.Where("user_id = ?", userId).Find(&incomes).Error; err != nil {
		log.Printf("Error fetching incomes for dashboard: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load dashboard!", nil)
	}

	var expenses []models.Expense
	if err := db.Where("user_id = ?", userId).Find(&expenses).Error; err != nil {
		log.Printf("Error fetching expenses for dashboard: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load dashboard!", nil)
	}

	data := BuildDashboard(incomes, expenses, time.Now())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard data.", data)
}

// BuildDashboard computes the aggregation over already-fetched records.
// Pure so the windowing and merge behaviour is testable without a store.
func BuildDashboard(incomes []models.Income, expenses []models.Expense, now time.Time) DashboardResponse {
	last30 := now.AddDate(0, 0, -30)
	last60 := now.AddDate(0, 0, -60)

	resp := DashboardResponse{
		IncomeLast30:      []models.Income{},
		ExpenseLast30:     []models.Expense{},
		IncomeLast60:      []models.Income{},
		Last5Transactions: []DashboardTransaction{},
	}

	for _, income := range incomes {
		resp.TotalIncome += income.Amount
		if !income.Date.Before(last30) {
			resp.TotalIncomeLast30 += income.Amount
			resp.IncomeLast30 = append(resp.IncomeLast30, income)
		}
		if !income.Date.Before(last60) {
			resp.IncomeLast60 = append(resp.IncomeLast60, income)
		}
	}

	for _, expense := range expenses {
		resp.TotalExpense += expense.Amount
		if !expense.Date.Before(last30) {
			resp.TotalExpenseLast30 += expense.Amount
			resp.ExpenseLast30 = append(resp.ExpenseLast30, expense)
		}
	}

	resp.Balance = resp.TotalIncome - resp.TotalExpense

	sort.Slice(resp.IncomeLast60, func(i, j int) bool {
		a, b := resp.IncomeLast60[i], resp.IncomeLast60[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})

	// Merge both collections, newest first. Equal dates break on id
	// descending so the feed is reproducible.
	merged := make([]DashboardTransaction, 0, len(incomes)+len(expenses))
	for _, income := range incomes {
		merged = append(merged, DashboardTransaction{
			ID:     income.ID,
			Type:   "Income",
			Icon:   income.Icon,
			Source: income.Source,
			Amount: income.Amount,
			Date:   income.Date,
		})
	}
	for _, expense := range expenses {
		merged = append(merged, DashboardTransaction{
			ID:       expense.ID,
			Type:     "Expense",
			Icon:     expense.Icon,
			Category: expense.Category,
			Amount:   expense.Amount,
			Date:     expense.Date,
		})
	}

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.After(merged[j].Date)
		}
		if merged[i].ID != merged[j].ID {
			return merged[i].ID > merged[j].ID
		}
		// ids can collide across the two collections
		return merged[i].Type < merged[j].Type
	})

	if len(merged) > 5 {
		merged = merged[:5]
	}
	resp.Last5Transactions = merged

	return resp
}
