package expenseController

import (
	"encoding/json"
	"fintrack/database"
	"fintrack/models"
	expenseValidators "fintrack/validators/expense"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Income{}, &models.Expense{}))
	database.Database = database.DbInstance{Db: db}
	return db
}

func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	auth := func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}
	app.Get("/expense", auth, ExpenseList)
	app.Post("/expense/add", expenseValidators.AddExpense(), auth, AddExpense)
	app.Get("/expense/downloadcsv", auth, DownloadExpenseCSV)
	app.Delete("/expense/:id", auth, DeleteExpense)
	return app
}

func TestAddExpenseAndList(t *testing.T) {
	setupTestDB(t)
	app := newTestApp(1)

	req := httptest.NewRequest("POST", "/expense/add", strings.NewReader(
		`{"icon":"🏠","category":"Rent","amount":800,"date":"2024-03-01"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/expense", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env struct {
		Data []models.Expense `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "Rent", env.Data[0].Category)
	assert.Equal(t, 800.0, env.Data[0].Amount)
}

func TestDeleteExpenseOwnership(t *testing.T) {
	db := setupTestDB(t)

	theirs := models.Expense{UserID: 2, Icon: "🍔", Category: "Food", Amount: 30, Date: time.Now()}
	require.NoError(t, db.Create(&theirs).Error)

	app := newTestApp(1)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/expense/"+strconv.Itoa(int(theirs.ID)), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	assert.NoError(t, db.First(&models.Expense{}, theirs.ID).Error, "record must be untouched")
}

func TestDownloadExpenseCSVHeader(t *testing.T) {
	setupTestDB(t)
	app := newTestApp(1)

	resp, err := app.Test(httptest.NewRequest("GET", "/expense/downloadcsv", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Icon,Category,Amount,Date\n", string(body))
}
