package incomeController

import (
	"encoding/json"
	"fintrack/database"
	"fintrack/models"
	incomeValidators "fintrack/validators/income"
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

// newTestApp wires the income routes behind a stub auth middleware that
// resolves every request to the given user
func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	auth := func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}
	app.Get("/income", auth, IncomeList)
	app.Post("/income/add", incomeValidators.AddIncome(), auth, AddIncome)
	app.Get("/income/downloadcsv", auth, DownloadIncomeCSV)
	app.Delete("/income/:id", auth, DeleteIncome)
	return app
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, body io.Reader) envelope {
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestAddIncomeAndList(t *testing.T) {
	setupTestDB(t)
	app := newTestApp(1)

	req := httptest.NewRequest("POST", "/income/add", strings.NewReader(
		`{"icon":"💰","source":"Salary","amount":1200.5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest("POST", "/income/add", strings.NewReader(
		`{"icon":"🎁","source":"Gift","amount":50,"date":"2024-01-15"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/income", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	var incomes []models.Income
	require.NoError(t, json.Unmarshal(env.Data, &incomes))
	require.Len(t, incomes, 2)

	// Newest first: the dated record from January sorts after today's
	assert.Equal(t, "Salary", incomes[0].Source)
	assert.Equal(t, "Gift", incomes[1].Source)
	assert.True(t, incomes[1].Date.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestAddIncomeValidation(t *testing.T) {
	setupTestDB(t)
	app := newTestApp(1)

	for name, body := range map[string]string{
		"missing source":  `{"icon":"💰","amount":100}`,
		"missing icon":    `{"source":"Salary","amount":100}`,
		"zero amount":     `{"icon":"💰","source":"Salary","amount":0}`,
		"negative amount": `{"icon":"💰","source":"Salary","amount":-5}`,
		"bad date":        `{"icon":"💰","source":"Salary","amount":100,"date":"15/01/2024"}`,
	} {
		req := httptest.NewRequest("POST", "/income/add", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err, name)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, name)
	}
}

func TestDeleteIncomeOwnership(t *testing.T) {
	db := setupTestDB(t)

	mine := models.Income{UserID: 1, Icon: "💰", Source: "Salary", Amount: 100, Date: time.Now()}
	theirs := models.Income{UserID: 2, Icon: "💰", Source: "Salary", Amount: 200, Date: time.Now()}
	require.NoError(t, db.Create(&mine).Error)
	require.NoError(t, db.Create(&theirs).Error)

	app := newTestApp(1)

	// Deleting another user's record is an authorization failure, not 404
	resp, err := app.Test(httptest.NewRequest("DELETE", "/income/"+itoa(theirs.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var still models.Income
	assert.NoError(t, db.First(&still, theirs.ID).Error, "record must be untouched")

	// Unknown id
	resp, err = app.Test(httptest.NewRequest("DELETE", "/income/99999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Owner delete succeeds
	resp, err = app.Test(httptest.NewRequest("DELETE", "/income/"+itoa(mine.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	err = db.First(&models.Income{}, mine.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDownloadIncomeCSV(t *testing.T) {
	db := setupTestDB(t)

	date := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Income{UserID: 1, Icon: "💰", Source: "Salary", Amount: 1200.5, Date: date}).Error)

	app := newTestApp(1)

	resp, err := app.Test(httptest.NewRequest("GET", "/income/downloadcsv", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(string(body), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Icon,Source,Amount,Date", lines[0])
	assert.Equal(t, `"💰","Salary",1200.5,"2024-03-10T14:30:00Z"`, lines[1])
}

func TestDownloadIncomeCSVEmpty(t *testing.T) {
	setupTestDB(t)
	app := newTestApp(1)

	resp, err := app.Test(httptest.NewRequest("GET", "/income/downloadcsv", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Icon,Source,Amount,Date\n", string(body))
}

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}
