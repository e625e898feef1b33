package main

import (
	"fintrack/config"
	"fintrack/database"
	authRoutes "fintrack/routers/authRoutes"
	dashboardRoutes "fintrack/routers/dashboardRoutes"
	expenseRoutes "fintrack/routers/expenseRoutes"
	incomeRoutes "fintrack/routers/incomeRoutes"
	"fintrack/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded profile images
	app.Static("/uploads", "./"+config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	incomeRoutes.SetupIncomeRoutes(app)
	expenseRoutes.SetupExpenseRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	if config.AppConfig.EnableMonthlyReport {
		utils.InitializeReportScheduler()
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
