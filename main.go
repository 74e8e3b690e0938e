package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"photostudio-backend/config"
	"photostudio-backend/routes"
	"photostudio-backend/services"
	"photostudio-backend/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	settings := config.Load()

	repo := store.NewRepository(settings.DataDir)
	report := repo.Init()
	for _, row := range report.Skipped {
		log.Printf("[STORE] skipped %s:%d: %s", row.File, row.Line, row.Reason)
	}

	booking := services.NewBookingService(repo)
	reports := services.NewReportService(repo)

	reminders := services.NewReminderService(repo)
	reminders.StartScheduler()

	// Flush the snapshot on shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		if err := repo.Flush(); err != nil {
			log.Printf("Flush on exit failed: %v", err)
		}
		os.Exit(0)
	}()

	r := routes.SetupRouter(repo, booking, reports)
	printRoutes(r)
	r.Run(":" + settings.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
