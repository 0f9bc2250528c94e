// Command planserver runs the floor plan storage server.
package main

import (
	"log"

	"floorsketch/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to database
	db, err := server.ConnectDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := server.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create and configure Fiber app
	app := server.NewServer()

	// Register routes
	server.Register(app, server.NewPlanHandler(server.NewPlanRepo(db)))

	// Start server
	if err := server.Start(app); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
