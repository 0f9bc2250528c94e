package server

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewServer creates the Fiber app with the global middleware stack.
func NewServer() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		AppName:      "Floor Sketch Plan Server",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	return app
}

// Register wires the plan routes onto the app.
func Register(app *fiber.App, handler *PlanHandler) {
	v1 := app.Group("/api/v1")

	plans := v1.Group("/plans")
	plans.Post("/", handler.CreatePlan)
	plans.Get("/", handler.ListPlans)
	plans.Get("/:id", handler.GetPlan)
	plans.Put("/:id", handler.UpdatePlan)
	plans.Delete("/:id", handler.DeletePlan)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error: %v", err)

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// Start listens on the PORT environment variable, defaulting to 3000.
func Start(app *fiber.App) error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("plan server starting on port %s", port)
	return app.Listen(":" + port)
}
