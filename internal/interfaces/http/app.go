package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp construye la app Fiber con los middlewares base, en orden fijo:
// recover, headers de seguridad y CORS. Las rutas se registran aparte con Router.
func NewApp(cfg fiber.Config) *fiber.App {
	app := fiber.New(cfg)
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	return app
}
