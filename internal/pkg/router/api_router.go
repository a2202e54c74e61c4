package router

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/jmk307/hellmap-api/app/controllers"
	"github.com/jmk307/hellmap-api/internal/pkg/env"
	"github.com/jmk307/hellmap-api/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:     limiterMax(),
		Storage: limiterStorage(),
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	auth := api.Group("/auth")
	auth.Get("/", controllers.HandleNicknameCheck)
	auth.Post("/google", controllers.HandleGoogleLogin)
	auth.Post("/kakao", controllers.HandleKakaoLogin)
	auth.Post("/signup", controllers.HandleSignup)

	reports := api.Group("/reports")
	// public map data; everything else on /reports needs a token
	reports.Get("/regions", controllers.HandleGetRegions)
	reports.Get("/markers", controllers.HandleGetMarkers)
	reports.Get("/", middleware.AuthRequired, controllers.HandleGetReports)
	reports.Post("/", middleware.AuthRequired, controllers.HandleCreateReport)
	reports.Put("/:id", middleware.AuthRequired, controllers.HandleUpdateReport)
	reports.Patch("/:id", middleware.AuthRequired, controllers.HandlePatchReport)
	reports.Post("/:id/likes", middleware.AuthRequired, controllers.HandleToggleLike)

	feedbacks := api.Group("/feedbacks", middleware.AuthRequired)
	feedbacks.Get("/", controllers.HandleGetFeedbacks)
	feedbacks.Post("/", controllers.HandleCreateFeedback)
	feedbacks.Patch("/:id", middleware.AdminRequired, controllers.HandleReviewFeedback)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func limiterMax() int {
	max, err := strconv.Atoi(env.GetEnv("API_RATE_LIMIT", "120"))
	if err != nil || max <= 0 {
		return 120
	}
	return max
}

// limiterStorage backs the rate limiter with Redis so limits hold across
// instances. Falls back to the in-memory default when Redis is not
// configured (tests, local runs).
func limiterStorage() fiber.Storage {
	host := env.GetEnv("CACHE_HOST", "")
	if host == "" {
		return nil
	}
	port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		port = 6379
	}
	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		Database: 1,
	})
}
