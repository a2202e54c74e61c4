package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jmk307/hellmap-api/app/controllers"
	"github.com/jmk307/hellmap-api/app/models"
	"github.com/jmk307/hellmap-api/app/repository"
	"github.com/jmk307/hellmap-api/internal/pkg/cache"
	"github.com/jmk307/hellmap-api/internal/pkg/database"
	"github.com/jmk307/hellmap-api/internal/pkg/env"
	"github.com/jmk307/hellmap-api/internal/pkg/jobqueue"
	"github.com/jmk307/hellmap-api/internal/pkg/mediastore"
	"github.com/jmk307/hellmap-api/internal/pkg/router"
	"github.com/jmk307/hellmap-api/internal/pkg/token"
	"github.com/jmk307/hellmap-api/internal/pkg/upload"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	repository.InitializeFactory(database.GetDB())

	// Fail fast on a missing JWT secret instead of on the first login.
	token.Default()

	ensureAdminAccount()

	// Media storage is optional: without it reports work text-only.
	var store *mediastore.Store
	if cfg := mediastore.ConfigFromEnv(); cfg.IsEnabled() {
		s, err := mediastore.NewStore(cfg)
		if err != nil {
			log.Fatalf("Media storage configured but unreachable: %v", err)
		}
		store = s
	} else {
		log.Println("Media storage is not configured, attachments are disabled")
	}
	controllers.SetMediaStore(store)

	manager := jobqueue.GetManager()
	manager.SetDeps(jobqueue.DefaultDeps(store))
	manager.Start()

	// multipart submissions carry up to 50 MB of media plus the JSON part
	app := fiber.New(fiber.Config{
		BodyLimit: upload.MaxMediaBytes + 1024*1024,
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "admin"),
		},
	}), monitor.New())

	// SWAGGER / OPENAPI
	if basePath := findBasePath(); basePath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/docs/api/",
			FilePath: basePath + "public/docs/v1/openapi.yml",
			Path:     "v1",
		}))
	}

	// ROUTER
	router.InstallRouter(app)

	return app
}

// findBasePath locates the project root so the app runs both from the root
// and from cmd/hellmap.
func findBasePath() string {
	for _, path := range []string{"./", "../../", "../../../"} {
		if _, err := os.Stat(path + "public/docs"); !os.IsNotExist(err) {
			return path
		}
	}
	return ""
}

// ensureAdminAccount promotes the configured seed admin. Role checks happen
// server-side against the database; the nickname here only seeds the role.
func ensureAdminAccount() {
	nickname := env.GetEnv("ADMIN_NICKNAME", "몽낙년")
	if nickname == "" {
		return
	}

	db := database.GetDB()
	user, err := models.FindUserByNickname(db, nickname)
	if err != nil {
		return
	}
	if user.Role != models.ROLE_ADMIN {
		user.Role = models.ROLE_ADMIN
		if err := db.Save(user).Error; err != nil {
			log.Printf("Failed to promote admin account %s: %v", nickname, err)
		} else {
			log.Printf("Promoted %s to admin", nickname)
		}
	}
}
