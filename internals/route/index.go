// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"fct_backend/internals/features/catalog/facade"
	familyRoute "fct_backend/internals/features/catalog/families/route"
	workshopRoute "fct_backend/internals/features/catalog/workshops/route"
	evaluationRoute "fct_backend/internals/features/evaluations/student_evaluations/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB, svc *facade.Service) {
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== CATALOG =====================
	log.Println("[INFO] Setting up FamilyRoutes...")
	familyRoute.FamilyRoutes(api, svc)

	log.Println("[INFO] Setting up WorkshopRoutes...")
	workshopRoute.WorkshopRoutes(api, svc)

	// ===================== EVALUATIONS =====================
	log.Println("[INFO] Setting up StudentEvaluationRoutes...")
	evaluationRoute.StudentEvaluationRoutes(api, svc)
}
