// file: internals/features/catalog/families/route/family_route.go
package route

import (
	"fct_backend/internals/features/catalog/families/controller"

	"github.com/gofiber/fiber/v2"
)

// FamilyRoutes dipasang di bawah group /api.
func FamilyRoutes(api fiber.Router, svc controller.FamilyService) {
	ctl := controller.NewFamilyController(svc)

	g := api.Group("/families")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
}
