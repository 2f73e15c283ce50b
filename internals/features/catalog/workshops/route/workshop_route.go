// file: internals/features/catalog/workshops/route/workshop_route.go
package route

import (
	"fct_backend/internals/features/catalog/workshops/controller"

	"github.com/gofiber/fiber/v2"
)

func WorkshopRoutes(api fiber.Router, svc controller.WorkshopService) {
	ctl := controller.NewWorkshopController(svc)

	g := api.Group("/workshops")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)

	// soft status transitions
	g.Post("/:id/activate", ctl.Activate)
	g.Post("/:id/deactivate", ctl.Deactivate)
}
