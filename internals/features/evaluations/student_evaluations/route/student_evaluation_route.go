// file: internals/features/evaluations/student_evaluations/route/student_evaluation_route.go
package route

import (
	"fct_backend/internals/features/evaluations/student_evaluations/controller"

	"github.com/gofiber/fiber/v2"
)

func StudentEvaluationRoutes(api fiber.Router, svc controller.EvaluationService) {
	ctl := controller.NewStudentEvaluationController(svc)

	g := api.Group("/evaluations")
	g.Get("/by-internship/:internshipId", ctl.ListByInternship)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)
}
