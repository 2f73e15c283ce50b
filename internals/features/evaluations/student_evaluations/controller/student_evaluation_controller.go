// file: internals/features/evaluations/student_evaluations/controller/student_evaluation_controller.go
package controller

import (
	"context"
	"strconv"
	"strings"

	"fct_backend/internals/features/evaluations/student_evaluations/dto"
	"fct_backend/internals/features/evaluations/student_evaluations/model"
	"fct_backend/internals/features/evaluations/student_evaluations/repository"
	helper "fct_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type EvaluationService interface {
	ListEvaluationsByInternship(ctx context.Context, internshipID uint) ([]model.StudentEvaluationModel, error)
	GetEvaluation(ctx context.Context, id uint) (model.StudentEvaluationModel, error)
	CreateEvaluation(ctx context.Context, in repository.NewEvaluation) (model.StudentEvaluationModel, error)
	UpdateEvaluation(ctx context.Context, id uint, p repository.EvaluationPatch) (model.StudentEvaluationModel, error)
}

type StudentEvaluationController struct {
	Svc EvaluationService
}

func NewStudentEvaluationController(svc EvaluationService) *StudentEvaluationController {
	return &StudentEvaluationController{Svc: svc}
}

// parseUintParam: id numerik > 0, selain itu 400.
func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" debe ser un número positivo")
	}
	return uint(n), nil
}

// GET /api/evaluations/by-internship/:internshipId
func (ctl *StudentEvaluationController) ListByInternship(c *fiber.Ctx) error {
	internshipID, err := parseUintParam(c, "internshipId")
	if err != nil {
		return err
	}
	rows, err := ctl.Svc.ListEvaluationsByInternship(c.UserContext(), internshipID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Evaluaciones", dto.FromModels(rows), len(rows))
}

// GET /api/evaluations/:id
func (ctl *StudentEvaluationController) GetByID(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ctl.Svc.GetEvaluation(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Evaluación", dto.FromModel(m))
}

// POST /api/evaluations
func (ctl *StudentEvaluationController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload no válido")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := ctl.Svc.CreateEvaluation(c.UserContext(), req.ToNew())
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Evaluación creada", dto.FromModel(m))
}

// PUT|PATCH /api/evaluations/:id (merge; null = kosongkan)
func (ctl *StudentEvaluationController) Update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStudentEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload no válido")
	}
	patch, errs := req.ToPatch()
	if errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := ctl.Svc.UpdateEvaluation(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Evaluación actualizada", dto.FromModel(m))
}
