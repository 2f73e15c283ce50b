// file: internals/features/catalog/workshops/controller/workshop_controller.go
package controller

import (
	"context"
	"strings"

	"fct_backend/internals/constants"
	"fct_backend/internals/features/catalog/workshops/dto"
	"fct_backend/internals/features/catalog/workshops/model"
	"fct_backend/internals/features/catalog/workshops/repository"
	helper "fct_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type WorkshopService interface {
	ListWorkshops(ctx context.Context, f repository.WorkshopFilter) ([]model.WorkshopWithFamily, error)
	GetWorkshop(ctx context.Context, id string) (model.WorkshopWithFamily, error)
	CreateWorkshop(ctx context.Context, in repository.NewWorkshop) (model.WorkshopWithFamily, error)
	UpdateWorkshop(ctx context.Context, id string, p repository.WorkshopPatch) (model.WorkshopWithFamily, error)
	ActivateWorkshop(ctx context.Context, id string) (model.WorkshopWithFamily, error)
	DeactivateWorkshop(ctx context.Context, id string) (model.WorkshopWithFamily, error)
}

type WorkshopController struct {
	Svc WorkshopService
}

func NewWorkshopController(svc WorkshopService) *WorkshopController {
	return &WorkshopController{Svc: svc}
}

/* ===================== READ ===================== */

// GET /api/workshops?status=&family_id=
func (ctl *WorkshopController) List(c *fiber.Ctx) error {
	f := repository.WorkshopFilter{
		FamilyID: strings.ToUpper(strings.TrimSpace(c.Query("family_id"))),
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, err := constants.ParseStatus(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		f.Status = st
	}

	rows, err := ctl.Svc.ListWorkshops(c.UserContext(), f)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Talleres", dto.FromWorkshops(rows), len(rows))
}

// GET /api/workshops/:id
func (ctl *WorkshopController) GetByID(c *fiber.Ctx) error {
	w, err := ctl.Svc.GetWorkshop(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Taller", dto.FromWorkshop(w))
}

/* ===================== WRITE ===================== */

// POST /api/workshops
func (ctl *WorkshopController) Create(c *fiber.Ctx) error {
	var req dto.CreateWorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload no válido")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	w, err := ctl.Svc.CreateWorkshop(c.UserContext(), req.ToNew())
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Taller creado", dto.FromWorkshop(w))
}

// PUT|PATCH /api/workshops/:id (merge)
func (ctl *WorkshopController) Update(c *fiber.Ctx) error {
	var req dto.UpdateWorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload no válido")
	}
	patch, errs := req.ToPatch()
	if errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	w, err := ctl.Svc.UpdateWorkshop(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Taller actualizado", dto.FromWorkshop(w))
}

// POST /api/workshops/:id/activate
func (ctl *WorkshopController) Activate(c *fiber.Ctx) error {
	w, err := ctl.Svc.ActivateWorkshop(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Taller activado", dto.FromWorkshop(w))
}

// POST /api/workshops/:id/deactivate
func (ctl *WorkshopController) Deactivate(c *fiber.Ctx) error {
	w, err := ctl.Svc.DeactivateWorkshop(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Taller desactivado", dto.FromWorkshop(w))
}
