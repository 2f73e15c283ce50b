// file: internals/features/catalog/families/controller/family_controller.go
package controller

import (
	"context"
	"strings"

	"fct_backend/internals/constants"
	"fct_backend/internals/features/catalog/families/dto"
	"fct_backend/internals/features/catalog/families/model"
	"fct_backend/internals/features/catalog/families/repository"
	helper "fct_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

// FamilyService is the slice of the catalog facade this controller needs.
type FamilyService interface {
	ListFamilies(ctx context.Context, f repository.FamilyFilter) ([]model.FamilyModel, error)
	GetFamily(ctx context.Context, id string) (model.FamilyModel, error)
	CreateFamily(ctx context.Context, id, name string) (model.FamilyModel, error)
	UpdateFamily(ctx context.Context, id string, p repository.FamilyPatch) (model.FamilyModel, error)
}

type FamilyController struct {
	Svc FamilyService
}

func NewFamilyController(svc FamilyService) *FamilyController {
	return &FamilyController{Svc: svc}
}

// GET /api/families?status=
func (ctl *FamilyController) List(c *fiber.Ctx) error {
	var f repository.FamilyFilter
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, err := constants.ParseStatus(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		f.Status = st
	}

	rows, err := ctl.Svc.ListFamilies(c.UserContext(), f)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Familias profesionales", dto.FromFamilyModels(rows), len(rows))
}

// GET /api/families/:id
func (ctl *FamilyController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.Svc.GetFamily(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Familia profesional", dto.FromFamilyModel(m))
}

// POST /api/families
func (ctl *FamilyController) Create(c *fiber.Ctx) error {
	var req dto.CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload no válido")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := ctl.Svc.CreateFamily(c.UserContext(), req.ID, req.Name)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Familia profesional creada", dto.FromFamilyModel(m))
}

// PUT /api/families/:id (merge)
func (ctl *FamilyController) Update(c *fiber.Ctx) error {
	var req dto.UpdateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload no válido")
	}
	patch, errs := req.ToPatch()
	if errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := ctl.Svc.UpdateFamily(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Familia profesional actualizada", dto.FromFamilyModel(m))
}
