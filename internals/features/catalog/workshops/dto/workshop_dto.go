// file: internals/features/catalog/workshops/dto/workshop_dto.go
package dto

import (
	"strings"
	"time"

	familyDTO "fct_backend/internals/features/catalog/families/dto"
	"fct_backend/internals/features/catalog/workshops/model"
	"fct_backend/internals/features/catalog/workshops/repository"
	helper "fct_backend/internals/helpers"
)

/* ===================== CREATE ===================== */

type CreateWorkshopRequest struct {
	ID              string `json:"id" validate:"omitempty,max=5,alphanum"`
	Name            string `json:"name" validate:"required,max=120"`
	FamilyID        string `json:"family_id" validate:"required"`
	TitleCode       string `json:"title_code" validate:"required,max=8"`
	InternshipHours int    `json:"internship_hours" validate:"required,min=1"`
	Status          string `json:"status" validate:"omitempty"`
}

func (r *CreateWorkshopRequest) Normalize() {
	r.ID = strings.ToUpper(strings.TrimSpace(r.ID))
	r.Name = strings.TrimSpace(r.Name)
	r.FamilyID = strings.ToUpper(strings.TrimSpace(r.FamilyID))
	r.TitleCode = strings.ToUpper(strings.TrimSpace(r.TitleCode))
	r.Status = strings.TrimSpace(r.Status)
}

func (r CreateWorkshopRequest) ToNew() repository.NewWorkshop {
	return repository.NewWorkshop{
		ID:              r.ID,
		Name:            r.Name,
		FamilyID:        r.FamilyID,
		TitleCode:       r.TitleCode,
		InternshipHours: r.InternshipHours,
		Status:          r.Status,
	}
}

/* ===================== UPDATE / PATCH ===================== */

// UpdateWorkshopRequest: semua field wajib di level kolom, jadi null → error.
// "id" di body diabaikan.
type UpdateWorkshopRequest struct {
	Name            helper.PatchField[string] `json:"name"`
	FamilyID        helper.PatchField[string] `json:"family_id"`
	TitleCode       helper.PatchField[string] `json:"title_code"`
	InternshipHours helper.PatchField[int]    `json:"internship_hours"`
	Status          helper.PatchField[string] `json:"status"`
}

func (r UpdateWorkshopRequest) ToPatch() (repository.WorkshopPatch, map[string][]string) {
	var p repository.WorkshopPatch
	errs := map[string][]string{}

	p.Name = requiredString(r.Name, "name", errs)
	p.FamilyID = requiredString(r.FamilyID, "family_id", errs)
	p.TitleCode = requiredString(r.TitleCode, "title_code", errs)
	p.Status = requiredString(r.Status, "status", errs)

	if r.InternshipHours.IsNull() {
		errs["internship_hours"] = append(errs["internship_hours"], "required")
	} else if r.InternshipHours.IsSet() {
		h := *r.InternshipHours.Value
		if h < 1 {
			errs["internship_hours"] = append(errs["internship_hours"], "min")
		}
		p.InternshipHours = &h
	}

	if len(errs) > 0 {
		return p, errs
	}
	return p, nil
}

func requiredString(f helper.PatchField[string], key string, errs map[string][]string) *string {
	if f.IsNull() {
		errs[key] = append(errs[key], "required")
		return nil
	}
	if !f.IsSet() {
		return nil
	}
	v := strings.TrimSpace(*f.Value)
	if v == "" {
		errs[key] = append(errs[key], "required")
	}
	return &v
}

/* ===================== RESPONSE ===================== */

type WorkshopResponse struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	TitleCode       string                   `json:"title_code"`
	FamilyID        string                   `json:"family_id"`
	Family          familyDTO.FamilyResponse `json:"family"`
	Status          string                   `json:"status"`
	InternshipHours int                      `json:"internship_hours"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func FromWorkshop(w model.WorkshopWithFamily) WorkshopResponse {
	return WorkshopResponse{
		ID:              w.Workshop.WorkshopID,
		Name:            w.Workshop.WorkshopName,
		TitleCode:       w.Workshop.WorkshopTitleCode,
		FamilyID:        w.Workshop.WorkshopFamilyID,
		Family:          familyDTO.FromFamilyModel(w.Family),
		Status:          w.Workshop.WorkshopStatus,
		InternshipHours: w.Workshop.WorkshopInternshipHours,
		CreatedAt:       w.Workshop.WorkshopCreatedAt,
		UpdatedAt:       w.Workshop.WorkshopUpdatedAt,
	}
}

func FromWorkshops(rows []model.WorkshopWithFamily) []WorkshopResponse {
	out := make([]WorkshopResponse, 0, len(rows))
	for _, w := range rows {
		out = append(out, FromWorkshop(w))
	}
	return out
}
