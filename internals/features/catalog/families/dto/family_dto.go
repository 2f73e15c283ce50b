// file: internals/features/catalog/families/dto/family_dto.go
package dto

import (
	"strings"
	"time"

	"fct_backend/internals/features/catalog/families/model"
	"fct_backend/internals/features/catalog/families/repository"
	helper "fct_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateFamilyRequest struct {
	ID   string `json:"id" validate:"required,len=3,alphanum"`
	Name string `json:"name" validate:"required,max=120"`
}

func (r *CreateFamilyRequest) Normalize() {
	r.ID = strings.ToUpper(strings.TrimSpace(r.ID))
	r.Name = strings.TrimSpace(r.Name)
}

// UpdateFamilyRequest: merge update. Key "id" di body diabaikan (immutable).
type UpdateFamilyRequest struct {
	Name   helper.PatchField[string] `json:"name"`
	Status helper.PatchField[string] `json:"status"`
}

// ToPatch converts the body into a repository patch. Both fields are
// required columns, so an explicit null is a field error.
func (r UpdateFamilyRequest) ToPatch() (repository.FamilyPatch, map[string][]string) {
	var p repository.FamilyPatch
	errs := map[string][]string{}

	if r.Name.IsNull() {
		errs["name"] = append(errs["name"], "required")
	} else if r.Name.IsSet() {
		v := strings.TrimSpace(*r.Name.Value)
		if v == "" {
			errs["name"] = append(errs["name"], "required")
		}
		p.Name = &v
	}
	if r.Status.IsNull() {
		errs["status"] = append(errs["status"], "required")
	} else if r.Status.IsSet() {
		v := *r.Status.Value
		p.Status = &v
	}

	if len(errs) > 0 {
		return p, errs
	}
	return p, nil
}

/* ===================== RESPONSE ===================== */

type FamilyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromFamilyModel(m model.FamilyModel) FamilyResponse {
	return FamilyResponse{
		ID:        m.FamilyID,
		Name:      m.FamilyName,
		Status:    m.FamilyStatus,
		CreatedAt: m.FamilyCreatedAt,
		UpdatedAt: m.FamilyUpdatedAt,
	}
}

func FromFamilyModels(rows []model.FamilyModel) []FamilyResponse {
	out := make([]FamilyResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromFamilyModel(m))
	}
	return out
}
