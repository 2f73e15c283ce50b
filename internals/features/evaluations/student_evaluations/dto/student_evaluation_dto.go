// file: internals/features/evaluations/student_evaluations/dto/student_evaluation_dto.go
package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"fct_backend/internals/features/evaluations/student_evaluations/model"
	"fct_backend/internals/features/evaluations/student_evaluations/repository"
	helper "fct_backend/internals/helpers"

	"gorm.io/datatypes"
)

/* ===================== CREATE ===================== */

type CreateStudentEvaluationRequest struct {
	InternshipID uint            `json:"internship_id" validate:"required"`
	Grade        *float64        `json:"grade" validate:"omitempty,min=0,max=10"`
	IsPassed     *bool           `json:"is_passed"`
	Comments     *string         `json:"comments"`
	EvaluatedAt  *time.Time      `json:"evaluated_at"`
	Scores       json.RawMessage `json:"scores"`
}

func (r *CreateStudentEvaluationRequest) Normalize() {
	if r.Comments != nil {
		s := strings.TrimSpace(*r.Comments)
		r.Comments = &s
	}
}

func (r CreateStudentEvaluationRequest) ToNew() repository.NewEvaluation {
	return repository.NewEvaluation{
		InternshipID: r.InternshipID,
		Grade:        r.Grade,
		IsPassed:     r.IsPassed,
		Comments:     r.Comments,
		EvaluatedAt:  r.EvaluatedAt,
		Scores:       toJSONPtr(r.Scores),
	}
}

/* ===================== UPDATE / PATCH ===================== */

// UpdateStudentEvaluationRequest: absent = tidak disentuh, null = dikosongkan,
// kecuali internship_id yang wajib.
type UpdateStudentEvaluationRequest struct {
	InternshipID helper.PatchField[uint]            `json:"internship_id"`
	Grade        helper.PatchField[float64]         `json:"grade"`
	IsPassed     helper.PatchField[bool]            `json:"is_passed"`
	Comments     helper.PatchField[string]          `json:"comments"`
	EvaluatedAt  helper.PatchField[time.Time]       `json:"evaluated_at"`
	Scores       helper.PatchField[json.RawMessage] `json:"scores"`
}

func (r UpdateStudentEvaluationRequest) ToPatch() (repository.EvaluationPatch, map[string][]string) {
	p := repository.EvaluationPatch{
		InternshipID: r.InternshipID,
		Grade:        r.Grade,
		IsPassed:     r.IsPassed,
		Comments:     r.Comments,
		EvaluatedAt:  r.EvaluatedAt,
	}
	errs := map[string][]string{}

	if r.InternshipID.Present && (!r.InternshipID.IsSet() || *r.InternshipID.Value == 0) {
		errs["internship_id"] = append(errs["internship_id"], "required")
	}
	if r.Grade.IsSet() && (*r.Grade.Value < 0 || *r.Grade.Value > 10) {
		errs["grade"] = append(errs["grade"], "range")
	}
	if r.Scores.Present {
		if r.Scores.IsSet() {
			p.Scores = helper.Set(toJSON(*r.Scores.Value))
		} else {
			p.Scores = helper.PatchField[datatypes.JSON]{Present: true}
		}
	}

	if len(errs) > 0 {
		return p, errs
	}
	return p, nil
}

// toJSON: nil / "null" → kolom NULL.
func toJSON(raw json.RawMessage) datatypes.JSON {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return datatypes.JSON(append([]byte(nil), trimmed...))
}

func toJSONPtr(raw json.RawMessage) *datatypes.JSON {
	j := toJSON(raw)
	if j == nil {
		return nil
	}
	return &j
}

/* ===================== RESPONSE ===================== */

type StudentEvaluationResponse struct {
	ID           uint            `json:"id"`
	InternshipID uint            `json:"internship_id"`
	Grade        *float64        `json:"grade"`
	IsPassed     *bool           `json:"is_passed"`
	Comments     *string         `json:"comments"`
	EvaluatedAt  *time.Time      `json:"evaluated_at"`
	Scores       json.RawMessage `json:"scores"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromModel(m model.StudentEvaluationModel) StudentEvaluationResponse {
	resp := StudentEvaluationResponse{
		ID:           m.StudentEvaluationID,
		InternshipID: m.StudentEvaluationInternshipID,
		Grade:        m.StudentEvaluationGrade,
		IsPassed:     m.StudentEvaluationIsPassed,
		Comments:     m.StudentEvaluationComments,
		EvaluatedAt:  m.StudentEvaluationEvaluatedAt,
		CreatedAt:    m.StudentEvaluationCreatedAt,
		UpdatedAt:    m.StudentEvaluationUpdatedAt,
	}
	if m.StudentEvaluationScores != nil && len(*m.StudentEvaluationScores) > 0 {
		resp.Scores = json.RawMessage(*m.StudentEvaluationScores)
	}
	return resp
}

func FromModels(rows []model.StudentEvaluationModel) []StudentEvaluationResponse {
	out := make([]StudentEvaluationResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
