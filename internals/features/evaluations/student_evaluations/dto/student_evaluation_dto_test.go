package dto

import (
	"encoding/json"
	"testing"

	"fct_backend/internals/features/evaluations/student_evaluations/model"
	helper "fct_backend/internals/helpers"

	"gorm.io/datatypes"
)

func TestCreateStudentEvaluationRequest(t *testing.T) {
	var req CreateStudentEvaluationRequest
	body := `{"internship_id":7,"grade":8.5,"comments":"  buen trabajo ","scores":{"punctuality":9}}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		t.Fatalf("unexpected errors %v", errs)
	}
	n := req.ToNew()
	if n.InternshipID != 7 || *n.Grade != 8.5 || *n.Comments != "buen trabajo" {
		t.Fatalf("unexpected %+v", n)
	}
	if n.Scores == nil || string(*n.Scores) != `{"punctuality":9}` {
		t.Fatalf("scores = %v", n.Scores)
	}

	bad := CreateStudentEvaluationRequest{Grade: ptr(11.0)}
	errs := helper.ValidateStruct(bad)
	if len(errs["internship_id"]) == 0 || len(errs["grade"]) == 0 {
		t.Fatalf("want internship_id and grade errors, got %v", errs)
	}
}

func TestUpdateStudentEvaluationRequestToPatch(t *testing.T) {
	var req UpdateStudentEvaluationRequest
	if err := json.Unmarshal([]byte(`{"comments":null,"grade":6,"scores":null}`), &req); err != nil {
		t.Fatal(err)
	}
	p, errs := req.ToPatch()
	if errs != nil {
		t.Fatalf("unexpected errors %v", errs)
	}
	if !p.Comments.IsNull() {
		t.Fatal("comments must be an explicit clear")
	}
	if !p.Grade.IsSet() || *p.Grade.Value != 6 {
		t.Fatalf("grade = %+v", p.Grade)
	}
	if !p.Scores.IsNull() {
		t.Fatal("scores must be an explicit clear")
	}
	if p.IsPassed.Present || p.EvaluatedAt.Present || p.InternshipID.Present {
		t.Fatal("absent keys must stay absent")
	}
}

func TestUpdateStudentEvaluationRequestErrors(t *testing.T) {
	cases := map[string]string{
		"internship_id": `{"internship_id":null}`,
		"grade":         `{"grade":-1}`,
	}
	for key, body := range cases {
		var req UpdateStudentEvaluationRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatal(err)
		}
		if _, errs := req.ToPatch(); len(errs[key]) == 0 {
			t.Fatalf("%s: want error on %q, got %v", body, key, errs)
		}
	}
}

func TestFromModelsKeepsNulls(t *testing.T) {
	scores := datatypes.JSON(`{"a":1}`)
	out := FromModels([]model.StudentEvaluationModel{{StudentEvaluationID: 1, StudentEvaluationInternshipID: 2, StudentEvaluationScores: &scores}})
	if len(out) != 1 || out[0].Grade != nil || string(out[0].Scores) != `{"a":1}` {
		t.Fatalf("unexpected %+v", out)
	}
	b, err := json.Marshal(out[0])
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	if v, ok := m["grade"]; !ok || v != nil {
		t.Fatalf("grade must be serialized as null, got %v", m)
	}
}

func ptr[T any](v T) *T { return &v }
