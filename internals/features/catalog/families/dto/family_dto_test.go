package dto

import (
	"encoding/json"
	"testing"
	"time"

	"fct_backend/internals/constants"
	"fct_backend/internals/features/catalog/families/model"
	helper "fct_backend/internals/helpers"
)

func TestCreateFamilyRequestValidation(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateFamilyRequest
		wantErr string
	}{
		{name: "ok", req: CreateFamilyRequest{ID: " inf ", Name: " Informática "}},
		{name: "short id", req: CreateFamilyRequest{ID: "IN", Name: "Informática"}, wantErr: "id"},
		{name: "symbols", req: CreateFamilyRequest{ID: "I-F", Name: "Informática"}, wantErr: "id"},
		{name: "missing name", req: CreateFamilyRequest{ID: "INF"}, wantErr: "name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Normalize()
			errs := helper.ValidateStruct(tc.req)
			if tc.wantErr == "" {
				if errs != nil {
					t.Fatalf("unexpected errors %v", errs)
				}
				if tc.req.ID != "INF" || tc.req.Name != "Informática" {
					t.Fatalf("not normalized: %+v", tc.req)
				}
				return
			}
			if _, ok := errs[tc.wantErr]; !ok {
				t.Fatalf("want error on %q, got %v", tc.wantErr, errs)
			}
		})
	}
}

func TestUpdateFamilyRequestToPatch(t *testing.T) {
	var req UpdateFamilyRequest
	if err := json.Unmarshal([]byte(`{"id":"XXX","status":"Inactivo"}`), &req); err != nil {
		t.Fatal(err)
	}
	p, errs := req.ToPatch()
	if errs != nil {
		t.Fatalf("unexpected errors %v", errs)
	}
	if p.Name != nil {
		t.Fatalf("absent name must stay untouched, got %q", *p.Name)
	}
	if p.Status == nil || *p.Status != constants.StatusInactive {
		t.Fatalf("status = %v", p.Status)
	}
}

func TestUpdateFamilyRequestRejectsNull(t *testing.T) {
	var req UpdateFamilyRequest
	if err := json.Unmarshal([]byte(`{"name":null,"status":null}`), &req); err != nil {
		t.Fatal(err)
	}
	_, errs := req.ToPatch()
	if len(errs["name"]) == 0 || len(errs["status"]) == 0 {
		t.Fatalf("want errors on name and status, got %v", errs)
	}
}

func TestFromFamilyModels(t *testing.T) {
	now := time.Now()
	out := FromFamilyModels([]model.FamilyModel{{FamilyID: "INF", FamilyName: "Informática", FamilyStatus: constants.StatusActive, FamilyCreatedAt: now}})
	if len(out) != 1 || out[0].ID != "INF" || out[0].Status != "Activo" || !out[0].CreatedAt.Equal(now) {
		t.Fatalf("unexpected %+v", out)
	}
	if got := FromFamilyModels(nil); got == nil || len(got) != 0 {
		t.Fatalf("nil rows must map to an empty slice, got %#v", got)
	}
}
