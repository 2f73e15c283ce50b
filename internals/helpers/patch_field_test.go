package helper

import (
	"encoding/json"
	"testing"
)

type patchProbe struct {
	Name  PatchField[string]  `json:"name"`
	Hours PatchField[int]     `json:"hours"`
	Note  PatchField[*string] `json:"note"`
}

func TestPatchFieldTriState(t *testing.T) {
	var p patchProbe
	if err := json.Unmarshal([]byte(`{"name":"Redes","note":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Name.IsSet() || *p.Name.Value != "Redes" {
		t.Fatalf("name should be set: %+v", p.Name)
	}
	if p.Hours.Present {
		t.Fatal("hours was absent")
	}
	if !p.Note.IsNull() {
		t.Fatal("note should be explicit null")
	}
}

func TestPatchFieldRejectsWrongType(t *testing.T) {
	var p patchProbe
	if err := json.Unmarshal([]byte(`{"hours":"cuarenta"}`), &p); err == nil {
		t.Fatal("expected type error")
	}
}

func TestSet(t *testing.T) {
	f := Set(40)
	if v, ok := f.Get(); !ok || *v != 40 {
		t.Fatalf("Set(40) = %+v", f)
	}
}
