package helper

import "encoding/json"

/* =========================================================
   PATCH FIELD — tri-state (absent | null | value)
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// IsSet: key dikirim dengan nilai non-null.
func (p PatchField[T]) IsSet() bool { return p.Present && p.Value != nil }

// IsNull: key dikirim dengan null eksplisit.
func (p PatchField[T]) IsNull() bool { return p.Present && p.Value == nil }

func Set[T any](v T) PatchField[T] { return PatchField[T]{Present: true, Value: &v} }
