package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fct_backend/internals/databases/testdb"
	internshipModel "fct_backend/internals/features/evaluations/internships/model"
	helper "fct_backend/internals/helpers"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func newEvalRepo(t *testing.T) (*gorm.DB, *EvaluationRepository) {
	t.Helper()
	db := testdb.New(t)
	repo, err := NewEvaluationRepository(db)
	if err != nil {
		t.Fatal(err)
	}
	return db, repo
}

func seedInternship(t *testing.T, db *gorm.DB, student string) uint {
	t.Helper()
	m := internshipModel.InternshipModel{InternshipStudentName: student, InternshipCompanyName: "Acme"}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed internship: %v", err)
	}
	return m.InternshipID
}

func TestListByInternshipFilters(t *testing.T) {
	ctx := context.Background()
	db, repo := newEvalRepo(t)
	a := seedInternship(t, db, "Ana")
	b := seedInternship(t, db, "Luis")

	for _, iid := range []uint{a, a, b} {
		if _, err := repo.Create(ctx, NewEvaluation{InternshipID: iid, Grade: ptr(7.5)}); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := repo.ListByInternship(ctx, a)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 evaluations for internship %d, got %d", a, len(rows))
	}
	for _, r := range rows {
		if r.StudentEvaluationInternshipID != a {
			t.Fatalf("foreign evaluation in result: %+v", r)
		}
		if r.StudentEvaluationGrade == nil || *r.StudentEvaluationGrade != 7.5 {
			t.Fatalf("grade not mapped: %+v", r)
		}
	}
	if rows[0].StudentEvaluationID > rows[1].StudentEvaluationID {
		t.Fatal("rows must be ordered by id")
	}
}

func TestListByInternshipEmpty(t *testing.T) {
	ctx := context.Background()
	db, repo := newEvalRepo(t)
	iid := seedInternship(t, db, "Ana")

	rows, err := repo.ListByInternship(ctx, iid)
	if err != nil {
		t.Fatal(err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", rows)
	}
	rows, err = repo.ListByInternship(ctx, 9999)
	if err != nil || len(rows) != 0 {
		t.Fatalf("unknown internship: rows=%v err=%v", rows, err)
	}
}

func TestCreateEvaluationUnknownInternship(t *testing.T) {
	db, repo := newEvalRepo(t)
	if _, err := repo.Create(context.Background(), NewEvaluation{InternshipID: 42}); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	var cnt int64
	db.Table("student_evaluations").Count(&cnt)
	if cnt != 0 {
		t.Fatalf("nothing must be persisted, got %d rows", cnt)
	}
	if _, err := repo.Create(context.Background(), NewEvaluation{}); !errors.Is(err, helper.ErrValidation) {
		t.Fatalf("zero internship: want validation, got %v", err)
	}
}

func TestCreateEvaluationGradeRange(t *testing.T) {
	db, repo := newEvalRepo(t)
	iid := seedInternship(t, db, "Ana")
	for _, g := range []float64{-0.5, 10.5} {
		if _, err := repo.Create(context.Background(), NewEvaluation{InternshipID: iid, Grade: ptr(g)}); !errors.Is(err, helper.ErrValidation) {
			t.Fatalf("grade %v: want validation, got %v", g, err)
		}
	}
}

func TestUpdateEvaluationMergeAndClear(t *testing.T) {
	ctx := context.Background()
	db, repo := newEvalRepo(t)
	iid := seedInternship(t, db, "Ana")
	when := time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC)
	scores := datatypes.JSON(`{"punctuality":9}`)

	created, err := repo.Create(ctx, NewEvaluation{
		InternshipID: iid,
		Grade:        ptr(6.0),
		IsPassed:     ptr(true),
		Comments:     ptr("Correcto"),
		EvaluatedAt:  &when,
		Scores:       &scores,
	})
	if err != nil {
		t.Fatal(err)
	}

	// grade only
	got, err := repo.Update(ctx, created.StudentEvaluationID, EvaluationPatch{Grade: helper.Set(8.0)})
	if err != nil {
		t.Fatal(err)
	}
	if *got.StudentEvaluationGrade != 8 || got.StudentEvaluationComments == nil || *got.StudentEvaluationComments != "Correcto" ||
		got.StudentEvaluationIsPassed == nil || !*got.StudentEvaluationIsPassed || got.StudentEvaluationScores == nil {
		t.Fatalf("grade-only update touched other fields: %+v", got)
	}
	if got.StudentEvaluationID != created.StudentEvaluationID || got.StudentEvaluationInternshipID != iid {
		t.Fatalf("identity changed: %+v", got)
	}

	// explicit nulls clear
	got, err = repo.Update(ctx, created.StudentEvaluationID, EvaluationPatch{
		Comments: helper.PatchField[string]{Present: true},
		Scores:   helper.PatchField[datatypes.JSON]{Present: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.StudentEvaluationComments != nil || got.StudentEvaluationScores != nil {
		t.Fatalf("null must clear: %+v", got)
	}
	if got.StudentEvaluationGrade == nil || *got.StudentEvaluationGrade != 8 {
		t.Fatalf("grade lost: %+v", got)
	}

	reread, err := repo.Get(ctx, created.StudentEvaluationID)
	if err != nil {
		t.Fatal(err)
	}
	if reread.StudentEvaluationComments != nil || reread.StudentEvaluationEvaluatedAt == nil {
		t.Fatalf("persisted state: %+v", reread)
	}
}

func TestUpdateEvaluationRepointInternship(t *testing.T) {
	ctx := context.Background()
	db, repo := newEvalRepo(t)
	a := seedInternship(t, db, "Ana")
	b := seedInternship(t, db, "Luis")
	created, err := repo.Create(ctx, NewEvaluation{InternshipID: a})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := repo.Update(ctx, created.StudentEvaluationID, EvaluationPatch{InternshipID: helper.Set[uint](999)}); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("unknown internship: want not found, got %v", err)
	}
	if _, err := repo.Update(ctx, created.StudentEvaluationID, EvaluationPatch{InternshipID: helper.PatchField[uint]{Present: true}}); !errors.Is(err, helper.ErrValidation) {
		t.Fatalf("null internship: want validation, got %v", err)
	}

	got, err := repo.Update(ctx, created.StudentEvaluationID, EvaluationPatch{InternshipID: helper.Set(b)})
	if err != nil {
		t.Fatal(err)
	}
	if got.StudentEvaluationInternshipID != b {
		t.Fatalf("internship = %d, want %d", got.StudentEvaluationInternshipID, b)
	}
	rows, _ := repo.ListByInternship(ctx, a)
	if len(rows) != 0 {
		t.Fatalf("old internship still lists %d evaluations", len(rows))
	}
}

func TestUpdateEvaluationNotFound(t *testing.T) {
	_, repo := newEvalRepo(t)
	if _, err := repo.Update(context.Background(), 77, EvaluationPatch{Grade: helper.Set(5.0)}); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	if _, err := repo.Get(context.Background(), 77); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("Get: want not found, got %v", err)
	}
}
