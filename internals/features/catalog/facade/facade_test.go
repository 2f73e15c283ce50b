package facade

import (
	"context"
	"errors"
	"testing"

	"fct_backend/internals/constants"
	"fct_backend/internals/databases/testdb"
	workshopRepo "fct_backend/internals/features/catalog/workshops/repository"
	internshipModel "fct_backend/internals/features/evaluations/internships/model"
	evalRepo "fct_backend/internals/features/evaluations/student_evaluations/repository"

	"github.com/gofiber/fiber/v2"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("want *fiber.Error, got %T (%v)", err, err)
	}
	return fe.Code
}

func TestServiceTranslatesErrors(t *testing.T) {
	ctx := context.Background()
	svc, err := New(testdb.New(t))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.CreateFamily(ctx, "INF", "Informática"); err != nil {
		t.Fatalf("CreateFamily: %v", err)
	}
	_, err = svc.CreateFamily(ctx, "INF", "Informática")
	if code := fiberCode(t, err); code != fiber.StatusConflict {
		t.Fatalf("duplicate family: code %d", code)
	}

	_, err = svc.GetWorkshop(ctx, "NOPE")
	if code := fiberCode(t, err); code != fiber.StatusNotFound {
		t.Fatalf("missing workshop: code %d", code)
	}

	_, err = svc.CreateWorkshop(ctx, workshopRepo.NewWorkshop{Name: "Redes", FamilyID: "INF", TitleCode: "RED001", InternshipHours: 0})
	if code := fiberCode(t, err); code != fiber.StatusUnprocessableEntity {
		t.Fatalf("zero hours: code %d", code)
	}
}

func TestServiceCatalogScenario(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	svc, err := New(db)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.CreateFamily(ctx, "INF", "Informática"); err != nil {
		t.Fatal(err)
	}
	w, err := svc.CreateWorkshop(ctx, workshopRepo.NewWorkshop{Name: "Redes", FamilyID: "INF", TitleCode: "RED001", InternshipHours: 40})
	if err != nil {
		t.Fatal(err)
	}

	list, err := svc.ListWorkshops(ctx, workshopRepo.WorkshopFilter{})
	if err != nil || len(list) != 1 || list[0].Family.FamilyName != "Informática" {
		t.Fatalf("ListWorkshops = %+v, %v", list, err)
	}

	if _, err := svc.DeactivateWorkshop(ctx, w.Workshop.WorkshopID); err != nil {
		t.Fatal(err)
	}
	back, err := svc.ActivateWorkshop(ctx, w.Workshop.WorkshopID)
	if err != nil || back.Workshop.WorkshopStatus != constants.StatusActive {
		t.Fatalf("ActivateWorkshop = %+v, %v", back, err)
	}

	if _, err := svc.DeactivateFamily(ctx, "INF"); err != nil {
		t.Fatal(err)
	}
	fam, err := svc.ActivateFamily(ctx, "INF")
	if err != nil || fam.FamilyStatus != constants.StatusActive {
		t.Fatalf("ActivateFamily = %+v, %v", fam, err)
	}

	in := internshipModel.InternshipModel{InternshipStudentName: "Ana"}
	if err := db.Create(&in).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateEvaluation(ctx, evalRepo.NewEvaluation{InternshipID: in.InternshipID}); err != nil {
		t.Fatal(err)
	}
	evals, err := svc.ListEvaluationsByInternship(ctx, in.InternshipID)
	if err != nil || len(evals) != 1 {
		t.Fatalf("ListEvaluationsByInternship = %+v, %v", evals, err)
	}
}
