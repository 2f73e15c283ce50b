// Package facade is the single boundary the HTTP layer calls. It composes the
// catalog and evaluation repositories and only translates their errors.
package facade

import (
	"context"

	familyModel "fct_backend/internals/features/catalog/families/model"
	familyRepo "fct_backend/internals/features/catalog/families/repository"
	workshopModel "fct_backend/internals/features/catalog/workshops/model"
	workshopRepo "fct_backend/internals/features/catalog/workshops/repository"
	evalModel "fct_backend/internals/features/evaluations/student_evaluations/model"
	evalRepo "fct_backend/internals/features/evaluations/student_evaluations/repository"
	helper "fct_backend/internals/helpers"

	"gorm.io/gorm"
)

type Service struct {
	families    *familyRepo.FamilyRepository
	workshops   *workshopRepo.WorkshopRepository
	evaluations *evalRepo.EvaluationRepository
}

// New wires every repository onto the same store handle.
func New(db *gorm.DB) (*Service, error) {
	families := familyRepo.NewFamilyRepository(db)
	evaluations, err := evalRepo.NewEvaluationRepository(db)
	if err != nil {
		return nil, err
	}
	return &Service{
		families:    families,
		workshops:   workshopRepo.NewWorkshopRepository(db, families),
		evaluations: evaluations,
	}, nil
}

/* ===================== FAMILIES ===================== */

func (s *Service) ListFamilies(ctx context.Context, f familyRepo.FamilyFilter) ([]familyModel.FamilyModel, error) {
	rows, err := s.families.List(ctx, f)
	return rows, helper.FromDomainError(err)
}

func (s *Service) GetFamily(ctx context.Context, id string) (familyModel.FamilyModel, error) {
	m, err := s.families.Get(ctx, id)
	return m, helper.FromDomainError(err)
}

func (s *Service) CreateFamily(ctx context.Context, id, name string) (familyModel.FamilyModel, error) {
	m, err := s.families.Create(ctx, id, name)
	return m, helper.FromDomainError(err)
}

func (s *Service) UpdateFamily(ctx context.Context, id string, p familyRepo.FamilyPatch) (familyModel.FamilyModel, error) {
	m, err := s.families.Update(ctx, id, p)
	return m, helper.FromDomainError(err)
}

func (s *Service) ActivateFamily(ctx context.Context, id string) (familyModel.FamilyModel, error) {
	m, err := s.families.Activate(ctx, id)
	return m, helper.FromDomainError(err)
}

func (s *Service) DeactivateFamily(ctx context.Context, id string) (familyModel.FamilyModel, error) {
	m, err := s.families.Deactivate(ctx, id)
	return m, helper.FromDomainError(err)
}

/* ===================== WORKSHOPS ===================== */

func (s *Service) ListWorkshops(ctx context.Context, f workshopRepo.WorkshopFilter) ([]workshopModel.WorkshopWithFamily, error) {
	rows, err := s.workshops.List(ctx, f)
	return rows, helper.FromDomainError(err)
}

func (s *Service) GetWorkshop(ctx context.Context, id string) (workshopModel.WorkshopWithFamily, error) {
	w, err := s.workshops.Get(ctx, id)
	return w, helper.FromDomainError(err)
}

func (s *Service) CreateWorkshop(ctx context.Context, in workshopRepo.NewWorkshop) (workshopModel.WorkshopWithFamily, error) {
	w, err := s.workshops.Create(ctx, in)
	return w, helper.FromDomainError(err)
}

func (s *Service) UpdateWorkshop(ctx context.Context, id string, p workshopRepo.WorkshopPatch) (workshopModel.WorkshopWithFamily, error) {
	w, err := s.workshops.Update(ctx, id, p)
	return w, helper.FromDomainError(err)
}

func (s *Service) ActivateWorkshop(ctx context.Context, id string) (workshopModel.WorkshopWithFamily, error) {
	w, err := s.workshops.Activate(ctx, id)
	return w, helper.FromDomainError(err)
}

func (s *Service) DeactivateWorkshop(ctx context.Context, id string) (workshopModel.WorkshopWithFamily, error) {
	w, err := s.workshops.Deactivate(ctx, id)
	return w, helper.FromDomainError(err)
}

/* ===================== EVALUATIONS ===================== */

func (s *Service) ListEvaluationsByInternship(ctx context.Context, internshipID uint) ([]evalModel.StudentEvaluationModel, error) {
	rows, err := s.evaluations.ListByInternship(ctx, internshipID)
	return rows, helper.FromDomainError(err)
}

func (s *Service) GetEvaluation(ctx context.Context, id uint) (evalModel.StudentEvaluationModel, error) {
	m, err := s.evaluations.Get(ctx, id)
	return m, helper.FromDomainError(err)
}

func (s *Service) CreateEvaluation(ctx context.Context, in evalRepo.NewEvaluation) (evalModel.StudentEvaluationModel, error) {
	m, err := s.evaluations.Create(ctx, in)
	return m, helper.FromDomainError(err)
}

func (s *Service) UpdateEvaluation(ctx context.Context, id uint, p evalRepo.EvaluationPatch) (evalModel.StudentEvaluationModel, error) {
	m, err := s.evaluations.Update(ctx, id, p)
	return m, helper.FromDomainError(err)
}
