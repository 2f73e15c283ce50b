package workshops

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	familyRepo "fct_backend/internals/features/catalog/families/repository"
	workshopRepo "fct_backend/internals/features/catalog/workshops/repository"
	helper "fct_backend/internals/helpers"

	"gorm.io/gorm"
)

// WorkshopSeed: id wajib di seed supaya idempotent.
type WorkshopSeed struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	FamilyID        string `json:"family_id"`
	TitleCode       string `json:"title_code"`
	InternshipHours int    `json:"internship_hours"`
	Status          string `json:"status"`
}

func SeedWorkshopsFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Membaca file workshops:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []WorkshopSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	repo := workshopRepo.NewWorkshopRepository(db, familyRepo.NewFamilyRepository(db))
	created := 0
	for _, s := range seeds {
		if s.ID == "" {
			return created, fmt.Errorf("seed workshop %q: id is required", s.TitleCode)
		}
		_, err := repo.Create(ctx, workshopRepo.NewWorkshop{
			ID:              s.ID,
			Name:            s.Name,
			FamilyID:        s.FamilyID,
			TitleCode:       s.TitleCode,
			InternshipHours: s.InternshipHours,
			Status:          s.Status,
		})
		if err != nil {
			if errors.Is(err, helper.ErrConflict) {
				log.Printf("ℹ️ Taller '%s' sudah ada, dilewati.", s.ID)
				continue
			}
			return created, fmt.Errorf("seed workshop %s: %w", s.ID, err)
		}
		created++
	}
	log.Printf("✅ Berhasil insert %d workshops", created)
	return created, nil
}
