package families

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	familyRepo "fct_backend/internals/features/catalog/families/repository"
	helper "fct_backend/internals/helpers"

	"gorm.io/gorm"
)

type FamilySeed struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SeedFamiliesFromJSON inserts families that do not exist yet. Returns how many were created.
func SeedFamiliesFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Membaca file families:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []FamilySeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	repo := familyRepo.NewFamilyRepository(db)
	created := 0
	for _, s := range seeds {
		if _, err := repo.Create(ctx, s.ID, s.Name); err != nil {
			if errors.Is(err, helper.ErrConflict) {
				log.Printf("ℹ️ Familia '%s' sudah ada, dilewati.", s.ID)
				continue
			}
			return created, fmt.Errorf("seed family %s: %w", s.ID, err)
		}
		created++
	}
	log.Printf("✅ Berhasil insert %d families", created)
	return created, nil
}
