package internships

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"fct_backend/internals/features/evaluations/internships/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InternshipSeed struct {
	ID          uint    `json:"id"`
	StudentName string  `json:"student_name"`
	CompanyName string  `json:"company_name"`
	WorkshopID  *string `json:"workshop_id"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SeedInternshipsFromJSON: internship milik modul lain, seed ini hanya untuk dev/test.
func SeedInternshipsFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Membaca file internships:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []InternshipSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	rows := make([]model.InternshipModel, 0, len(seeds))
	for _, s := range seeds {
		start, err := parseDate(s.StartDate)
		if err != nil {
			return 0, fmt.Errorf("internship %d start_date: %w", s.ID, err)
		}
		end, err := parseDate(s.EndDate)
		if err != nil {
			return 0, fmt.Errorf("internship %d end_date: %w", s.ID, err)
		}
		rows = append(rows, model.InternshipModel{
			InternshipID:          s.ID,
			InternshipStudentName: s.StudentName,
			InternshipCompanyName: s.CompanyName,
			InternshipWorkshopID:  s.WorkshopID,
			InternshipStartDate:   start,
			InternshipEndDate:     end,
		})
	}
	if len(rows) == 0 {
		log.Println("ℹ️ Tidak ada data internship untuk diinsert.")
		return 0, nil
	}

	res := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return 0, fmt.Errorf("insert internships: %w", res.Error)
	}
	log.Printf("✅ Berhasil insert %d internships", res.RowsAffected)
	return int(res.RowsAffected), nil
}
