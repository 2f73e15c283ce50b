package seeds

import (
	"context"
	"path/filepath"

	familySeed "fct_backend/internals/seeds/catalog/families"
	workshopSeed "fct_backend/internals/seeds/catalog/workshops"
	internshipSeed "fct_backend/internals/seeds/internships"

	"gorm.io/gorm"
)

// DefaultDir is relative to the repository root.
const DefaultDir = "internals/seeds/data"

// RunAllSeeds loads families, workshops, then internships from dir.
// Every step skips rows that already exist, so it is safe to re-run.
func RunAllSeeds(ctx context.Context, db *gorm.DB, dir string) error {
	if dir == "" {
		dir = DefaultDir
	}

	//* Catalog
	if _, err := familySeed.SeedFamiliesFromJSON(ctx, db, filepath.Join(dir, "families.json")); err != nil {
		return err
	}
	if _, err := workshopSeed.SeedWorkshopsFromJSON(ctx, db, filepath.Join(dir, "workshops.json")); err != nil {
		return err
	}

	//* Evaluations
	if _, err := internshipSeed.SeedInternshipsFromJSON(ctx, db, filepath.Join(dir, "internships.json")); err != nil {
		return err
	}
	return nil
}
