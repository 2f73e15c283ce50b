package database

import (
	"fmt"
	"log"

	familyModel "fct_backend/internals/features/catalog/families/model"
	workshopModel "fct_backend/internals/features/catalog/workshops/model"
	internshipModel "fct_backend/internals/features/evaluations/internships/model"
	evalModel "fct_backend/internals/features/evaluations/student_evaluations/model"

	"gorm.io/gorm"
)

// Postgres-only constraints. AutoMigrate tidak membuat FK untuk kolom tanpa relasi.
var postgresConstraints = []struct {
	name string
	sql  string
}{
	{
		name: "fk_workshops_family",
		sql: `ALTER TABLE workshops
			ADD CONSTRAINT fk_workshops_family
			FOREIGN KEY (workshop_family_id) REFERENCES families(family_id)
			ON UPDATE CASCADE ON DELETE RESTRICT`,
	},
	{
		name: "fk_student_evaluations_internship",
		sql: `ALTER TABLE student_evaluations
			ADD CONSTRAINT fk_student_evaluations_internship
			FOREIGN KEY (student_evaluation_internship_id) REFERENCES internships(internship_id)
			ON DELETE RESTRICT`,
	},
	{
		name: "ck_families_status",
		sql:  `ALTER TABLE families ADD CONSTRAINT ck_families_status CHECK (family_status IN ('Activo','Inactivo'))`,
	},
	{
		name: "ck_workshops_status",
		sql:  `ALTER TABLE workshops ADD CONSTRAINT ck_workshops_status CHECK (workshop_status IN ('Activo','Inactivo'))`,
	},
	{
		name: "ck_workshops_hours",
		sql:  `ALTER TABLE workshops ADD CONSTRAINT ck_workshops_hours CHECK (workshop_internship_hours >= 1)`,
	},
	{
		name: "ck_student_evaluations_grade",
		sql: `ALTER TABLE student_evaluations ADD CONSTRAINT ck_student_evaluations_grade
			CHECK (student_evaluation_grade IS NULL OR student_evaluation_grade BETWEEN 0 AND 10)`,
	},
}

// Migrate is idempotent: tables via AutoMigrate, constraints only when missing.
func Migrate(db *gorm.DB) error {
	log.Println("[INFO] Running migrations...")
	if err := db.AutoMigrate(
		&familyModel.FamilyModel{},
		&workshopModel.WorkshopModel{},
		&internshipModel.InternshipModel{},
		&evalModel.StudentEvaluationModel{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		if err := ensureConstraints(db); err != nil {
			return err
		}
	}
	log.Println("✅ Migrations done.")
	return nil
}

func ensureConstraints(db *gorm.DB) error {
	for _, c := range postgresConstraints {
		stmt := fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
		%s;
	END IF;
END $$;`, c.name, c.sql)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("constraint %s: %w", c.name, err)
		}
	}
	return nil
}
