// file: internals/features/evaluations/student_evaluations/repository/evaluation_repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	internshipModel "fct_backend/internals/features/evaluations/internships/model"
	"fct_backend/internals/features/evaluations/student_evaluations/model"
	helper "fct_backend/internals/helpers"

	"github.com/jmoiron/sqlx"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	minGrade = 0.0
	maxGrade = 10.0
)

// NewEvaluation: semua field selain InternshipID opsional.
type NewEvaluation struct {
	InternshipID uint
	Grade        *float64
	IsPassed     *bool
	Comments     *string
	EvaluatedAt  *time.Time
	Scores       *datatypes.JSON
}

// EvaluationPatch is tri-state per field: absent, explicit null (clear), or value.
type EvaluationPatch struct {
	InternshipID helper.PatchField[uint]
	Grade        helper.PatchField[float64]
	IsPassed     helper.PatchField[bool]
	Comments     helper.PatchField[string]
	EvaluatedAt  helper.PatchField[time.Time]
	Scores       helper.PatchField[datatypes.JSON]
}

// Columns maps the patch onto evaluation columns. Only present fields appear;
// explicit nulls become NULL.
func (p EvaluationPatch) Columns() (map[string]any, error) {
	cols := map[string]any{}
	if p.InternshipID.Present {
		if !p.InternshipID.IsSet() || *p.InternshipID.Value == 0 {
			return nil, helper.Validation("La evaluación debe pertenecer a unas prácticas")
		}
		cols["student_evaluation_internship_id"] = *p.InternshipID.Value
	}
	if p.Grade.Present {
		if p.Grade.Value == nil {
			cols["student_evaluation_grade"] = nil
		} else {
			if err := validateGrade(*p.Grade.Value); err != nil {
				return nil, err
			}
			cols["student_evaluation_grade"] = *p.Grade.Value
		}
	}
	if p.IsPassed.Present {
		cols["student_evaluation_is_passed"] = nullable(p.IsPassed.Value)
	}
	if p.Comments.Present {
		cols["student_evaluation_comments"] = nullable(p.Comments.Value)
	}
	if p.EvaluatedAt.Present {
		cols["student_evaluation_evaluated_at"] = nullable(p.EvaluatedAt.Value)
	}
	if p.Scores.Present {
		if p.Scores.Value == nil || len(*p.Scores.Value) == 0 {
			cols["student_evaluation_scores"] = nil
		} else {
			cols["student_evaluation_scores"] = *p.Scores.Value
		}
	}
	return cols, nil
}

func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func validateGrade(g float64) error {
	if g < minGrade || g > maxGrade {
		return helper.Validation("La nota debe estar entre %.0f y %.0f", minGrade, maxGrade)
	}
	return nil
}

type EvaluationRepository struct {
	db *gorm.DB
	sx *sqlx.DB
}

// NewEvaluationRepository shares the gorm connection pool with sqlx for the join read path.
func NewEvaluationRepository(db *gorm.DB) (*EvaluationRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("evaluation repository: %w", err)
	}
	return &EvaluationRepository{db: db, sx: sqlx.NewDb(sqlDB, sqlxDriverName(db))}, nil
}

// sqlx hanya butuh nama driver untuk bind type ($1 vs ?).
func sqlxDriverName(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "postgres"
	}
	return "sqlite3"
}

const listByInternshipSQL = `
	SELECT
		se.student_evaluation_id,
		se.student_evaluation_internship_id,
		se.student_evaluation_grade,
		se.student_evaluation_is_passed,
		se.student_evaluation_comments,
		se.student_evaluation_evaluated_at,
		se.student_evaluation_scores,
		se.student_evaluation_created_at,
		se.student_evaluation_updated_at
	FROM student_evaluations se
	JOIN internships i ON i.internship_id = se.student_evaluation_internship_id
	WHERE i.internship_id = ?
	ORDER BY se.student_evaluation_id ASC`

type evaluationRow struct {
	ID           uint            `db:"student_evaluation_id"`
	InternshipID uint            `db:"student_evaluation_internship_id"`
	Grade        sql.NullFloat64 `db:"student_evaluation_grade"`
	IsPassed     sql.NullBool    `db:"student_evaluation_is_passed"`
	Comments     sql.NullString  `db:"student_evaluation_comments"`
	EvaluatedAt  sql.NullTime    `db:"student_evaluation_evaluated_at"`
	Scores       []byte          `db:"student_evaluation_scores"`
	CreatedAt    time.Time       `db:"student_evaluation_created_at"`
	UpdatedAt    time.Time       `db:"student_evaluation_updated_at"`
}

func (r evaluationRow) toModel() model.StudentEvaluationModel {
	m := model.StudentEvaluationModel{
		StudentEvaluationID:           r.ID,
		StudentEvaluationInternshipID: r.InternshipID,
		StudentEvaluationCreatedAt:    r.CreatedAt,
		StudentEvaluationUpdatedAt:    r.UpdatedAt,
	}
	if r.Grade.Valid {
		g := r.Grade.Float64
		m.StudentEvaluationGrade = &g
	}
	if r.IsPassed.Valid {
		b := r.IsPassed.Bool
		m.StudentEvaluationIsPassed = &b
	}
	if r.Comments.Valid {
		s := r.Comments.String
		m.StudentEvaluationComments = &s
	}
	if r.EvaluatedAt.Valid {
		t := r.EvaluatedAt.Time
		m.StudentEvaluationEvaluatedAt = &t
	}
	if len(r.Scores) > 0 {
		j := datatypes.JSON(append([]byte(nil), r.Scores...))
		m.StudentEvaluationScores = &j
	}
	return m
}

// ListByInternship: inner join ke internships; internship tanpa evaluasi → slice kosong.
func (r *EvaluationRepository) ListByInternship(ctx context.Context, internshipID uint) ([]model.StudentEvaluationModel, error) {
	var rows []evaluationRow
	if err := r.sx.SelectContext(ctx, &rows, r.sx.Rebind(listByInternshipSQL), internshipID); err != nil {
		return nil, helper.Storage("listar evaluaciones", err)
	}
	out := make([]model.StudentEvaluationModel, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *EvaluationRepository) Get(ctx context.Context, id uint) (model.StudentEvaluationModel, error) {
	var m model.StudentEvaluationModel
	if err := r.db.WithContext(ctx).Where("student_evaluation_id = ?", id).First(&m).Error; err != nil {
		return model.StudentEvaluationModel{}, helper.MapStoreError(err, helper.StoreMessages{
			Op:       "obtener evaluación",
			NotFound: fmt.Sprintf("La evaluación %d no existe", id),
		})
	}
	return m, nil
}

// Create validates the internship reference before insert, like workshop → family.
func (r *EvaluationRepository) Create(ctx context.Context, in NewEvaluation) (model.StudentEvaluationModel, error) {
	if in.InternshipID == 0 {
		return model.StudentEvaluationModel{}, helper.Validation("La evaluación debe pertenecer a unas prácticas")
	}
	if in.Grade != nil {
		if err := validateGrade(*in.Grade); err != nil {
			return model.StudentEvaluationModel{}, err
		}
	}

	m := model.StudentEvaluationModel{
		StudentEvaluationInternshipID: in.InternshipID,
		StudentEvaluationGrade:        in.Grade,
		StudentEvaluationIsPassed:     in.IsPassed,
		StudentEvaluationComments:     in.Comments,
		StudentEvaluationEvaluatedAt:  in.EvaluatedAt,
		StudentEvaluationScores:       in.Scores,
	}
	msgs := helper.StoreMessages{
		Op:         "crear evaluación",
		MissingRef: fmt.Sprintf("Las prácticas %d no existen", in.InternshipID),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureInternship(tx, in.InternshipID); err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return model.StudentEvaluationModel{}, helper.MapStoreError(err, msgs)
	}
	return m, nil
}

// Update applies a merge update; the id never changes whatever the patch holds.
func (r *EvaluationRepository) Update(ctx context.Context, id uint, p EvaluationPatch) (model.StudentEvaluationModel, error) {
	cols, err := p.Columns()
	if err != nil {
		return model.StudentEvaluationModel{}, err
	}

	msgs := helper.StoreMessages{
		Op:       "actualizar evaluación",
		NotFound: fmt.Sprintf("La evaluación %d no existe", id),
	}

	var out model.StudentEvaluationModel
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := helper.LockForUpdate(tx).Where("student_evaluation_id = ?", id).First(&out).Error; err != nil {
			return err
		}
		if iid, ok := cols["student_evaluation_internship_id"].(uint); ok && iid != out.StudentEvaluationInternshipID {
			if err := ensureInternship(tx, iid); err != nil {
				return err
			}
		}
		if len(cols) == 0 {
			return nil
		}
		cols["student_evaluation_updated_at"] = time.Now()
		if err := tx.Model(&model.StudentEvaluationModel{}).
			Where("student_evaluation_id = ?", id).
			Updates(cols).Error; err != nil {
			return err
		}
		var fresh model.StudentEvaluationModel
		if err := tx.Where("student_evaluation_id = ?", id).First(&fresh).Error; err != nil {
			return err
		}
		out = fresh
		return nil
	})
	if err != nil {
		return model.StudentEvaluationModel{}, helper.MapStoreError(err, msgs)
	}
	return out, nil
}

func ensureInternship(tx *gorm.DB, internshipID uint) error {
	var cnt int64
	if err := tx.Model(&internshipModel.InternshipModel{}).
		Where("internship_id = ?", internshipID).
		Count(&cnt).Error; err != nil {
		return helper.Storage("comprobar prácticas", err)
	}
	if cnt == 0 {
		return helper.NotFound("Las prácticas %d no existen", internshipID)
	}
	return nil
}
