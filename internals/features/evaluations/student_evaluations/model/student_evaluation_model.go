// file: internals/features/evaluations/student_evaluations/model/student_evaluation_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// NOTE:
// - student_evaluation_internship_id: wajib, satu evaluasi = satu internship
// - grade/is_passed/comments/evaluated_at/scores: payload opaque untuk core ini
type StudentEvaluationModel struct {
	StudentEvaluationID           uint            `gorm:"column:student_evaluation_id;primaryKey;autoIncrement" json:"student_evaluation_id"`
	StudentEvaluationInternshipID uint            `gorm:"column:student_evaluation_internship_id;not null;index" json:"student_evaluation_internship_id"`
	StudentEvaluationGrade        *float64        `gorm:"column:student_evaluation_grade" json:"student_evaluation_grade,omitempty"`
	StudentEvaluationIsPassed     *bool           `gorm:"column:student_evaluation_is_passed" json:"student_evaluation_is_passed,omitempty"`
	StudentEvaluationComments     *string         `gorm:"column:student_evaluation_comments;type:text" json:"student_evaluation_comments,omitempty"`
	StudentEvaluationEvaluatedAt  *time.Time      `gorm:"column:student_evaluation_evaluated_at" json:"student_evaluation_evaluated_at,omitempty"`
	StudentEvaluationScores       *datatypes.JSON `gorm:"column:student_evaluation_scores" json:"student_evaluation_scores,omitempty"`
	StudentEvaluationCreatedAt    time.Time       `gorm:"column:student_evaluation_created_at;not null;autoCreateTime" json:"student_evaluation_created_at"`
	StudentEvaluationUpdatedAt    time.Time       `gorm:"column:student_evaluation_updated_at;not null;autoUpdateTime" json:"student_evaluation_updated_at"`
}

func (StudentEvaluationModel) TableName() string { return "student_evaluations" }
