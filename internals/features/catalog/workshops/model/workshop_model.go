// file: internals/features/catalog/workshops/model/workshop_model.go
package model

import (
	"time"

	familyModel "fct_backend/internals/features/catalog/families/model"
)

// WorkshopModel menyimpan family sebagai ID saja (weak reference).
// Family di-resolve eksplisit oleh repository, tidak pernah di-embed di row.
type WorkshopModel struct {
	WorkshopID              string    `gorm:"column:workshop_id;type:varchar(5);primaryKey" json:"workshop_id"`
	WorkshopName            string    `gorm:"column:workshop_name;type:varchar(120);not null" json:"workshop_name"`
	WorkshopTitleCode       string    `gorm:"column:workshop_title_code;type:varchar(8);not null;uniqueIndex:uq_workshops_title_code" json:"workshop_title_code"`
	WorkshopFamilyID        string    `gorm:"column:workshop_family_id;type:varchar(3);not null;index" json:"workshop_family_id"`
	WorkshopStatus          string    `gorm:"column:workshop_status;type:varchar(10);not null;default:'Activo';index" json:"workshop_status"`
	WorkshopInternshipHours int       `gorm:"column:workshop_internship_hours;not null" json:"workshop_internship_hours"`
	WorkshopCreatedAt       time.Time `gorm:"column:workshop_created_at;not null;autoCreateTime" json:"workshop_created_at"`
	WorkshopUpdatedAt       time.Time `gorm:"column:workshop_updated_at;not null;autoUpdateTime" json:"workshop_updated_at"`
}

func (WorkshopModel) TableName() string { return "workshops" }

// WorkshopWithFamily is the read view: a workshop row plus its resolved family.
type WorkshopWithFamily struct {
	Workshop WorkshopModel
	Family   familyModel.FamilyModel
}
