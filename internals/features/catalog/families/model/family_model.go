// file: internals/features/catalog/families/model/family_model.go
package model

import "time"

// NOTE:
// - family_id: 3 karakter uppercase, PK, immutable
// - tidak ada soft delete; family hanya bisa di-nonaktifkan (family_status)
type FamilyModel struct {
	FamilyID        string    `gorm:"column:family_id;type:varchar(3);primaryKey" json:"family_id"`
	FamilyName      string    `gorm:"column:family_name;type:varchar(120);not null" json:"family_name"`
	FamilyStatus    string    `gorm:"column:family_status;type:varchar(10);not null;default:'Activo';index" json:"family_status"`
	FamilyCreatedAt time.Time `gorm:"column:family_created_at;not null;autoCreateTime" json:"family_created_at"`
	FamilyUpdatedAt time.Time `gorm:"column:family_updated_at;not null;autoUpdateTime" json:"family_updated_at"`
}

func (FamilyModel) TableName() string { return "families" }
