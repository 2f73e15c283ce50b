// file: internals/features/evaluations/internships/model/internship_model.go
package model

import "time"

// InternshipModel: data FCT milik modul lain; core ini hanya membaca
// (cek eksistensi + join evaluasi).
type InternshipModel struct {
	InternshipID          uint       `gorm:"column:internship_id;primaryKey;autoIncrement" json:"internship_id"`
	InternshipStudentName string     `gorm:"column:internship_student_name;type:varchar(160);not null" json:"internship_student_name"`
	InternshipCompanyName string     `gorm:"column:internship_company_name;type:varchar(160)" json:"internship_company_name"`
	InternshipWorkshopID  *string    `gorm:"column:internship_workshop_id;type:varchar(5);index" json:"internship_workshop_id,omitempty"`
	InternshipStartDate   *time.Time `gorm:"column:internship_start_date;type:date" json:"internship_start_date,omitempty"`
	InternshipEndDate     *time.Time `gorm:"column:internship_end_date;type:date" json:"internship_end_date,omitempty"`
	InternshipCreatedAt   time.Time  `gorm:"column:internship_created_at;not null;autoCreateTime" json:"internship_created_at"`
}

func (InternshipModel) TableName() string { return "internships" }
