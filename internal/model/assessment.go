package model

// Assessment is a single student literacy record. Status tracks the
// workflow state and Level the assessed outcome; both are free-form
// strings set after creation through dedicated endpoints.
// swagger:model Assessment
type Assessment struct {
	BaseModel
	StudentAge        int    `gorm:"not null" json:"student_age"`
	StudentGender     string `gorm:"size:20" json:"student_gender"`
	StudentGradeLevel string `gorm:"size:50" json:"student_grade_level"`
	StudentCity       string `gorm:"size:100" json:"student_city"`
	StudentSchool     string `gorm:"size:150" json:"student_school"`
	StudentBarangay   string `gorm:"size:100" json:"student_barangay"`
	StudentRegion     string `gorm:"size:100" json:"student_region"`
	Status            string `gorm:"size:50" json:"status"`
	Level             string `gorm:"size:50" json:"level"`
}

func (Assessment) TableName() string {
	return "assessments"
}
