package models

// Student defines the student model based on the 'students' table.
// Categorical attributes are nullable.
type Student struct {
	ID                int64   `json:"id" db:"id" example:"1"`
	StudentName       string  `json:"student_name" db:"student_name" example:"Jane Doe"`
	Age               int     `json:"age" db:"age" example:"17"`
	GPA               float64 `json:"gpa" db:"gpa" example:"2.75"`
	Absences          int     `json:"absences" db:"absences" example:"4"`
	StudyTimeWeekly   float64 `json:"study_time_weekly" db:"study_time_weekly" example:"9.5"`
	Gender            *string `json:"gender" db:"gender" example:"Female"`
	Ethnicity         *string `json:"ethnicity" db:"ethnicity"`
	ParentalEducation *string `json:"parental_education" db:"parental_education"`
	Tutoring          *string `json:"tutoring" db:"tutoring" example:"Yes"`
	ParentalSupport   *string `json:"parental_support" db:"parental_support"`
	Extracurricular   *string `json:"extracurricular" db:"extracurricular"`
	Sports            *string `json:"sports" db:"sports"`
	Music             *string `json:"music" db:"music"`
	Volunteering      *string `json:"volunteering" db:"volunteering"`

	// Relations (populated when needed, never in list responses)
	Interventions []*Intervention `json:"-"`
}

// StudentColumns lists the mutable columns in table order
var StudentColumns = []string{
	"student_name", "age", "gpa", "absences", "study_time_weekly",
	"gender", "ethnicity", "parental_education", "tutoring", "parental_support",
	"extracurricular", "sports", "music", "volunteering",
}

// ColumnValues returns the values for StudentColumns, in the same order
func (s *Student) ColumnValues() []interface{} {
	return []interface{}{
		s.StudentName, s.Age, s.GPA, s.Absences, s.StudyTimeWeekly,
		s.Gender, s.Ethnicity, s.ParentalEducation, s.Tutoring, s.ParentalSupport,
		s.Extracurricular, s.Sports, s.Music, s.Volunteering,
	}
}

// ScanTargets returns pointers for id followed by StudentColumns
func (s *Student) ScanTargets() []interface{} {
	return []interface{}{
		&s.ID,
		&s.StudentName, &s.Age, &s.GPA, &s.Absences, &s.StudyTimeWeekly,
		&s.Gender, &s.Ethnicity, &s.ParentalEducation, &s.Tutoring, &s.ParentalSupport,
		&s.Extracurricular, &s.Sports, &s.Music, &s.Volunteering,
	}
}
