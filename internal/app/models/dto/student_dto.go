package dto

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/yigit/riskwatch/internal/app/models"
)

// CreateStudentRequest is the body of POST /student. Any id is ignored.
type CreateStudentRequest struct {
	StudentName       string   `json:"student_name" binding:"required,max=100" example:"Jane Doe"`
	Age               *int     `json:"age" binding:"required,gte=0" example:"17"`
	GPA               *float64 `json:"gpa" binding:"required,gte=0" example:"2.75"`
	Absences          *int     `json:"absences" binding:"required,gte=0" example:"4"`
	StudyTimeWeekly   *float64 `json:"study_time_weekly" binding:"required,gte=0" example:"9.5"`
	Gender            *string  `json:"gender" binding:"omitempty,max=50" example:"Female"`
	Ethnicity         *string  `json:"ethnicity" binding:"omitempty,max=50"`
	ParentalEducation *string  `json:"parental_education" binding:"omitempty,max=100"`
	Tutoring          *string  `json:"tutoring" binding:"omitempty,max=50"`
	ParentalSupport   *string  `json:"parental_support" binding:"omitempty,max=50"`
	Extracurricular   *string  `json:"extracurricular" binding:"omitempty,max=50"`
	Sports            *string  `json:"sports" binding:"omitempty,max=50"`
	Music             *string  `json:"music" binding:"omitempty,max=50"`
	Volunteering      *string  `json:"volunteering" binding:"omitempty,max=50"`
}

// ToModel builds a student from a bound create request
func (r *CreateStudentRequest) ToModel() *models.Student {
	s := &models.Student{
		StudentName:       r.StudentName,
		Gender:            r.Gender,
		Ethnicity:         r.Ethnicity,
		ParentalEducation: r.ParentalEducation,
		Tutoring:          r.Tutoring,
		ParentalSupport:   r.ParentalSupport,
		Extracurricular:   r.Extracurricular,
		Sports:            r.Sports,
		Music:             r.Music,
		Volunteering:      r.Volunteering,
	}
	if r.Age != nil {
		s.Age = *r.Age
	}
	if r.GPA != nil {
		s.GPA = *r.GPA
	}
	if r.Absences != nil {
		s.Absences = *r.Absences
	}
	if r.StudyTimeWeekly != nil {
		s.StudyTimeWeekly = *r.StudyTimeWeekly
	}
	return s
}

// UpdateStudentRequest lists the fields PUT /student/{id} may change.
// Absent fields keep their stored value; unknown keys are dropped by binding.
// An explicit null clears a nullable attribute.
type UpdateStudentRequest struct {
	StudentName       *string  `json:"student_name" binding:"omitempty,min=1,max=100"`
	Age               *int     `json:"age" binding:"omitempty,gte=0"`
	GPA               *float64 `json:"gpa" binding:"omitempty,gte=0"`
	Absences          *int     `json:"absences" binding:"omitempty,gte=0"`
	StudyTimeWeekly   *float64 `json:"study_time_weekly" binding:"omitempty,gte=0"`
	Gender            *string  `json:"gender" binding:"omitempty,max=50"`
	Ethnicity         *string  `json:"ethnicity" binding:"omitempty,max=50"`
	ParentalEducation *string  `json:"parental_education" binding:"omitempty,max=100"`
	Tutoring          *string  `json:"tutoring" binding:"omitempty,max=50"`
	ParentalSupport   *string  `json:"parental_support" binding:"omitempty,max=50"`
	Extracurricular   *string  `json:"extracurricular" binding:"omitempty,max=50"`
	Sports            *string  `json:"sports" binding:"omitempty,max=50"`
	Music             *string  `json:"music" binding:"omitempty,max=50"`
	Volunteering      *string  `json:"volunteering" binding:"omitempty,max=50"`

	nulls map[string]bool
}

// requiredStudentFields are the attributes that can never be null
var requiredStudentFields = []string{"student_name", "age", "gpa", "absences", "study_time_weekly"}

// UnmarshalJSON decodes the body and records which keys were sent as null
func (r *UpdateStudentRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateStudentRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.nulls = nil
	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			if r.nulls == nil {
				r.nulls = make(map[string]bool)
			}
			r.nulls[key] = true
		}
	}
	return nil
}

// NulledRequiredFields lists the non-nullable attributes that were sent as null
func (r *UpdateStudentRequest) NulledRequiredFields() []string {
	var out []string
	for _, key := range requiredStudentFields {
		if r.nulls[key] {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// Apply merges the present fields into s
func (r *UpdateStudentRequest) Apply(s *models.Student) {
	if r.StudentName != nil {
		s.StudentName = *r.StudentName
	}
	if r.Age != nil {
		s.Age = *r.Age
	}
	if r.GPA != nil {
		s.GPA = *r.GPA
	}
	if r.Absences != nil {
		s.Absences = *r.Absences
	}
	if r.StudyTimeWeekly != nil {
		s.StudyTimeWeekly = *r.StudyTimeWeekly
	}
	r.setOptional(&s.Gender, "gender", r.Gender)
	r.setOptional(&s.Ethnicity, "ethnicity", r.Ethnicity)
	r.setOptional(&s.ParentalEducation, "parental_education", r.ParentalEducation)
	r.setOptional(&s.Tutoring, "tutoring", r.Tutoring)
	r.setOptional(&s.ParentalSupport, "parental_support", r.ParentalSupport)
	r.setOptional(&s.Extracurricular, "extracurricular", r.Extracurricular)
	r.setOptional(&s.Sports, "sports", r.Sports)
	r.setOptional(&s.Music, "music", r.Music)
	r.setOptional(&s.Volunteering, "volunteering", r.Volunteering)
}

func (r *UpdateStudentRequest) setOptional(dst **string, key string, v *string) {
	switch {
	case v != nil:
		val := *v
		*dst = &val
	case r.nulls[key]:
		*dst = nil
	}
}
