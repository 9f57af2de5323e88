package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/riskwatch/internal/app/models"
)

func TestHandleValidationError(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	err := v.Struct(&RegisterRequest{})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	fields, ok := detail.Details.([]ErrorDetail)
	require.True(t, ok)
	assert.Len(t, fields, 2)
	assert.Equal(t, "Username is required", fields[0].Message)

	plain := HandleValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, "Invalid request format", plain.Message)
	assert.Equal(t, "unexpected EOF", plain.Details)
}

func TestUpdateStudentRequest_Apply(t *testing.T) {
	gender := "Male"
	s := &models.Student{ID: 3, StudentName: "Jane", Age: 17, GPA: 2.5, Absences: 4, Gender: &gender}

	name := "Janet"
	gpa := 0.0
	music := "Yes"
	req := UpdateStudentRequest{StudentName: &name, GPA: &gpa, Music: &music}
	req.Apply(s)

	assert.Equal(t, int64(3), s.ID)
	assert.Equal(t, "Janet", s.StudentName)
	assert.Equal(t, 0.0, s.GPA)
	assert.Equal(t, 17, s.Age)
	assert.Equal(t, 4, s.Absences)
	assert.Equal(t, "Male", *s.Gender)
	require.NotNil(t, s.Music)
	assert.Equal(t, "Yes", *s.Music)

	// the stored pointer must not alias the request
	music = "No"
	assert.Equal(t, "Yes", *s.Music)
}

func TestUpdateStudentRequest_NullClearsOptional(t *testing.T) {
	gender, music := "Male", "Yes"
	s := &models.Student{StudentName: "Jane", GPA: 2.5, Gender: &gender, Music: &music}

	var req UpdateStudentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"gender": null, "sports": "No", "nickname": null}`), &req))
	assert.Empty(t, req.NulledRequiredFields())
	req.Apply(s)

	assert.Nil(t, s.Gender)
	require.NotNil(t, s.Music)
	assert.Equal(t, "Yes", *s.Music)
	require.NotNil(t, s.Sports)
	assert.Equal(t, "No", *s.Sports)
	assert.Equal(t, 2.5, s.GPA)
}

func TestUpdateStudentRequest_NulledRequiredFields(t *testing.T) {
	var req UpdateStudentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"gpa": null, "age": null, "music": null}`), &req))
	assert.Equal(t, []string{"age", "gpa"}, req.NulledRequiredFields())
}

func TestNewInterventionListResponse(t *testing.T) {
	assert.NotNil(t, NewInterventionListResponse(nil))

	loc := time.FixedZone("UTC+3", 3*3600)
	out := NewInterventionListResponse([]*models.Intervention{{
		ID: 1, Recommendation: "r", Status: "Pending",
		CreatedAt: time.Date(2025, 4, 23, 15, 4, 59, 0, loc),
	}})
	require.Len(t, out, 1)
	assert.Equal(t, "2025-04-23 12:04", out[0].CreatedAt)
}
