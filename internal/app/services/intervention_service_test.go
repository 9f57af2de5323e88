package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/riskwatch/internal/app/models"
	"github.com/yigit/riskwatch/internal/app/models/dto"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
)

func TestInterventionService_CreateAndList(t *testing.T) {
	svc, _, store := newTestServices(t, nil, nil)
	ctx := context.Background()

	base := time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	sid, err := svc.StudentService.CreateStudent(ctx, newStudentRequest("Jane", 0.8, 0))
	require.NoError(t, err)

	first, err := svc.InterventionService.CreateIntervention(ctx, sid, &dto.CreateInterventionRequest{Recommendation: "first"})
	require.NoError(t, err)
	second, err := svc.InterventionService.CreateIntervention(ctx, sid, &dto.CreateInterventionRequest{Recommendation: "second", Notes: strPtr("n")})
	require.NoError(t, err)

	list, err := svc.InterventionService.ListInterventions(ctx, sid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)
	assert.Equal(t, first, list[1].ID)
	assert.Equal(t, models.DefaultInterventionStatus, list[1].Status)
	require.NotNil(t, list[1].Notes)
	assert.Equal(t, "", *list[1].Notes)
	assert.Equal(t, "n", *list[0].Notes)
}

func TestInterventionService_CreateForMissingStudent(t *testing.T) {
	svc, _, _ := newTestServices(t, nil, nil)
	_, err := svc.InterventionService.CreateIntervention(context.Background(), 404, &dto.CreateInterventionRequest{Recommendation: "r"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.InterventionService.CreateIntervention(context.Background(), 1, &dto.CreateInterventionRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestInterventionService_PartialUpdate(t *testing.T) {
	svc, _, _ := newTestServices(t, nil, nil)
	ctx := context.Background()

	sid, err := svc.StudentService.CreateStudent(ctx, newStudentRequest("Jane", 0.8, 0))
	require.NoError(t, err)
	iid, err := svc.InterventionService.CreateIntervention(ctx, sid, &dto.CreateInterventionRequest{Recommendation: "r", Notes: strPtr("keep me")})
	require.NoError(t, err)

	updated, err := svc.InterventionService.UpdateIntervention(ctx, iid, &dto.UpdateInterventionRequest{Status: strPtr("Resolved")})
	require.NoError(t, err)
	assert.Equal(t, "Resolved", updated.Status)
	assert.Equal(t, "keep me", *updated.Notes)

	updated, err = svc.InterventionService.UpdateIntervention(ctx, iid, &dto.UpdateInterventionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Resolved", updated.Status)
	assert.Equal(t, "keep me", *updated.Notes)

	updated, err = svc.InterventionService.UpdateIntervention(ctx, iid, nil)
	require.NoError(t, err)
	assert.Equal(t, "Resolved", updated.Status)

	_, err = svc.InterventionService.UpdateIntervention(ctx, 999, &dto.UpdateInterventionRequest{Status: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrInterventionNotFound)
}
