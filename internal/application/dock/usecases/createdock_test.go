package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harbormaster/internal/application/dock/dto"
	"harbormaster/internal/domain/dock"
	apperrors "harbormaster/internal/shared/errors"
)

func TestCreateDockUseCase_Execute_Success(t *testing.T) {
	var created *dock.Dock
	mockRepo := &mockDockRepository{
		CreateFunc: func(ctx context.Context, d *dock.Dock) error {
			created = d
			return d.SetID(1)
		},
	}

	useCase := NewCreateDockUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), dto.CreateDockRequest{
		Location: "Pier 4",
		Capacity: 3,
		Notes:    "deep water berth",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Pier 4", result.Location)
	assert.Equal(t, 3, result.Capacity)
	assert.Equal(t, "active", result.Status)
	assert.NotEmpty(t, result.SID)

	require.NotNil(t, created)
	assert.Equal(t, uint(1), created.ID())
}

func TestCreateDockUseCase_Execute_InvalidCapacity(t *testing.T) {
	useCase := NewCreateDockUseCase(&mockDockRepository{}, &mockLogger{})

	for _, capacity := range []int{0, -1} {
		result, err := useCase.Execute(context.Background(), dto.CreateDockRequest{
			Location: "Pier 4",
			Capacity: capacity,
		})

		require.Error(t, err)
		assert.Nil(t, result)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	}
}

func TestCreateDockUseCase_Execute_LocationExists(t *testing.T) {
	mockRepo := &mockDockRepository{
		ExistsByLocationFunc: func(ctx context.Context, location string) (bool, error) {
			return true, nil
		},
	}

	useCase := NewCreateDockUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), dto.CreateDockRequest{
		Location: "Pier 4",
		Capacity: 3,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dock.ErrDockLocationExists)
}

func TestCreateDockUseCase_Execute_SaveFailed(t *testing.T) {
	mockRepo := &mockDockRepository{
		CreateFunc: func(ctx context.Context, d *dock.Dock) error {
			return errors.New("database error")
		},
	}

	useCase := NewCreateDockUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), dto.CreateDockRequest{
		Location: "Pier 4",
		Capacity: 3,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to save dock")
}
