package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLowStockNotifier struct {
	mock.Mock
}

func (m *MockLowStockNotifier) Handle(ctx context.Context, cmd commands.NotifyLowStockCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func TestLowStockAlertJob_Run(t *testing.T) {
	t.Run("logs reported ingredients", func(t *testing.T) {
		var buf bytes.Buffer
		handler := &MockLowStockNotifier{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(3, nil).Once()

		job := jobs.NewLowStockAlertJob(handler, "", slog.New(slog.NewTextHandler(&buf, nil)))
		job.Run(t.Context())

		assert.Contains(t, buf.String(), "Low stock reported")
		assert.Contains(t, buf.String(), "ingredients=3")
		handler.AssertExpectations(t)
	})

	t.Run("logs failures", func(t *testing.T) {
		var buf bytes.Buffer
		handler := &MockLowStockNotifier{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("ledger offline")).Once()

		job := jobs.NewLowStockAlertJob(handler, "", slog.New(slog.NewTextHandler(&buf, nil)))
		job.Run(t.Context())

		assert.Contains(t, buf.String(), "Low stock alert job failed")
		assert.Contains(t, buf.String(), "ledger offline")
	})

	t.Run("quiet when nothing is low", func(t *testing.T) {
		var buf bytes.Buffer
		handler := &MockLowStockNotifier{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Once()

		job := jobs.NewLowStockAlertJob(handler, "", slog.New(slog.NewTextHandler(&buf, nil)))
		job.Run(t.Context())

		assert.Empty(t, buf.String())
	})
}

func TestJobManager(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("starts and stops", func(t *testing.T) {
		manager := jobs.NewJobManager(&MockLowStockNotifier{}, jobs.DefaultLowStockSchedule, logger)

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		manager := jobs.NewJobManager(&MockLowStockNotifier{}, "every now and then", logger)

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "low stock alert job")
	})
}
