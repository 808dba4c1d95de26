package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"signupapi/internal/model"
	"signupapi/internal/service"
	serviceMocks "signupapi/internal/service/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(prometheus.NewRegistry())
	require.NoError(t, err)
	return d
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("routes by type and counts success", func(t *testing.T) {
		d := newTestDispatcher(t)

		var got model.TaskMessage
		d.Register("demo.task", func(ctx context.Context, msg model.TaskMessage) error {
			got = msg
			return nil
		})

		msg := model.TaskMessage{ID: "m-1", Type: "demo.task", Data: map[string]any{"k": "v"}}
		err := d.Dispatch(ctx, msg)

		assert.NoError(t, err)
		assert.Equal(t, "m-1", got.ID)
		assert.Equal(t, float64(1), testutil.ToFloat64(d.tasksTotal.WithLabelValues("demo.task", "ok")))
	})

	t.Run("handler error counts as error", func(t *testing.T) {
		d := newTestDispatcher(t)

		d.Register("demo.task", func(ctx context.Context, msg model.TaskMessage) error {
			return errors.New("boom")
		})

		err := d.Dispatch(ctx, model.TaskMessage{Type: "demo.task"})

		assert.Error(t, err)
		assert.Equal(t, float64(1), testutil.ToFloat64(d.tasksTotal.WithLabelValues("demo.task", "error")))
	})

	t.Run("unknown type", func(t *testing.T) {
		d := newTestDispatcher(t)

		err := d.Dispatch(ctx, model.TaskMessage{Type: "nobody.home"})

		assert.ErrorIs(t, err, ErrUnknownType)
		assert.Equal(t, float64(1), testutil.ToFloat64(d.tasksTotal.WithLabelValues("nobody.home", "unknown")))
	})

	t.Run("last registration wins", func(t *testing.T) {
		d := newTestDispatcher(t)

		d.Register("demo.task", func(ctx context.Context, msg model.TaskMessage) error {
			return errors.New("old handler")
		})
		d.Register("demo.task", func(ctx context.Context, msg model.TaskMessage) error {
			return nil
		})

		assert.NoError(t, d.Dispatch(ctx, model.TaskMessage{Type: "demo.task"}))
		assert.ElementsMatch(t, []string{"demo.task"}, d.Types())
	})
}

func TestWelcomeEmailTask(t *testing.T) {
	ctx := context.Background()
	h := WelcomeEmail()

	t.Run("happy path", func(t *testing.T) {
		err := h(ctx, model.TaskMessage{
			ID:   "m-1",
			Type: TaskWelcomeEmail,
			Data: map[string]any{"email": "jordan@example.com", "name": "Jordan"},
		})
		assert.NoError(t, err)
	})

	t.Run("missing email", func(t *testing.T) {
		err := h(ctx, model.TaskMessage{ID: "m-2", Type: TaskWelcomeEmail, Data: map[string]any{}})
		assert.Error(t, err)
	})
}

func TestGenerateReportTask(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit day", func(t *testing.T) {
		mReports := new(serviceMocks.MockReportService)
		h := GenerateReport(mReports)

		day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
		mReports.On("GenerateDaily", ctx, day).
			Return(&service.Report{Key: "reports/2026-08-24.csv", Count: 3}, nil)

		err := h(ctx, model.TaskMessage{
			ID:   "m-1",
			Type: TaskGenerateReport,
			Data: map[string]any{"day": "2026-08-24"},
		})

		assert.NoError(t, err)
		mReports.AssertExpectations(t)
	})

	t.Run("defaults to previous day", func(t *testing.T) {
		mReports := new(serviceMocks.MockReportService)
		h := GenerateReport(mReports)

		mReports.On("GenerateDaily", ctx, mock.MatchedBy(func(day time.Time) bool {
			want := time.Now().UTC().AddDate(0, 0, -1)
			return day.Sub(want) < time.Minute && want.Sub(day) < time.Minute
		})).Return(&service.Report{Key: "k"}, nil)

		err := h(ctx, model.TaskMessage{ID: "m-2", Type: TaskGenerateReport})

		assert.NoError(t, err)
		mReports.AssertExpectations(t)
	})

	t.Run("invalid day", func(t *testing.T) {
		mReports := new(serviceMocks.MockReportService)
		h := GenerateReport(mReports)

		err := h(ctx, model.TaskMessage{
			ID:   "m-3",
			Type: TaskGenerateReport,
			Data: map[string]any{"day": "24/08/2026"},
		})

		assert.Error(t, err)
		mReports.AssertNotCalled(t, "GenerateDaily", mock.Anything, mock.Anything)
	})

	t.Run("report failure propagates", func(t *testing.T) {
		mReports := new(serviceMocks.MockReportService)
		h := GenerateReport(mReports)

		mReports.On("GenerateDaily", ctx, mock.Anything).
			Return(nil, errors.New("bucket down"))

		err := h(ctx, model.TaskMessage{ID: "m-4", Type: TaskGenerateReport})
		assert.ErrorContains(t, err, "bucket down")
	})
}
