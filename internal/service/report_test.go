package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"signupapi/internal/model"
	repoMocks "signupapi/internal/repository/mocks"
	"signupapi/internal/storage"
	storeMocks "signupapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportService_GenerateDaily(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)
	from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockSignupRepository)
		mStore := new(storeMocks.MockStorage)
		svc := NewReportService(mRepo, mStore, "reports")

		mRepo.On("CreatedBetween", ctx, from, to).Return([]model.Signup{
			{ID: "id-1", Name: "A", Email: "a@example.com", CreatedAt: from.Add(time.Hour)},
			{ID: "id-2", Name: "B", Email: "b@example.com", CreatedAt: from.Add(2 * time.Hour)},
		}, nil)

		var uploaded string
		mStore.On("Put", ctx, "reports/2026-08-24.csv", mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "text/csv" && opt.Size > 0 && opt.Metadata["signup-count"] == "2"
		})).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			b, _ := io.ReadAll(r)
			uploaded = string(b)
			return storage.ObjectInfo{Key: key, Size: int64(len(b))}
		}, nil)

		rep, err := svc.GenerateDaily(ctx, day)

		assert.NoError(t, err)
		assert.Equal(t, "reports/2026-08-24.csv", rep.Key)
		assert.Equal(t, 2, rep.Count)

		lines := strings.Split(strings.TrimSpace(uploaded), "\n")
		assert.Len(t, lines, 3)
		assert.Equal(t, "id,name,email,created_at", lines[0])
		assert.Contains(t, lines[1], "a@example.com")

		mRepo.AssertExpectations(t)
		mStore.AssertExpectations(t)
	})

	t.Run("empty day still produces a header-only report", func(t *testing.T) {
		mRepo := new(repoMocks.MockSignupRepository)
		mStore := new(storeMocks.MockStorage)
		svc := NewReportService(mRepo, mStore, "reports")

		mRepo.On("CreatedBetween", ctx, from, to).Return([]model.Signup{}, nil)
		mStore.On("Put", ctx, "reports/2026-08-24.csv", mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "reports/2026-08-24.csv"}, nil)

		rep, err := svc.GenerateDaily(ctx, day)

		assert.NoError(t, err)
		assert.Equal(t, 0, rep.Count)
		mStore.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockSignupRepository)
		svc := NewReportService(mRepo, nil, "reports")

		mRepo.On("CreatedBetween", ctx, from, to).Return(nil, errors.New("db fail"))

		_, err := svc.GenerateDaily(ctx, day)
		assert.ErrorContains(t, err, "load signups")
	})

	t.Run("storage error", func(t *testing.T) {
		mRepo := new(repoMocks.MockSignupRepository)
		mStore := new(storeMocks.MockStorage)
		svc := NewReportService(mRepo, mStore, "reports")

		mRepo.On("CreatedBetween", ctx, from, to).Return([]model.Signup{}, nil)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("bucket down"))

		_, err := svc.GenerateDaily(ctx, day)
		assert.ErrorContains(t, err, "upload report")
	})

	t.Run("empty prefix falls back to reports", func(t *testing.T) {
		mRepo := new(repoMocks.MockSignupRepository)
		mStore := new(storeMocks.MockStorage)
		svc := NewReportService(mRepo, mStore, "")

		mRepo.On("CreatedBetween", ctx, from, to).Return([]model.Signup{}, nil)
		mStore.On("Put", ctx, "reports/2026-08-24.csv", mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "reports/2026-08-24.csv"}, nil)

		_, err := svc.GenerateDaily(ctx, day)
		assert.NoError(t, err)
		mStore.AssertExpectations(t)
	})
}
