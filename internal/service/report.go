package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"
	"time"

	"signupapi/internal/repository"
	"signupapi/internal/storage"
)

// Report describes a generated signup report object.
type Report struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
	Size  int64  `json:"size"`
}

// ReportService exports signup reports to object storage.
// It backs the scheduled "daily-signup-report" task.
type ReportService interface {
	// GenerateDaily exports all signups created during the UTC day containing
	// the given instant as a CSV object and returns its info.
	GenerateDaily(ctx context.Context, day time.Time) (*Report, error)
}

type reportService struct {
	repo   repository.SignupRepository
	store  storage.Storage
	prefix string
}

// NewReportService constructs a ReportService writing under the given key prefix.
func NewReportService(repo repository.SignupRepository, store storage.Storage, prefix string) ReportService {
	if prefix == "" {
		prefix = "reports"
	}
	return &reportService{repo: repo, store: store, prefix: prefix}
}

func (s *reportService) GenerateDaily(ctx context.Context, day time.Time) (*Report, error) {
	from := day.UTC().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 1)

	items, err := s.repo.CreatedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load signups: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "name", "email", "created_at"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, it := range items {
		rec := []string{it.ID, it.Name, it.Email, it.CreatedAt.UTC().Format(time.RFC3339)}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	key := path.Join(s.prefix, from.Format("2006-01-02")+".csv")
	size := int64(buf.Len())

	info, err := s.store.Put(ctx, key, &buf, storage.PutObjectOptions{
		Size:        size,
		ContentType: "text/csv",
		Metadata: map[string]string{
			"report-day":   from.Format("2006-01-02"),
			"signup-count": fmt.Sprintf("%d", len(items)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	return &Report{Key: info.Key, Count: len(items), Size: size}, nil
}
