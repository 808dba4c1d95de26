package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"signupapi/internal/model"
	"signupapi/internal/service"
)

// Task types handled by this application.
const (
	TaskWelcomeEmail   = "signup.welcome_email"
	TaskGenerateReport = "report.generate"
)

// WelcomeEmail returns the handler for signup.welcome_email messages.
// Mail delivery is owned by the platform's notification integration; the
// handler validates the payload and records the send intent.
func WelcomeEmail() HandlerFunc {
	enc := json.NewEncoder(os.Stdout)

	return func(ctx context.Context, msg model.TaskMessage) error {
		email, _ := msg.Data["email"].(string)
		if email == "" {
			return fmt.Errorf("welcome email task %s: missing email in data", msg.ID)
		}
		name, _ := msg.Data["name"].(string)

		_ = enc.Encode(map[string]any{
			"ts":         time.Now().UTC().Format(time.RFC3339Nano),
			"level":      "info",
			"event":      "welcome_email_queued",
			"message_id": msg.ID,
			"email":      email,
			"name":       name,
		})
		return nil
	}
}

// GenerateReport returns the handler for report.generate messages.
// An optional "day" field (YYYY-MM-DD) selects the report day; it defaults to
// the previous UTC day, matching the daily schedule that enqueues it.
func GenerateReport(reports service.ReportService) HandlerFunc {
	return func(ctx context.Context, msg model.TaskMessage) error {
		day := time.Now().UTC().AddDate(0, 0, -1)
		if raw, ok := msg.Data["day"].(string); ok && raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return fmt.Errorf("report task %s: invalid day %q: %w", msg.ID, raw, err)
			}
			day = parsed
		}

		rep, err := reports.GenerateDaily(ctx, day)
		if err != nil {
			return fmt.Errorf("report task %s: %w", msg.ID, err)
		}

		logTaskJSON(map[string]any{
			"event":      "signup_report_generated",
			"message_id": msg.ID,
			"key":        rep.Key,
			"count":      rep.Count,
			"size":       rep.Size,
		})
		return nil
	}
}

func logTaskJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal task log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
