package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"signupapi/internal/model"
)

// ErrUnknownType is returned when a message names a task no handler is registered for.
var ErrUnknownType = errors.New("unknown task type")

// HandlerFunc processes a single task message delivered by the worker tier.
type HandlerFunc func(ctx context.Context, msg model.TaskMessage) error

// Dispatcher routes task messages to registered handlers by message type.
// Register all handlers at startup; Register is not safe to call concurrently
// with Dispatch.
type Dispatcher struct {
	handlers   map[string]HandlerFunc
	tasksTotal *prometheus.CounterVec
	taskTime   *prometheus.HistogramVec
}

// NewDispatcher creates a Dispatcher and registers its metrics.
func NewDispatcher(reg prometheus.Registerer) (*Dispatcher, error) {
	d := &Dispatcher{
		handlers: make(map[string]HandlerFunc),
		tasksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worker_tasks_total",
				Help: "Total number of worker tasks processed.",
			},
			[]string{"type", "status"},
		),
		taskTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "worker_task_duration_seconds",
				Help:    "Worker task handler duration.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"type"},
		),
	}

	if err := reg.Register(d.tasksTotal); err != nil {
		return nil, err
	}
	if err := reg.Register(d.taskTime); err != nil {
		return nil, err
	}

	return d, nil
}

// Register binds a handler to a task type, replacing any previous binding.
func (d *Dispatcher) Register(taskType string, h HandlerFunc) {
	d.handlers[taskType] = h
}

// Types returns the registered task types.
func (d *Dispatcher) Types() []string {
	out := make([]string, 0, len(d.handlers))
	for t := range d.handlers {
		out = append(out, t)
	}
	return out
}

// Dispatch runs the handler registered for msg.Type.
// An unregistered type is a task failure (ErrUnknownType) so the queue
// redelivers rather than silently dropping the message.
func (d *Dispatcher) Dispatch(ctx context.Context, msg model.TaskMessage) error {
	h, ok := d.handlers[msg.Type]
	if !ok {
		d.tasksTotal.WithLabelValues(msg.Type, "unknown").Inc()
		return fmt.Errorf("%w: %q", ErrUnknownType, msg.Type)
	}

	start := time.Now()
	err := h(ctx, msg)
	d.taskTime.WithLabelValues(msg.Type).Observe(time.Since(start).Seconds())

	if err != nil {
		d.tasksTotal.WithLabelValues(msg.Type, "error").Inc()
		return err
	}
	d.tasksTotal.WithLabelValues(msg.Type, "ok").Inc()
	return nil
}
