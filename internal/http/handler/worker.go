package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"signupapi/internal/model"
	"signupapi/internal/worker"
)

// Headers set by the worker tier's queue daemon on forwarded requests.
const (
	SqsdMsgIDHeader    = "X-Aws-Sqsd-Msgid"
	SqsdTasknameHeader = "X-Aws-Sqsd-Taskname"
)

// WorkerEndpoint receives queue messages forwarded as HTTP POSTs.
//
// Contract: JSON body with a mandatory "type" field. 200 means the message is
// done and may be deleted from the queue; 500 means processing failed and the
// queue should redeliver. Malformed bodies are a 400 — redelivery cannot fix
// them.
func WorkerEndpoint(d *worker.Dispatcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var msg model.TaskMessage
		if err := json.Unmarshal(c.Body(), &msg); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_MESSAGE", "message body must be JSON")
		}
		if msg.Type == "" {
			return writeError(c, fiber.StatusBadRequest, "TYPE_REQUIRED", "message type is required")
		}
		if msg.ID == "" {
			msg.ID = c.Get(SqsdMsgIDHeader)
		}

		if err := d.Dispatch(c.UserContext(), msg); err != nil {
			if errors.Is(err, worker.ErrUnknownType) {
				return writeError(c, fiber.StatusInternalServerError, "UNKNOWN_TYPE", "no handler for message type")
			}
			return writeError(c, fiber.StatusInternalServerError, "TASK_FAILED", "task processing failed")
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"type":   msg.Type,
		})
	}
}

// ScheduledTask receives periodic-task POSTs from the platform timer.
// The task name arrives in the X-Aws-Sqsd-Taskname header; tasks maps it to a
// worker message type. defaultTask is used when the header is absent.
func ScheduledTask(d *worker.Dispatcher, tasks map[string]string, defaultTask string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Get(SqsdTasknameHeader)
		if name == "" {
			name = defaultTask
		}

		msgType, ok := tasks[name]
		if !ok {
			// A task name we never mapped is a deployment mistake; surface it
			// as a failure so the schedule shows red.
			return writeError(c, fiber.StatusInternalServerError, "UNKNOWN_TASK", "no mapping for scheduled task")
		}

		msg := model.TaskMessage{
			ID:   c.Get(SqsdMsgIDHeader),
			Type: msgType,
			Metadata: map[string]string{
				"scheduled_task": name,
			},
		}
		if err := d.Dispatch(c.UserContext(), msg); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "TASK_FAILED", "scheduled task failed")
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"task":   name,
		})
	}
}
