package model

// TaskMessage is the JSON payload delivered to the worker endpoint by the
// queue daemon. Only the Type field is mandatory; Data and Metadata carry
// task-specific content and are passed through to the task handler as-is.
type TaskMessage struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Data     map[string]any    `json:"data"`
	Metadata map[string]string `json:"metadata"`
}
