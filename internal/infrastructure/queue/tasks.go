package queue

// Task types routed through asynq. The worker registers a handler per
// type; the API and scheduler enqueue them.
const (
	TypeEmailWelcome = "task:email:welcome"
	TypeEmailDigest  = "task:email:digest"
)

// Queue names in priority order
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

type WelcomeEmailPayload struct {
	Email string `json:"email"`
}

// DigestPayload is empty on purpose; the handler resolves the audience
// and content at run time so a stale payload never goes out.
type DigestPayload struct{}
