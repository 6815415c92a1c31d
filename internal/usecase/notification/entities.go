package notification

import "errors"

var (
	ErrNotConfigured = errors.New("push notifications not configured")
	ErrNoDevices     = errors.New("no registered devices")
	ErrInvalidToken  = errors.New("invalid device token")
)

type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// Result of one fan-out. InvalidTokens are tokens the provider reported as
// no longer registered.
type Result struct {
	Success       int
	Failure       int
	InvalidTokens []string
}

type SaveTokenInput struct {
	UserID   uint64
	Token    string
	Platform string
}

type TestResultDTO struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
