// Package brief assembles and serves the daily brief.
package brief

import "time"

// Brief status values reported to the client
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Brief is the daily summary record returned by the API.
// BriefingText carries Markdown on success; ErrorMessage is set on error.
type Brief struct {
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	BriefingText string    `json:"briefing_text,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
}
