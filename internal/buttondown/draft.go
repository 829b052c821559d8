package buttondown

const (
	// DraftsURL is the Buttondown endpoint that creates a new draft.
	DraftsURL = "https://api.buttondown.email/v1/drafts"

	// MsgNotConfigured is shown when the submit command runs without an API key.
	MsgNotConfigured = "Please set your API key in the settings!"

	// MsgSent is shown after the draft was accepted.
	MsgSent = "Sent draft to Buttondown"

	// MsgFailed is shown for every kind of failure, server side or transport.
	MsgFailed = "Something went wrong sending draft to Buttondown. Please check the log for more info"
)

// Outcome is the user visible result of a submission.
type Outcome int

const (
	// NotConfigured means no API key was present and nothing was sent.
	NotConfigured Outcome = iota
	// Sent means the API accepted the draft.
	Sent
	// Failed means the API rejected the draft or could not be reached.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case NotConfigured:
		return "not_configured"
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Draft is the request body sent to the drafts endpoint.
type Draft struct {
	Body    string `json:"body"`
	Subject string `json:"subject"`
}

// Result of a single Submit call.
type Result struct {
	Outcome    Outcome
	StatusCode int   // HTTP status, zero if no response was received
	Err        error // underlying cause, nil on Sent
}
