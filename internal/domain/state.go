package domain

// Phase is the stage of a search session
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// SessionState is an immutable snapshot of what the UI shows.
// At most one of the success payload and the error message is set,
// and only in the matching phase. Build it with the constructors below.
type SessionState struct {
	phase    Phase
	response *WeatherResponse
	message  string
}

// Idle is the state before any search
func Idle() SessionState { return SessionState{phase: PhaseIdle} }

// Loading is the state while a request is outstanding
func Loading() SessionState { return SessionState{phase: PhaseLoading} }

// Succeeded holds the payload of a settled search
func Succeeded(resp WeatherResponse) SessionState {
	resp.Suggestions = cloneSuggestions(resp.Suggestions)
	return SessionState{phase: PhaseSuccess, response: &resp}
}

// Failed holds the user-visible message of a failed search
func Failed(message string) SessionState {
	return SessionState{phase: PhaseError, message: message}
}

func (s SessionState) Phase() Phase { return s.phase }

func (s SessionState) IsLoading() bool { return s.phase == PhaseLoading }

// Response returns the success payload, if any
func (s SessionState) Response() (WeatherResponse, bool) {
	if s.response == nil {
		return WeatherResponse{}, false
	}
	resp := *s.response
	resp.Suggestions = cloneSuggestions(resp.Suggestions)
	return resp, true
}

func cloneSuggestions(in []Suggestion) []Suggestion {
	out := make([]Suggestion, len(in))
	copy(out, in)
	return out
}

// Message returns the error message, if any
func (s SessionState) Message() (string, bool) {
	if s.phase != PhaseError {
		return "", false
	}
	return s.message, true
}
