package remote

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is terminal for the session: the credential has already
	// been cleared when it is returned.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNetwork      = errors.New("backend unreachable")
	ErrBadResponse  = errors.New("unexpected backend response")
)

// APIError is a request the backend rejected with a readable reason.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return e.Detail
}

// decodeDetail understands both {"detail": "..."} and
// {"detail": {"message": "..."}} bodies, plus validation lists.
func decodeDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Detail, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &list); err == nil && len(list) > 0 {
		return list[0].Msg
	}
	return ""
}
