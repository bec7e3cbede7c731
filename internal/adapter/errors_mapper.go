package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type fieldProblem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := detailMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrUnprocessable, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, msg)
	default:
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// detailMessage flattens a {"detail": ...} body into one line. Bodies in any
// other shape are returned trimmed.
func detailMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}

	var text string
	if err := json.Unmarshal(eb.Detail, &text); err == nil {
		return text
	}

	var problems []fieldProblem
	if err := json.Unmarshal(eb.Detail, &problems); err == nil {
		parts := make([]string, 0, len(problems))
		for _, p := range problems {
			field := ""
			if len(p.Loc) > 0 {
				field = fmt.Sprint(p.Loc[len(p.Loc)-1]) + ": "
			}
			parts = append(parts, field+p.Msg)
		}
		return strings.Join(parts, "; ")
	}

	return strings.TrimSpace(string(eb.Detail))
}
