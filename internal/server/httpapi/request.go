package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
)

// flexString accepts either a JSON string or a JSON number and keeps the
// literal text. Older mobile builds send custo as a number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("must be a string or a number")
	}
	*f = flexString(n.String())
	return nil
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type projectRequest struct {
	Name   string     `json:"nome"`
	Cost   flexString `json:"custo"`
	Status string     `json:"status"`
	UserID string     `json:"user_id"`
}

type estimateRequest struct {
	UserID      string     `json:"user_id"`
	Consumption flexString `json:"consumo_kwh"`
}

type registerResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
