package callback

import (
	"encoding/json"
	"fmt"
	"io"
)

// maxBodySize bounds callback bodies read by Parse.
const maxBodySize = 1 << 20

// Action is a user action reported with a callback.
type Action struct {
	Type   ActionType `json:"type"`
	UserID string     `json:"userid"`
}

// History describes the changes saved with a document version.
type History struct {
	ServerVersion string          `json:"serverVersion,omitempty"`
	Changes       json.RawMessage `json:"changes,omitempty"`
}

// Callback is the save-callback payload sent by the document service.
// It must be passed through Service.Authenticate before it is trusted.
type Callback struct {
	Key           string        `json:"key"`
	Status        TrackerStatus `json:"status"`
	URL           string        `json:"url,omitempty"`
	ChangesURL    string        `json:"changesurl,omitempty"`
	History       *History      `json:"history,omitempty"`
	Users         []string      `json:"users,omitempty"`
	Actions       []Action      `json:"actions,omitempty"`
	LastSave      string        `json:"lastsave,omitempty"`
	NotModified   bool          `json:"notmodified,omitempty"`
	ForceSaveType ForceSaveType `json:"forcesavetype,omitempty"`
	FileType      string        `json:"filetype,omitempty"`
	UserData      string        `json:"userdata,omitempty"`
	Token         string        `json:"token,omitempty"`
}

// Parse decodes a callback body. Field validation happens after
// authentication, because a signed body may carry nothing but the token.
func Parse(r io.Reader) (Callback, error) {
	var cb Callback
	if err := json.NewDecoder(io.LimitReader(r, maxBodySize)).Decode(&cb); err != nil {
		return Callback{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return cb, nil
}

// Validate checks the fields every callback must carry.
func (cb Callback) Validate() error {
	if cb.Key == "" {
		return ErrMissingKey
	}
	return nil
}

// fromClaims rebuilds a Callback from verified token claims.
func fromClaims(claims map[string]any) (Callback, error) {
	raw, err := json.Marshal(claims)
	if err != nil {
		return Callback{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	var cb Callback
	if err := json.Unmarshal(raw, &cb); err != nil {
		return Callback{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return cb, nil
}
