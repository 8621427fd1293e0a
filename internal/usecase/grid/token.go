package grid

import (
	"encoding/base64"
	"encoding/json"

	"salon-dashboard/internal/pkg/errs"
)

var ErrMalformedDragToken = errs.New("malformed drag token")

// dragPayload carries identity only; the drop resolves the record from the store.
type dragPayload struct {
	ID string `json:"id"`
}

func EncodeDragToken(appointmentID string) string {
	raw, _ := json.Marshal(dragPayload{ID: appointmentID})
	return base64.RawURLEncoding.EncodeToString(raw)
}

func DecodeDragToken(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", errs.Wrap(ErrMalformedDragToken, err.Error())
	}
	var p dragPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return "", errs.Wrap(ErrMalformedDragToken, err.Error())
	}
	if p.ID == "" {
		return "", ErrMalformedDragToken
	}
	return p.ID, nil
}
