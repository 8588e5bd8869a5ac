package models

import (
	"bytes"
	"encoding/json"
)

// Owner is the owner reference attached to events and questions. Depending
// on the endpoint it arrives either as a bare numeric id or as an embedded
// object carrying an id (legacy payloads use "_id") and usually a username.
// Both shapes normalize into this one struct; a missing id leaves ID zero,
// which never matches a principal.
type Owner struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
}

func (o *Owner) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] != '{' {
		o.Username = ""
		return json.Unmarshal(b, &o.ID)
	}

	var obj struct {
		ID       *int64 `json:"id"`
		LegacyID *int64 `json:"_id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	switch {
	case obj.ID != nil:
		o.ID = *obj.ID
	case obj.LegacyID != nil:
		o.ID = *obj.LegacyID
	default:
		o.ID = 0
	}
	o.Username = obj.Username
	return nil
}

// IsOwner reports whether the principal is present and owns the resource.
// Mutation controls are shown if and only if this holds; the server still
// enforces the same rule independently.
func IsOwner(principal *User, owner Owner) bool {
	return principal != nil && owner.ID != 0 && principal.ID == owner.ID
}
