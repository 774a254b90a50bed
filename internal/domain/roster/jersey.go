package roster

import (
	"encoding/json"
	"fmt"
)

// JerseyNumber is always stored as text, but old export files sometimes carry
// a bare number under the same key, so the type accepts both JSON shapes and
// coerces the numeric one to its string form.
type JerseyNumber string

func (j JerseyNumber) String() string {
	return string(j)
}

func (j *JerseyNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*j = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*j = JerseyNumber(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("jersey number must be a string or a number: %w", err)
	}
	*j = JerseyNumber(n.String())
	return nil
}

func (j JerseyNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(j))
}
