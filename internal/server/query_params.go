package server

import (
	"strconv"
	"strings"
)

// parseOptionalBool parses a query value into a tri-state filter. An
// empty value means "no filter".
func parseOptionalBool(raw string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
