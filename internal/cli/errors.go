package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errPersistOff = errors.New("persistence is off; pass --persist or set persist = true in config.toml")

type invalidIDError struct {
	raw string
}

func (e invalidIDError) Error() string {
	return fmt.Sprintf("invalid project id: %q (expected a positive integer)", e.raw)
}

func parseProjectID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil || id <= 0 {
		return 0, invalidIDError{raw: s}
	}
	return id, nil
}
