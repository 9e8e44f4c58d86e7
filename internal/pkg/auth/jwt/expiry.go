package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidExpiry = errors.New("invalid credential expiry")

// ParseExpiry accepts Go durations such as "90m" or "24h" and whole days such as "7d".
// "0" disables expiry. Negative values are rejected.
func ParseExpiry(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)

	var (
		expiry time.Duration
		err    error
	)
	if days, ok := strings.CutSuffix(value, "d"); ok {
		var n int64
		n, err = strconv.ParseInt(days, 10, 64)
		if err == nil && n > int64(time.Duration(1<<63-1)/(24*time.Hour)) {
			err = errors.New("value out of range")
		}
		expiry = time.Duration(n) * 24 * time.Hour
	} else {
		expiry, err = time.ParseDuration(value)
	}
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidExpiry, value, err)
	}
	if expiry < 0 {
		return 0, fmt.Errorf("%w %q: must not be negative", ErrInvalidExpiry, value)
	}

	return expiry, nil
}
