package strings

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	SupportedValueParsingTypes interface {
		bool | int | int64 | uint | float64 | string | time.Time | time.Duration | uuid.UUID
	}

	SupportedPointerParsingTypes interface {
		*bool | *int | *int64 | *uint | *float64 | *string | *time.Time | *time.Duration | *uuid.UUID
	}
)

func ParseTypedValue[T any](value string) (T, error) {
	var v any
	var err error
	var blank T
	switch any(blank).(type) {
	case bool:
		v, err = strconv.ParseBool(value)
	case int:
		v, err = strconv.Atoi(value)
	case int64:
		v, err = strconv.ParseInt(value, 10, 64)
	case uint:
		var u uint64
		u, err = strconv.ParseUint(value, 10, 64)
		v = uint(u)
	case float64:
		v, err = strconv.ParseFloat(value, 64)
	case string:
		v = value
	case time.Time:
		v, err = parseTime(value)
	case time.Duration:
		v, err = time.ParseDuration(value)
	case uuid.UUID:
		v, err = uuid.Parse(value)
	case *bool:
		v, err = parsePointer[bool](value)
	case *int:
		v, err = parsePointer[int](value)
	case *int64:
		v, err = parsePointer[int64](value)
	case *uint:
		v, err = parsePointer[uint](value)
	case *float64:
		v, err = parsePointer[float64](value)
	case *string:
		v, err = parsePointer[string](value)
	case *time.Time:
		v, err = parsePointer[time.Time](value)
	case *time.Duration:
		v, err = parsePointer[time.Duration](value)
	case *uuid.UUID:
		v, err = parsePointer[uuid.UUID](value)
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}

	if err != nil {
		return blank, fmt.Errorf("failed to convert to type %T: %w", blank, err)
	}
	return v.(T), nil
}

func parsePointer[T any](value string) (*T, error) {
	v, err := ParseTypedValue[T](value)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	unixTime, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, errors.New("RFC3339 or unix time expected")
	}
	if unixTime < 0 {
		return time.Time{}, errors.New("got negative seconds value")
	}

	return time.Unix(unixTime, 0), nil
}
