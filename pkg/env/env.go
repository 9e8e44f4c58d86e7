package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	pkgstrings "github.com/klwxsrx/media-service/pkg/strings"
)

var ErrNotFound = errors.New("env not found")

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

// LoadDotEnv populates the process environment from the given files,
// never overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var result T
		return result, fmt.Errorf("%w: %s with type %T", ErrNotFound, key, result)
	}

	result, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return result, fmt.Errorf("env %s with type %T has invalid value: %w", key, result, err)
	}

	return result, nil
}

func ParseOptional[T pkgstrings.SupportedPointerParsingTypes](key string) (T, error) {
	var result T
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return result, nil
	}

	result, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return result, fmt.Errorf("env %s with type %T has invalid value: %w", key, result, err)
	}

	return result, nil
}
