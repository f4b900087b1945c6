package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// envReader reads typed variables and collects parse errors instead of stopping.
type envReader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func newEnvReader() *envReader {
	return &envReader{lookup: os.LookupEnv}
}

// raw returns the trimmed value, or "" when the variable is unset or blank.
func (e *envReader) raw(key string) string {
	v, _ := e.lookup(key)
	return strings.TrimSpace(v)
}

func (e *envReader) fail(key string, format string, args ...any) {
	e.errs = append(e.errs, fmt.Errorf("%s: %s", key, fmt.Sprintf(format, args...)))
}

func (e *envReader) str(key, fallback string) string {
	if v := e.raw(key); v != "" {
		return v
	}
	return fallback
}

func (e *envReader) oneOf(key, fallback string, allowed ...string) string {
	v := strings.ToLower(e.str(key, fallback))
	if !slices.Contains(allowed, v) {
		e.fail(key, "invalid value %q, valid values are %s", v, strings.Join(allowed, ", "))
		return fallback
	}
	return v
}

func (e *envReader) boolean(key string, fallback bool) bool {
	v := e.raw(key)
	if v == "" {
		return fallback
	}
	out, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, "parse bool %q", v)
		return fallback
	}
	return out
}

func (e *envReader) integer(key string, fallback, minimum int) int {
	v := e.raw(key)
	if v == "" {
		return fallback
	}
	out, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, "parse int %q", v)
		return fallback
	}
	if out < minimum {
		e.fail(key, "must be >= %d", minimum)
	}
	return out
}

type durationCheck func(time.Duration) error

func atLeast(minimum time.Duration) durationCheck {
	return func(d time.Duration) error {
		if d < minimum {
			return fmt.Errorf("must be >= %s", minimum)
		}
		return nil
	}
}

func (e *envReader) duration(key string, fallback time.Duration, check durationCheck) time.Duration {
	v := e.raw(key)
	if v == "" {
		return fallback
	}
	out, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, "parse duration %q", v)
		return fallback
	}
	if check != nil {
		if err := check(out); err != nil {
			e.fail(key, "%v", err)
		}
	}
	return out
}

func (e *envReader) location(key, fallback string) *time.Location {
	name := e.str(key, fallback)
	loc, err := time.LoadLocation(name)
	if err != nil {
		e.fail(key, "load location %q", name)
		return time.UTC
	}
	return loc
}
