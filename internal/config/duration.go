package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration so environment values can use a "d" (days)
// suffix in addition to the standard time.ParseDuration units. Session TTLs
// like "7d" read more naturally than "168h".
type Duration struct {
	time.Duration
}

// EnvDecode implements envconfig.Decoder. An empty value leaves the zero
// duration in place so struct-tag defaults apply.
func (d *Duration) EnvDecode(_ context.Context, raw string) error {
	if raw == "" {
		return nil
	}

	if days, found := strings.CutSuffix(raw, "d"); found {
		n, err := strconv.Atoi(days)
		if err != nil {
			return fmt.Errorf("invalid days value: %w", err)
		}
		d.Duration = time.Duration(n) * 24 * time.Hour
		return nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	d.Duration = parsed
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	return d.EnvDecode(context.Background(), string(text))
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (d Duration) String() string {
	return d.Duration.String()
}
