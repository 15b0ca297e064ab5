package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OriginList is an ordered list of CORS origins. It decodes either a JSON
// array or a comma-separated list.
type OriginList []string

// Decode implements envconfig.Decoder
func (o *OriginList) Decode(value string) error {
	value = strings.TrimSpace(value)

	var raw []string
	if strings.HasPrefix(value, "[") {
		if err := json.Unmarshal([]byte(value), &raw); err != nil {
			return fmt.Errorf("invalid JSON origin list: %w", err)
		}
	} else {
		raw = strings.Split(value, ",")
	}

	origins := make(OriginList, 0, len(raw))
	for _, origin := range raw {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	*o = origins
	return nil
}

// Flag is a boolean setting. Decode accepts, in any letter case, 1/0,
// true/false, t/f, yes/no, y/n and on/off.
type Flag bool

// Decode implements envconfig.Decoder
func (f *Flag) Decode(value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "t", "yes", "y", "on":
		*f = true
	case "0", "false", "f", "no", "n", "off":
		*f = false
	default:
		return fmt.Errorf("invalid boolean %q", value)
	}
	return nil
}
