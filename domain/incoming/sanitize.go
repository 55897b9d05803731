package incoming

import (
	"strings"
	"unicode"
)

// sanitizeString strips control characters from a string leaf. Non-string
// leaves pass through sanitizeValue unchanged.
func sanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func sanitizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		return sanitizeString(v)
	case map[string]interface{}:
		return sanitizeMap(v)
	case []interface{}:
		for i := range v {
			v[i] = sanitizeValue(v[i])
		}
		return v
	default:
		return value
	}
}

func sanitizeMap(payload map[string]interface{}) map[string]interface{} {
	for key, value := range payload {
		payload[key] = sanitizeValue(value)
	}
	return payload
}
