package prosemirror

import (
	"encoding/json"
	"strconv"
)

// GetString безопасно извлекает строковый атрибут.
func (a Attrs) GetString(key string) string {
	if a == nil {
		return ""
	}
	val, ok := a[key]
	if !ok {
		return ""
	}
	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt безопасно извлекает целочисленный атрибут.
func (a Attrs) GetInt(key string) int {
	if a == nil {
		return 0
	}
	switch v := a[key].(type) {
	// Из JSON приходит float64
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}

// GetBool безопасно извлекает булевый атрибут.
func (a Attrs) GetBool(key string) bool {
	if a == nil {
		return false
	}
	b, ok := a[key].(bool)
	if !ok {
		return false
	}
	return b
}
