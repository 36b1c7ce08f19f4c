package jsonutil

import (
	"fmt"
	"net/url"
	"strings"
)

// JSONToQueryString encodes m as a URL query string with keys in sorted order.
// Values are rendered with fmt, nil as "null".
func JSONToQueryString(m map[string]any) string {
	if len(m) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range m {
		values.Add(k, queryValue(v))
	}
	return values.Encode()
}

func queryValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = queryValue(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}

// QueryStringToJSON decodes a query string into a flat map. A leading "?" is
// allowed and the last value of a repeated key wins. Malformed pairs are skipped.
func QueryStringToJSON(s string) map[string]string {
	out := map[string]string{}
	s = strings.TrimPrefix(s, "?")
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			continue
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			continue
		}
		out[key] = val
	}
	return out
}
