package handlers

import (
	"io"
	"net/url"
)

// QueryParams flattens a query string into single values; a repeated key keeps its last value
func QueryParams(u *url.URL) map[string]string {
	params := make(map[string]string)
	if u == nil {
		return params
	}
	for key, values := range u.Query() {
		if len(values) > 0 {
			params[key] = values[len(values)-1]
		}
	}
	return params
}

// RenderMessage writes text into target. A nil target is ignored.
func RenderMessage(target io.Writer, text string) {
	if target == nil {
		return
	}
	io.WriteString(target, text)
}
