package utils

import "strings"

// MediaResolver converts stored picture paths into fully-qualified display
// URLs. The base URL is passed in explicitly so callers stay independent of
// process-wide state.
type MediaResolver struct {
	BaseURL string
}

func NewMediaResolver(baseURL string) *MediaResolver {
	return &MediaResolver{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve returns a full URL for a stored path. Absolute URLs pass through
// unchanged; empty paths resolve to an empty string.
func (r *MediaResolver) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return r.BaseURL + "/" + strings.TrimLeft(path, "/")
}
