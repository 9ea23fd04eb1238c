package helper

import "strings"

// ExtractBearerToken returns the token part of "Bearer <token>" (scheme is case-insensitive).
func ExtractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	const p = "bearer "
	if len(header) <= len(p) || !strings.EqualFold(header[:len(p)], p) {
		return ""
	}
	return strings.TrimSpace(header[len(p):])
}
