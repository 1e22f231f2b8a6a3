package common

import "strings"

// WipeByteArray overwrites the contents of b with zeros. The prompt wipes
// the terminal read buffer as soon as its value has been copied into the
// form; the copy itself lives as long as the draft does.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerToken extracts the token from an Authorization header value.
// It returns "" when the header does not use the Bearer scheme.
func BearerToken(header string) string {
	if !strings.HasPrefix(header, BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
}
