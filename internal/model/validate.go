package model

import "net/url"

// Validate reports whether input is a well-formed absolute URL with both a
// scheme and a host. It performs no network access.
func Validate(input string) bool {
	if input == "" {
		return false
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return false
	}

	return parsed.IsAbs() && parsed.Host != ""
}
