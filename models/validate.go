package models

import "strings"

// ValidationError membawa seluruh daftar aturan yang dilanggar.
type ValidationError struct {
	Rules []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Rules, "; ")
}
