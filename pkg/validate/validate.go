// Package validate checks user input before it reaches the backend.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Harshchoudhary07/Greenly/pkg/format"
)

// Error carries a human-readable validation message.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Email reports whether the address looks deliverable.
func Email(email string) bool {
	return emailPattern.MatchString(email)
}

// Phone reports whether the number is a valid Indian mobile number.
// Whitespace is stripped before matching.
func Phone(phone string) bool {
	return phonePattern.MatchString(spacePattern.ReplaceAllString(phone, ""))
}

// Image checks an upload's content type and size against the allowed
// set and maximum.
func Image(contentType string, size int64, allowedTypes []string, maxSize int64) error {
	allowed := false
	for _, t := range allowedTypes {
		if strings.EqualFold(contentType, t) {
			allowed = true
			break
		}
	}
	if !allowed {
		return &Error{Message: "Invalid file type. Please upload JPG, PNG, or WebP images."}
	}
	if size > maxSize {
		return &Error{Message: fmt.Sprintf("File size must be less than %s", format.FileSize(maxSize))}
	}
	return nil
}
