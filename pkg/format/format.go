// Package format renders amounts, dates and sizes for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Currency renders an amount in rupees with two decimals.
func Currency(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// Date renders a timestamp as e.g. "2 Jan 2026".
func Date(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// Time renders a timestamp as e.g. "3:04 PM".
func Time(t time.Time) string {
	return t.Format("3:04 PM")
}

// DateTime combines Date and Time.
func DateTime(t time.Time) string {
	return Date(t) + " at " + Time(t)
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FileSize renders a byte count with a 1024 base, two decimals at most.
func FileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	value := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[i]
}

// Capitalize upper-cases the first letter.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Truncate cuts the string to length runes plus an ellipsis.
func Truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length]) + "..."
}
