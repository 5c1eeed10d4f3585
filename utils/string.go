package utils

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"strings"
)

func Pluralize(s string, count int64) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", s)
	}

	lower := strings.ToLower(s)

	// directories, but not days
	if len(lower) > 1 && strings.HasSuffix(lower, "y") && !strings.ContainsRune("aeiou", rune(lower[len(lower)-2])) {
		return fmt.Sprintf("%s %sies", humanize.Comma(count), s[:len(s)-1])
	}

	// batches, hashes
	if strings.HasSuffix(lower, "h") {
		s += "e"
	}

	return fmt.Sprintf("%s %ss", humanize.Comma(count), s)
}

func IsInArray(s string, values []string) bool {
	for _, value := range values {
		if value == s {
			return true
		}
	}

	return false
}

func PrintFormattedTitle(title string) {
	color.New(color.FgHiCyan).Fprintln(consoleOutput, title)
	fmt.Fprintln(consoleOutput, strings.Repeat("=", len(title)))
}
