package logging

import "strings"

// FormatError renders an error as an indented multi-line block:
//
//	Error fetching data from database:
//	    connection refused
//
// Multi-line causes (driver errors often span lines) stay aligned under the
// title, which keeps grepping a shared log file sane.
func FormatError(err error, title string) string {
	if title == "" {
		title = "Error"
	}
	msg := strings.ReplaceAll(err.Error(), "\n", "\n    ")
	return "\n    " + title + ":\n    " + msg
}
