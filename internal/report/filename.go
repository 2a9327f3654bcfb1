package report

import (
	"fmt"
	"regexp"
)

// nonAlphanumeric matches every character stripped from download names.
var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Filename returns the attachment name for an entity report:
// the name without non-alphanumeric characters, "-", the id and ".pdf".
func Filename(name string, id int64) string {
	return fmt.Sprintf("%s-%d.pdf", nonAlphanumeric.ReplaceAllString(name, ""), id)
}
