package utils

import (
	"fmt"
	"modifications-service/internal/pkg/constvars"
	"regexp"
	"strings"
)

var projectRecordRe = regexp.MustCompile(constvars.RegexProjectRecord)

// ParseProjectRecordReference splits a project record reference into the
// record identifier and the modification suffix. "1234567/2" yields
// ("1234567", "2"); a bare "1234567" yields an empty suffix. A reference
// that matches neither shape is a data-integrity failure, never silently
// defaulted.
func ParseProjectRecordReference(reference string) (recordID, modificationSuffix string, err error) {
	if !projectRecordRe.MatchString(reference) {
		return "", "", fmt.Errorf("malformed project record reference %q", reference)
	}
	parts := strings.SplitN(reference, "/", 2)
	recordID = parts[0]
	if len(parts) == 2 {
		modificationSuffix = parts[1]
	}
	return recordID, modificationSuffix, nil
}
