package digest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jobiq/jobiq/pkg/domain"
)

// ParsePreferences converts the stored preference blob into the typed record
// used by the digest pipeline. An absent blob parses to the zero value
// (digest disabled); a malformed blob is rejected so the caller can count it
// as a per-user failure. Job-type tags are opaque strings chosen by the
// frontend; they are normalized for comparison, not validated against a
// closed set.
func ParsePreferences(raw []byte) (domain.Preferences, error) {
	if len(raw) == 0 {
		return domain.Preferences{}, nil
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("parse preferences: %w", err)
	}

	if len(prefs.JobTypes) > 0 {
		normalized := make([]string, 0, len(prefs.JobTypes))
		seen := make(map[string]bool, len(prefs.JobTypes))
		for _, jt := range prefs.JobTypes {
			tag := NormalizeJobType(jt)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			normalized = append(normalized, tag)
		}
		prefs.JobTypes = normalized
	}

	return prefs, nil
}

// NormalizeJobType brings a job-type tag to its comparable form:
// lowercase, trimmed, with dashes and spaces collapsed to underscores.
func NormalizeJobType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
