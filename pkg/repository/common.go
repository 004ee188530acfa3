package repository

import "strings"

// fatalErr marks an error as non-retryable so the repeater gives up immediately
type fatalErr struct {
	err error
}

func (e *fatalErr) Error() string { return e.err.Error() }

// busyMarkers identify SQLite contention errors worth retrying
var busyMarkers = []string{"SQLITE_BUSY", "database is locked", "database table is locked"}

func isBusyErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, m := range busyMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
