package schedule

import (
	"sync"
	"time"
)

// ReferenceTimezone is the application's home region. All "is this occurrence in
// the past" comparisons resolve against this zone, never against the zone of the
// machine the code happens to run on: server and client commonly disagree, and a
// naive local-clock comparison shifts occurrences by hours or a whole day.
const ReferenceTimezone = "Europe/Madrid"

var (
	refLoc  *time.Location
	refOnce sync.Once
)

// ReferenceLocation returns the loaded reference timezone.
func ReferenceLocation() *time.Location {
	refOnce.Do(func() {
		loc, err := time.LoadLocation(ReferenceTimezone)
		if err != nil {
			// Without tzdata the best available approximation is a fixed CET
			// offset. DST edges will be off by an hour until tzdata is present.
			loc = time.FixedZone("CET", 60*60)
		}
		refLoc = loc
	})
	return refLoc
}

// NowIn returns the given instant as perceived in loc, retaining hour/minute.
func NowIn(loc *time.Location, now time.Time) time.Time {
	return now.In(loc)
}

// TodayIn returns midnight of the current calendar date as perceived in loc.
func TodayIn(loc *time.Location, now time.Time) time.Time {
	year, month, day := now.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// DateKey formats a time as the canonical per-occurrence date key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
