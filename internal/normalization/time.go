package normalization

import (
	"time"
	// Embed the IANA zone database so the report zone resolves on hosts
	// without one (containers, scratch images).
	_ "time/tzdata"
)

// reportZone is the fixed target zone for all calendar bucketing. Trading
// days and months follow US Eastern wall-clock time, daylight saving
// included, regardless of where the analysis runs.
const reportZone = "America/New_York"

var eastern = mustLoadReportZone()

func mustLoadReportZone() *time.Location {
	loc, err := time.LoadLocation(reportZone)
	if err != nil {
		panic("load report zone " + reportZone + ": " + err.Error())
	}
	return loc
}

// NormalizeEpoch converts a UTC epoch-seconds timestamp into the fixed
// US Eastern report zone.
func NormalizeEpoch(ts int64) time.Time {
	return time.Unix(ts, 0).In(eastern)
}
