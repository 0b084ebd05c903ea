// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package finder

import (
	"fmt"
	"time"
)

// windowDays is the length of the trailing search window.
const windowDays = 7

const dateFmt = "2006-01-02"

// SearchWindow is an inclusive publication-date range [Start, End], held at
// date precision in UTC. Dates stay in time.Time internally and are rendered
// to ISO-8601 text only at the API-call boundary.
type SearchWindow struct {
	Start time.Time
	End   time.Time
}

// NewSearchWindow returns the trailing seven-day window ending on the
// calendar date of ref in UTC. Time of day and zone are dropped.
func NewSearchWindow(ref time.Time) SearchWindow {
	y, m, d := ref.UTC().Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return SearchWindow{
		Start: end.AddDate(0, 0, -windowDays),
		End:   end,
	}
}

// String renders the window as the range expression the search service
// expects, e.g. "2024-05-03-2024-05-10".
func (w SearchWindow) String() string {
	return fmt.Sprintf("%s-%s", w.Start.Format(dateFmt), w.End.Format(dateFmt))
}
