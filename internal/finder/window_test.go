// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package finder

import (
	"testing"
	"time"
)

func TestNewSearchWindowTrailingSevenDays(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart string
		wantEnd   string
	}{
		{
			"mid month",
			time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			"2024-05-03", "2024-05-10",
		},
		{
			"month rollover",
			time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
			"2024-02-25", "2024-03-03",
		},
		{
			"leap day in window",
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			"2024-02-23", "2024-03-01",
		},
		{
			"non-leap february",
			time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			"2023-02-22", "2023-03-01",
		},
		{
			"year rollover",
			time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			"2024-12-26", "2025-01-02",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewSearchWindow(tt.ref)
			if got := w.Start.Format(dateFmt); got != tt.wantStart {
				t.Errorf("Start = %s, want %s", got, tt.wantStart)
			}
			if got := w.End.Format(dateFmt); got != tt.wantEnd {
				t.Errorf("End = %s, want %s", got, tt.wantEnd)
			}
			// The window is always exactly seven days wide.
			if got := w.End.Sub(w.Start); got != 7*24*time.Hour {
				t.Errorf("End - Start = %v, want 168h", got)
			}
		})
	}
}

func TestNewSearchWindowDropsTimeOfDay(t *testing.T) {
	ref := time.Date(2024, 5, 10, 23, 59, 58, 0, time.UTC)
	w := NewSearchWindow(ref)
	if !w.End.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("End = %v, want midnight UTC on the reference date", w.End)
	}
}

func TestNewSearchWindowNormalizesZone(t *testing.T) {
	// 2024-05-10 23:00 -05:00 is 2024-05-11 04:00 UTC; the UTC date wins.
	loc := time.FixedZone("UTC-5", -5*60*60)
	ref := time.Date(2024, 5, 10, 23, 0, 0, 0, loc)
	w := NewSearchWindow(ref)
	if got := w.End.Format(dateFmt); got != "2024-05-11" {
		t.Errorf("End = %s, want 2024-05-11", got)
	}
}

func TestSearchWindowString(t *testing.T) {
	w := NewSearchWindow(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	if got := w.String(); got != "2024-05-03-2024-05-10" {
		t.Errorf("String() = %q, want %q", got, "2024-05-03-2024-05-10")
	}
}
