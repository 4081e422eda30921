// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/nsuurmey/fitness-file-fixing/pkg/types"
)

// Summarize extracts catalog metadata from a parsed document: sport,
// activity ID, lap and trackpoint counts, final distance, and the span
// from the first to the last parseable trackpoint time. Missing pieces
// stay zero-valued; a summary never fails.
func Summarize(doc *etree.Document) types.ActivitySummary {
	var sum types.ActivitySummary
	root := doc.Root()
	if root == nil {
		return sum
	}

	var first, last time.Time

	for _, act := range activityRoots(root) {
		if sum.Sport == "" {
			if sport := act.SelectAttrValue("Sport", ""); sport != "" {
				sum.Sport = sport
			} else if act.Tag == "Course" {
				sum.Sport = "Course"
			}
		}
		if sum.ActivityID == "" {
			if id := act.SelectElement("Id"); id != nil {
				sum.ActivityID = strings.TrimSpace(id.Text())
			} else if name := act.SelectElement("Name"); name != nil {
				sum.ActivityID = strings.TrimSpace(name.Text())
			}
		}

		for _, lap := range lapsOf(act) {
			sum.Laps++
			for _, tp := range trackpointsOf(lap) {
				sum.Trackpoints++
				if timeEl := tp.SelectElement("Time"); timeEl != nil {
					if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(timeEl.Text())); err == nil {
						if first.IsZero() || ts.Before(first) {
							first = ts
						}
						if ts.After(last) {
							last = ts
						}
					}
				}
				if distEl := tp.SelectElement("DistanceMeters"); distEl != nil {
					if d, err := strconv.ParseFloat(strings.TrimSpace(distEl.Text()), 64); err == nil && d > sum.TotalDistanceMeters {
						sum.TotalDistanceMeters = d
					}
				}
			}
		}
	}

	sum.StartTime = first
	if !first.IsZero() && last.After(first) {
		sum.Duration = last.Sub(first)
	}
	return sum
}
