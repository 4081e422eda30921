// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// recalcSpeeds overwrites every trackpoint speed with the value derived
// from consecutive distance and time samples, in meters per second. The
// pair-walk restarts at each lap, so a lap's first sample is always 0, as
// is a sample whose timestamp equals its predecessor's. A shrinking
// distance yields a negative speed; this matches the source behavior and
// is deliberately not clamped (see DESIGN.md). Whatever speed the input
// carried is ignored.
func (p *Pipeline) recalcSpeeds(root *etree.Element, rep *Report) error {
	for _, act := range activityRoots(root) {
		for _, lap := range lapsOf(act) {
			if err := p.recalcLap(root, lap, rep); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Pipeline) recalcLap(root, lap *etree.Element, rep *Report) error {
	var prevTime time.Time
	var prevDist float64
	havePrev := false

	for _, tp := range trackpointsOf(lap) {
		rep.Trackpoints++

		timeEl := tp.SelectElement("Time")
		distEl := tp.SelectElement("DistanceMeters")
		if timeEl == nil || distEl == nil {
			// Sample carries no pace data; leave it alone and keep the
			// previous anchor for the next delta.
			continue
		}

		ts, err := time.Parse(time.RFC3339, strings.TrimSpace(timeEl.Text()))
		if err != nil {
			return &InvalidNumericValueError{Element: "Time", Value: timeEl.Text(), Err: err}
		}
		dist, err := strconv.ParseFloat(strings.TrimSpace(distEl.Text()), 64)
		if err != nil {
			return &InvalidNumericValueError{Element: "DistanceMeters", Value: distEl.Text(), Err: err}
		}

		speed := 0.0
		if havePrev {
			if dt := ts.Sub(prevTime).Seconds(); dt != 0 {
				speed = (dist - prevDist) / dt
			}
		}
		if speed < 0 {
			rep.NegativeSpeeds++
		}
		if err := p.setSpeed(root, tp, speed); err != nil {
			return err
		}
		rep.SpeedsRecomputed++

		prevTime, prevDist, havePrev = ts, dist, true
	}
	return nil
}

// setSpeed overwrites the trackpoint's extension speed, creating the
// Extensions/TPX/Speed chain when the sample has none. Created extension
// elements use the root-bound prefix, which is declared on demand.
func (p *Pipeline) setSpeed(root, tp *etree.Element, speed float64) error {
	ext := tp.SelectElement("Extensions")
	if ext == nil {
		ext = tp.CreateElement("Extensions")
	}
	tpx := childByTag(ext, "TPX")
	if tpx == nil {
		if err := p.ensurePrefix(root); err != nil {
			return err
		}
		tpx = ext.CreateElement(p.cfg.ExtensionPrefix + ":TPX")
	}
	sp := childByTag(tpx, "Speed")
	if sp == nil {
		if err := p.ensurePrefix(root); err != nil {
			return err
		}
		// Speed comes first in the extension sequence.
		sp = etree.NewElement(p.cfg.ExtensionPrefix + ":Speed")
		tpx.InsertChildAt(0, sp)
	}
	sp.SetText(formatSpeed(speed))
	return nil
}

// formatSpeed renders a speed as a plain decimal literal with no exponent
// and no trailing zeros: 6.04, 5.6, 0.
func formatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'f', -1, 64)
}
