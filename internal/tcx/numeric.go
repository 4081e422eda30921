// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// normalizeNumbers coerces per-sample heart-rate, cadence, and power text
// to integer literals. Distance and speed are handled by other stages and
// are never touched here.
func (p *Pipeline) normalizeNumbers(root *etree.Element, rep *Report) error {
	for _, act := range activityRoots(root) {
		for _, lap := range lapsOf(act) {
			for _, tp := range trackpointsOf(lap) {
				if hr := tp.SelectElement("HeartRateBpm"); hr != nil {
					if v := hr.SelectElement("Value"); v != nil {
						if err := truncateText(v, rep); err != nil {
							return err
						}
					}
				}
				if cad := tp.SelectElement("Cadence"); cad != nil {
					if err := truncateText(cad, rep); err != nil {
						return err
					}
				}
				tpx := tpxOf(tp)
				if tpx == nil {
					continue
				}
				for _, tag := range []string{"Watts", "RunCadence"} {
					if el := childByTag(tpx, tag); el != nil {
						if err := truncateText(el, rep); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

// truncateText rewrites el's text as an integer literal when it lexically
// carries a fractional component: 95.0 becomes 95, 64.9 becomes 64.
// Truncation is toward zero, never rounding. Text already in integer form
// is left byte-for-byte unchanged.
func truncateText(el *etree.Element, rep *Report) error {
	text := strings.TrimSpace(el.Text())
	if text == "" {
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &InvalidNumericValueError{Element: el.FullTag(), Value: text, Err: err}
	}
	if !strings.Contains(text, ".") {
		return nil
	}
	el.SetText(strconv.FormatInt(int64(math.Trunc(f)), 10))
	rep.ValuesNormalized++
	return nil
}
