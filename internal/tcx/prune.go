// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import "github.com/beevik/etree"

// pruneFields removes the proprietary Resistance element from each
// trackpoint's extension block, and the configured aggregate-statistics
// children from each lap. Non-matching siblings keep their order; absence
// of any target is not an error.
func (p *Pipeline) pruneFields(root *etree.Element, rep *Report) {
	aggregates := make(map[string]bool, len(p.cfg.LapAggregates))
	for _, name := range p.cfg.LapAggregates {
		aggregates[name] = true
	}

	for _, act := range activityRoots(root) {
		for _, lap := range lapsOf(act) {
			for _, child := range lap.ChildElements() {
				if aggregates[child.Tag] && child.Tag != "Track" {
					lap.RemoveChild(child)
					rep.AggregatesRemoved++
				}
			}
			for _, tp := range trackpointsOf(lap) {
				tpx := tpxOf(tp)
				if tpx == nil {
					continue
				}
				for _, field := range tpx.ChildElements() {
					if field.Tag == "Resistance" {
						tpx.RemoveChild(field)
						rep.ResistanceRemoved++
					}
				}
			}
		}
	}
}
