// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import "github.com/beevik/etree"

// stripCreators removes the Creator metadata block from each Activity (and
// Course). The block identifies the exporting device or platform and trips
// strict parsers when the source platform fills it with nonconforming
// content. A missing Creator is not an error.
func (p *Pipeline) stripCreators(root *etree.Element, rep *Report) {
	for _, act := range activityRoots(root) {
		if creator := act.SelectElement("Creator"); creator != nil {
			act.RemoveChild(creator)
			rep.CreatorsRemoved++
		}
	}
}
