// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import "github.com/beevik/etree"

// activityRoots returns the Activity and Course elements of the document,
// in document order.
func activityRoots(root *etree.Element) []*etree.Element {
	var out []*etree.Element
	if acts := root.SelectElement("Activities"); acts != nil {
		out = append(out, acts.SelectElements("Activity")...)
	}
	if courses := root.SelectElement("Courses"); courses != nil {
		out = append(out, courses.SelectElements("Course")...)
	}
	return out
}

func lapsOf(activity *etree.Element) []*etree.Element {
	return activity.SelectElements("Lap")
}

// trackpointsOf returns the trackpoints of every Track in the lap, in order.
func trackpointsOf(lap *etree.Element) []*etree.Element {
	var out []*etree.Element
	for _, track := range lap.SelectElements("Track") {
		out = append(out, track.SelectElements("Trackpoint")...)
	}
	return out
}

// childByTag returns the first child element with the given local name,
// under any namespace prefix. Extension children may appear prefixed or
// unprefixed depending on whether the rewrite stage has run.
func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// tpxOf returns the activity-extension block under a trackpoint's
// Extensions element, or nil if the sample has none.
func tpxOf(tp *etree.Element) *etree.Element {
	ext := tp.SelectElement("Extensions")
	if ext == nil {
		return nil
	}
	return childByTag(ext, "TPX")
}
