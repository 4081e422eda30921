// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ActivitySummary describes one activity as read from a TCX document.
type ActivitySummary struct {
	// Sport is the Activity Sport attribute (e.g. "Biking"), or "Course"
	// for course documents.
	Sport string `json:"sport" yaml:"sport"`

	// ActivityID is the Activity Id element text, conventionally the
	// ISO 8601 start time of the recording.
	ActivityID string `json:"activity_id" yaml:"activity_id"`

	// StartTime is the timestamp of the first trackpoint, zero if the
	// document has no parseable trackpoint times.
	StartTime time.Time `json:"start_time" yaml:"start_time"`

	// Laps is the number of laps in the activity.
	Laps int `json:"laps" yaml:"laps"`

	// Trackpoints is the total number of samples across all laps.
	Trackpoints int `json:"trackpoints" yaml:"trackpoints"`

	// TotalDistanceMeters is the distance of the last sample, in meters.
	TotalDistanceMeters float64 `json:"total_distance_meters" yaml:"total_distance_meters"`

	// Duration is the span from the first to the last trackpoint time.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// ConversionRecord is one catalog entry for a completed conversion.
type ConversionRecord struct {
	ID int64 `json:"id" yaml:"id"`

	ActivitySummary `yaml:",inline"`

	// InputPath and OutputPath are the paths as given on the command line.
	InputPath  string `json:"input_path" yaml:"input_path"`
	OutputPath string `json:"output_path" yaml:"output_path"`

	// ConvertedAt is when the conversion completed (UTC).
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
