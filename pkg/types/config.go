// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration and record types shared between the
// CLI surface and the internal packages.
package types

// ActivityExtensionNS is the Garmin activity extension namespace. Per-sample
// speed, watts, and run cadence live under this URI in an Extensions block.
const ActivityExtensionNS = "http://www.garmin.com/xmlschemas/ActivityExtension/v2"

// TrainingCenterNS is the base TCX document namespace.
const TrainingCenterNS = "http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2"

// ConvertConfig holds settings for the TCX repair pipeline.
type ConvertConfig struct {
	// ExtensionURI is the namespace URI of the activity extension schema.
	ExtensionURI string `json:"extension_uri" yaml:"extension_uri"`

	// ExtensionPrefix is the prefix bound at the document root for
	// extension elements (default "ns3", matching Garmin exports).
	ExtensionPrefix string `json:"extension_prefix" yaml:"extension_prefix"`

	// LapAggregates lists the lap-level aggregate-statistics element names
	// to remove. This is an explicit, reviewable list; nothing is inferred
	// from element content.
	LapAggregates []string `json:"lap_aggregates" yaml:"lap_aggregates"`

	// Indent is the number of spaces per indentation level in the output
	// (default 2).
	Indent int `json:"indent" yaml:"indent"`
}

// DefaultConvertConfig returns the settings that produce TrainerRoad-readable
// output from a Peloton export.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		ExtensionURI:    ActivityExtensionNS,
		ExtensionPrefix: "ns3",
		LapAggregates: []string{
			"AverageHeartRateBpm",
			"MaximumHeartRateBpm",
			"MaximumSpeed",
			"Cadence",
			"Extensions",
		},
		Indent: 2,
	}
}

// CatalogConfig holds settings for the conversion-history catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding catalog.db.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of history entries listed
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
