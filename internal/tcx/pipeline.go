// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tcx repairs TCX activity exports so that platforms enforcing a
// strict reading of the schema can parse them. The repairs run as a fixed
// sequence of tree-rewriting stages over one in-memory document: strip the
// Creator metadata block, hoist inline extension-namespace declarations to a
// single root prefix, prune proprietary and aggregate fields, coerce
// heart-rate/cadence/watts text to integer literals, and recompute every
// per-sample speed from distance and time deltas.
package tcx

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/nsuurmey/fitness-file-fixing/pkg/types"
)

// Pipeline applies the repair stages to documents. A Pipeline is stateless
// between documents and safe to reuse; all behavior comes from the config
// captured at construction.
type Pipeline struct {
	cfg types.ConvertConfig
}

// New returns a Pipeline for the given config. Zero-valued fields fall back
// to the Peloton-to-TrainerRoad defaults.
func New(cfg types.ConvertConfig) *Pipeline {
	def := types.DefaultConvertConfig()
	if cfg.ExtensionURI == "" {
		cfg.ExtensionURI = def.ExtensionURI
	}
	if cfg.ExtensionPrefix == "" {
		cfg.ExtensionPrefix = def.ExtensionPrefix
	}
	if cfg.LapAggregates == nil {
		cfg.LapAggregates = def.LapAggregates
	}
	if cfg.Indent <= 0 {
		cfg.Indent = def.Indent
	}
	return &Pipeline{cfg: cfg}
}

// Report counts what each stage changed in one document.
type Report struct {
	CreatorsRemoved      int
	InlineDeclsRewritten int
	ResistanceRemoved    int
	AggregatesRemoved    int
	ValuesNormalized     int
	SpeedsRecomputed     int
	NegativeSpeeds       int
	Trackpoints          int
}

// Run mutates doc through every repair stage in order. A stage error aborts
// the run immediately; the document must then be considered corrupt and
// discarded, never serialized.
func (p *Pipeline) Run(doc *etree.Document) (*Report, error) {
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Err: fmt.Errorf("document has no root element")}
	}

	rep := &Report{}
	p.stripCreators(root, rep)
	if err := p.rewriteNamespaces(root, rep); err != nil {
		return nil, err
	}
	p.pruneFields(root, rep)
	if err := p.normalizeNumbers(root, rep); err != nil {
		return nil, err
	}
	if err := p.recalcSpeeds(root, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// Convert runs the whole load-repair-serialize pass over raw TCX bytes.
func (p *Pipeline) Convert(data []byte) ([]byte, *Report, error) {
	doc, err := Load(data)
	if err != nil {
		return nil, nil, err
	}
	rep, err := p.Run(doc)
	if err != nil {
		return nil, nil, err
	}
	out, err := Serialize(doc, p.cfg.Indent)
	if err != nil {
		return nil, nil, err
	}
	return out, rep, nil
}
