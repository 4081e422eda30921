// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes the full conversion history to w as a YAML document.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	records, err := s.List(ctx, -1)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(map[string]any{"conversions": records})
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// ExportJSON writes the full conversion history to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	records, err := s.List(ctx, -1)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"conversions": records})
}
