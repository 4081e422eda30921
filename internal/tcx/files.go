// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nsuurmey/fitness-file-fixing/pkg/types"
)

// ConvertFile reads inPath, runs the repair pipeline, and atomically writes
// the result to outPath. On any failure outPath is left untouched: not
// created, or not overwritten. The returned summary describes the repaired
// document, for catalog recording.
func (p *Pipeline) ConvertFile(inPath, outPath string) (*Report, types.ActivitySummary, error) {
	var sum types.ActivitySummary

	data, err := os.ReadFile(inPath)
	if err != nil {
		return nil, sum, fmt.Errorf("reading %s: %w", inPath, err)
	}
	doc, err := Load(data)
	if err != nil {
		return nil, sum, fmt.Errorf("converting %s: %w", inPath, err)
	}
	rep, err := p.Run(doc)
	if err != nil {
		return nil, sum, fmt.Errorf("converting %s: %w", inPath, err)
	}
	out, err := Serialize(doc, p.cfg.Indent)
	if err != nil {
		return nil, sum, err
	}
	if err := writeFileAtomic(outPath, out); err != nil {
		return nil, sum, err
	}
	return rep, Summarize(doc), nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts every .tcx file directly under dir into outDir,
// printing per-file status to w. A failing file does not stop the batch;
// the summary reports how many failed.
func (p *Pipeline) ConvertBatch(dir, outDir string, w io.Writer) (BatchResult, error) {
	var result BatchResult

	entries, err := os.ReadDir(dir)
	if err != nil {
		return result, fmt.Errorf("reading batch directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return result, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".tcx") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		outPath := filepath.Join(outDir, OutputName(name))
		if _, _, err := p.ConvertFile(filepath.Join(dir, name), outPath); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s\n", name, outPath)
		result.Converted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, nil
}

// OutputName derives a batch output filename: ride.tcx -> ride_fixed.tcx.
func OutputName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_fixed" + ext
}
