// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
)

// Load parses raw TCX bytes into a mutable element tree. Malformed XML
// yields a *ParseError and no tree.
func Load(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Err: err}
	}
	if doc.Root() == nil {
		return nil, &ParseError{Err: fmt.Errorf("document has no root element")}
	}
	return doc, nil
}

// Serialize renders the tree to indented XML text with an XML declaration
// and a single trailing newline. The tree is read, not mutated; element and
// attribute order is emitted as the pipeline left it.
func Serialize(doc *etree.Document, indent int) ([]byte, error) {
	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	out.SetRoot(doc.Root().Copy())
	out.Indent(indent)

	data, err := out.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// writeFileAtomic writes data to path via a temporary file in the same
// directory, renaming only on success. A failed conversion or write never
// leaves a partial file at path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s to %s: %w", tmpPath, path, err)
	}
	return nil
}
