// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import "github.com/beevik/etree"

// rewriteNamespaces converts inline default-namespace declarations on
// extension elements into references to a single prefix bound at the
// document root. Elements in the base TCX namespace and attribute values
// are untouched. Running this on an already-prefixed document is a no-op.
func (p *Pipeline) rewriteNamespaces(root *etree.Element, rep *Report) error {
	prefixUsed := false

	var walk func(el *etree.Element) error
	walk = func(el *etree.Element) error {
		if attr := el.SelectAttr("xmlns"); attr != nil && attr.Value == p.cfg.ExtensionURI && el != root {
			if err := p.ensurePrefix(root); err != nil {
				return err
			}
			el.RemoveAttr("xmlns")
			applyPrefix(el, p.cfg.ExtensionPrefix)
			rep.InlineDeclsRewritten++
		}
		if el.Space == p.cfg.ExtensionPrefix {
			prefixUsed = true
		}
		for _, child := range el.ChildElements() {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return err
	}

	// An input may already use the prefix without declaring it; the output
	// must still carry the binding at the root.
	if prefixUsed {
		return p.ensurePrefix(root)
	}
	return nil
}

// ensurePrefix declares the extension prefix at the document root, exactly
// once. A prefix already bound to a different URI is a configuration
// conflict; it is never silently rebound.
func (p *Pipeline) ensurePrefix(root *etree.Element) error {
	key := "xmlns:" + p.cfg.ExtensionPrefix
	if attr := root.SelectAttr(key); attr != nil {
		if attr.Value != p.cfg.ExtensionURI {
			return &NamespaceConflictError{
				Prefix: p.cfg.ExtensionPrefix,
				Bound:  attr.Value,
				Wanted: p.cfg.ExtensionURI,
			}
		}
		return nil
	}
	root.CreateAttr(key, p.cfg.ExtensionURI)
	return nil
}

// applyPrefix qualifies el and its default-namespace descendants with the
// prefix. Children that are explicitly prefixed, or that open their own
// default namespace, belong elsewhere and are left alone.
func applyPrefix(el *etree.Element, prefix string) {
	el.Space = prefix
	for _, child := range el.ChildElements() {
		if child.Space != "" || child.SelectAttr("xmlns") != nil {
			continue
		}
		applyPrefix(child, prefix)
	}
}
