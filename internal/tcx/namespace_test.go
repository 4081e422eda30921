// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import (
	"testing"

	"github.com/nsuurmey/fitness-file-fixing/pkg/types"
)

func TestRewriteNamespacesNoOpOnPrefixedInput(t *testing.T) {
	input := `<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2" xmlns:ns3="http://www.garmin.com/xmlschemas/ActivityExtension/v2">
  <Activities><Activity Sport="Biking"><Id>x</Id><Lap><Track><Trackpoint>
    <Time>2026-08-01T10:00:00Z</Time><DistanceMeters>0</DistanceMeters>
    <Extensions><ns3:TPX><ns3:Speed>0</ns3:Speed></ns3:TPX></Extensions>
  </Trackpoint></Track></Lap></Activity></Activities>
</TrainingCenterDatabase>`

	doc, err := Load([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	rep := &Report{}
	if err := New(types.ConvertConfig{}).rewriteNamespaces(doc.Root(), rep); err != nil {
		t.Fatalf("rewriteNamespaces: %v", err)
	}
	if rep.InlineDeclsRewritten != 0 {
		t.Errorf("InlineDeclsRewritten = %d on an already-prefixed document", rep.InlineDeclsRewritten)
	}

	// Still exactly one declaration at the root.
	declared := 0
	for _, attr := range doc.Root().Attr {
		if attr.Space == "xmlns" && attr.Key == "ns3" {
			declared++
		}
	}
	if declared != 1 {
		t.Errorf("xmlns:ns3 declared %d times, want 1", declared)
	}
}

func TestRewriteNamespacesIgnoresForeignDeclarations(t *testing.T) {
	// An inline declaration for a different URI is not the extension
	// schema and must be left exactly as it is.
	input := `<TrainingCenterDatabase>
  <Activities><Activity Sport="Biking"><Id>x</Id><Lap><Track><Trackpoint>
    <Time>2026-08-01T10:00:00Z</Time><DistanceMeters>0</DistanceMeters>
    <Extensions><Custom xmlns="http://example.com/custom"><Field>1</Field></Custom></Extensions>
  </Trackpoint></Track></Lap></Activity></Activities>
</TrainingCenterDatabase>`

	doc, err := Load([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	rep := &Report{}
	if err := New(types.ConvertConfig{}).rewriteNamespaces(doc.Root(), rep); err != nil {
		t.Fatalf("rewriteNamespaces: %v", err)
	}
	if rep.InlineDeclsRewritten != 0 {
		t.Errorf("InlineDeclsRewritten = %d, want 0", rep.InlineDeclsRewritten)
	}

	custom := collectByTag(doc.Root(), "Custom")
	if len(custom) != 1 {
		t.Fatal("Custom element lost")
	}
	if attr := custom[0].SelectAttr("xmlns"); attr == nil || attr.Value != "http://example.com/custom" {
		t.Error("foreign inline declaration was altered")
	}
	if custom[0].Space != "" {
		t.Errorf("foreign element was prefixed as %q", custom[0].FullTag())
	}
}

func TestRewriteNamespacesCustomPrefix(t *testing.T) {
	cfg := types.DefaultConvertConfig()
	cfg.ExtensionPrefix = "ax"

	out, _, err := New(cfg).Convert([]byte(pelotonExport))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	doc, err := Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if attr := doc.Root().SelectAttr("xmlns:ax"); attr == nil || attr.Value != types.ActivityExtensionNS {
		t.Error("custom prefix not declared at the root")
	}
	for _, el := range collectByTag(doc.Root(), "TPX") {
		if el.Space != "ax" {
			t.Errorf("TPX qualified as %q, want prefix ax", el.FullTag())
		}
	}
}
