package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/outliner/model"
)

const sampleInterchange = `{
  "pages": [
    {"number": 1, "width": 612, "height": 792}
  ],
  "fragments": [
    {"text": "Document Title", "page": 1, "font": "Helvetica-Bold", "font_size": 24, "is_bold": true, "x0": 72, "y0": 600, "x1": 340, "y1": 624},
    {"text": "Introduction", "page": 1, "font": "Helvetica", "font_size": 14, "x0": 72, "y0": 500, "x1": 160, "y1": 514}
  ]
}`

func TestParseJSONDocument(t *testing.T) {
	doc, err := ParseJSON([]byte(sampleInterchange))
	if err != nil {
		t.Fatalf("ParseJSON() error: %v", err)
	}

	if len(doc.Pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(doc.Pages))
	}
	page := doc.Pages[0]
	if page.Width != 612 || page.Height != 792 {
		t.Errorf("page dims = (%v, %v), want (612, 792)", page.Width, page.Height)
	}
	if len(page.Fragments) != 2 {
		t.Fatalf("got %d fragments, want 2", len(page.Fragments))
	}

	title := page.Fragments[0]
	if title.Text != "Document Title" || !title.Bold || title.FontSize != 24 {
		t.Errorf("title fragment = %+v", title)
	}
	if title.BBox.Left() != 72 || title.BBox.Top() != 624 {
		t.Errorf("bbox = %+v, want corners (72,600)-(340,624)", title.BBox)
	}
	if title.BBox.Width != 268 || title.BBox.Height != 24 {
		t.Errorf("bbox size = (%v, %v), want (268, 24)", title.BBox.Width, title.BBox.Height)
	}
}

func TestParseJSONBareArray(t *testing.T) {
	data := `[{"text": "Heading", "page": 1, "font_size": 12, "x0": 0, "y0": 0, "x1": 50, "y1": 12}]`

	doc, err := ParseJSON([]byte(data))
	if err != nil {
		t.Fatalf("ParseJSON() error: %v", err)
	}
	if doc.FragmentCount() != 1 {
		t.Errorf("FragmentCount() = %d, want 1", doc.FragmentCount())
	}
}

func TestParseJSONMissingFontSize(t *testing.T) {
	data := `[{"text": "No size", "page": 1, "x0": 0, "y0": 0, "x1": 50, "y1": 12}]`

	if _, err := ParseJSON([]byte(data)); !errors.Is(err, model.ErrExtractionIncomplete) {
		t.Errorf("ParseJSON() error = %v, want ErrExtractionIncomplete", err)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	if _, err := ParseJSON([]byte(`{not json`)); err == nil {
		t.Error("ParseJSON() accepted malformed input")
	}
}

func TestJSONFileDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(sampleInterchange), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := NewJSONFile(path).Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if doc.FragmentCount() != 2 {
		t.Errorf("FragmentCount() = %d, want 2", doc.FragmentCount())
	}
}

func TestJSONFileMissing(t *testing.T) {
	if _, err := NewJSONFile("/nonexistent/doc.json").Document(); err == nil {
		t.Error("Document() succeeded for a missing file")
	}
}
