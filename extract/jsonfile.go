package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tsawler/outliner/model"
)

// JSONFile reads the fragment interchange format: a JSON document listing
// extracted text fragments with font and position metadata, plus optional
// page dimensions. This is the format produced by standalone extraction
// tooling, and the easiest way to feed the pipeline from an extractor
// written in another language.
type JSONFile struct {
	// Path is the file to read
	Path string
}

// NewJSONFile creates a source reading the given file
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{Path: path}
}

// jsonDocument is the interchange file layout. A bare top-level array of
// fragments is also accepted.
type jsonDocument struct {
	Pages     []jsonPage     `json:"pages"`
	Fragments []jsonFragment `json:"fragments"`
}

type jsonPage struct {
	Number int     `json:"number"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonFragment struct {
	Text     string  `json:"text"`
	Page     int     `json:"page"`
	Font     string  `json:"font"`
	FontSize float64 `json:"font_size"`
	Bold     bool    `json:"is_bold"`
	Italic   bool    `json:"is_italic"`

	// Corner coordinates in PDF page space, Y up
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Document reads and parses the file into a model.Document
func (j *JSONFile) Document() (model.Document, error) {
	data, err := os.ReadFile(j.Path)
	if err != nil {
		return model.Document{}, fmt.Errorf("extract: reading %s: %w", j.Path, err)
	}
	return ParseJSON(data)
}

// ParseJSON parses interchange-format bytes into a model.Document. It
// accepts either the full document object or a bare fragment array.
func ParseJSON(data []byte) (model.Document, error) {
	var parsed jsonDocument
	if err := json.Unmarshal(data, &parsed); err != nil {
		var bare []jsonFragment
		if bareErr := json.Unmarshal(data, &bare); bareErr != nil {
			return model.Document{}, fmt.Errorf("extract: parsing fragment JSON: %w", err)
		}
		parsed.Fragments = bare
	}

	fragments := make([]model.TextFragment, 0, len(parsed.Fragments))
	for _, f := range parsed.Fragments {
		fragments = append(fragments, model.TextFragment{
			Text:     f.Text,
			FontName: f.Font,
			FontSize: f.FontSize,
			Bold:     f.Bold,
			Italic:   f.Italic,
			BBox:     model.NewBBoxFromCorners(f.X0, f.Y0, f.X1, f.Y1),
			Page:     f.Page,
		})
	}

	doc := model.NewDocument(fragments)
	for _, p := range parsed.Pages {
		for i := range doc.Pages {
			if doc.Pages[i].Number == p.Number {
				doc.Pages[i].Width = p.Width
				doc.Pages[i].Height = p.Height
			}
		}
	}
	if err := doc.Validate(); err != nil {
		return model.Document{}, err
	}
	return doc, nil
}
