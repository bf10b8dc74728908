package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/outliner/model"
)

// PDF extracts fragments directly from a PDF file via pdfcpu's content
// streams. It walks each page's text operators tracking the current font
// size and text position, so every emitted fragment carries the metadata
// the pipeline needs.
//
// This is a best-effort source. Style flags are derived from the font
// operand's name, so PDFs that reference fonts through opaque resource
// identifiers yield size and position but no bold/italic flags. Text in
// hex strings or with exotic encodings is not recovered. For full-fidelity
// extraction, run a dedicated extractor and feed its output through
// JSONFile instead.
type PDF struct {
	// Path is the file to read
	Path string
}

// NewPDF creates a source reading the given PDF file
func NewPDF(path string) *PDF {
	return &PDF{Path: path}
}

// Document extracts the PDF's text fragments
func (p *PDF) Document() (model.Document, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return model.Document{}, fmt.Errorf("extract: opening %s: %w", p.Path, err)
	}
	defer f.Close()

	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return model.Document{}, fmt.Errorf("extract: pdfcpu read: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		dims = nil
	}

	var fragments []model.TextFragment
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil || r == nil {
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil || len(data) == 0 {
			continue
		}
		fragments = append(fragments, scanContentStream(data, pageNr)...)
	}
	if len(fragments) == 0 {
		return model.Document{}, fmt.Errorf("extract: %s: no text content recovered: %w", p.Path, model.ErrExtractionIncomplete)
	}

	doc := model.NewDocument(fragments)
	for i := range doc.Pages {
		n := doc.Pages[i].Number
		if n >= 1 && n <= len(dims) {
			doc.Pages[i].Width = dims[n-1].Width
			doc.Pages[i].Height = dims[n-1].Height
		}
	}
	if err := doc.Validate(); err != nil {
		return model.Document{}, err
	}
	return doc, nil
}

// textState is the subset of the PDF text state the scanner tracks: enough
// to attribute a position and font size to each shown string.
type textState struct {
	fontName string
	fontSize float64
	leading  float64
	x, y     float64
}

// scanContentStream walks a page's content stream line by line, emitting one
// fragment per text-showing operator. Only literal strings in parentheses
// are decoded.
func scanContentStream(data []byte, pageNr int) []model.TextFragment {
	var state textState
	var fragments []model.TextFragment

	emit := func(text string) {
		text = strings.TrimSpace(text)
		if text == "" || state.fontSize <= 0 {
			return
		}
		name := strings.ToLower(state.fontName)
		fragments = append(fragments, model.TextFragment{
			Text:     text,
			FontName: state.fontName,
			FontSize: state.fontSize,
			Bold:     strings.Contains(name, "bold"),
			Italic:   strings.Contains(name, "italic") || strings.Contains(name, "oblique"),
			BBox:     model.NewBBox(state.x, state.y, approxWidth(text, state.fontSize), state.fontSize),
			Page:     pageNr,
		})
	}

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		op, operands := splitOperator(line)

		switch op {
		case "Tf":
			if len(operands) >= 2 {
				state.fontName = strings.TrimPrefix(operands[len(operands)-2], "/")
				state.fontSize = parseNumber(operands[len(operands)-1])
			}
		case "Td":
			if len(operands) >= 2 {
				state.x += parseNumber(operands[len(operands)-2])
				state.y += parseNumber(operands[len(operands)-1])
			}
		case "TD":
			if len(operands) >= 2 {
				state.x += parseNumber(operands[len(operands)-2])
				dy := parseNumber(operands[len(operands)-1])
				state.y += dy
				state.leading = -dy
			}
		case "Tm":
			if len(operands) >= 6 {
				state.x = parseNumber(operands[len(operands)-2])
				state.y = parseNumber(operands[len(operands)-1])
			}
		case "TL":
			if len(operands) >= 1 {
				state.leading = parseNumber(operands[len(operands)-1])
			}
		case "T*":
			state.y -= state.leading
		case "BT":
			state.x, state.y = 0, 0
		case "Tj", "TJ":
			emit(literalStrings(line))
		case "'", "\"":
			state.y -= state.leading
			emit(literalStrings(line))
		}
	}
	return fragments
}

// splitOperator returns the line's trailing operator and the tokens before it
func splitOperator(line []byte) (string, []string) {
	fields := strings.Fields(string(line))
	if len(fields) == 0 {
		return "", nil
	}
	return fields[len(fields)-1], fields[:len(fields)-1]
}

// literalStrings concatenates every parenthesized string literal on the line
func literalStrings(line []byte) string {
	var sb strings.Builder
	depth := 0
	escaped := false
	var current []byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if depth > 0 {
			if escaped {
				current = append(current, decodeEscape(line, &i)...)
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '(':
				depth++
				current = append(current, c)
			case ')':
				depth--
				if depth == 0 {
					sb.Write(current)
					current = current[:0]
				} else {
					current = append(current, c)
				}
			default:
				current = append(current, c)
			}
			continue
		}
		if c == '(' {
			depth = 1
		}
	}
	return sb.String()
}

// decodeEscape decodes the escape sequence whose backslash precedes line[*i],
// advancing *i past any extra octal digits consumed
func decodeEscape(line []byte, i *int) []byte {
	c := line[*i]
	switch c {
	case 'n':
		return []byte{'\n'}
	case 'r':
		return []byte{'\r'}
	case 't':
		return []byte{'\t'}
	case '\\', '(', ')':
		return []byte{c}
	}
	if c >= '0' && c <= '7' {
		val := int(c - '0')
		for n := 0; n < 2 && *i+1 < len(line); n++ {
			next := line[*i+1]
			if next < '0' || next > '7' {
				break
			}
			*i++
			val = val*8 + int(next-'0')
		}
		return []byte{byte(val)}
	}
	return []byte{c}
}

// parseNumber parses a PDF numeric operand, returning 0 on malformed input
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// approxWidth estimates a string's rendered width from its font size. The
// pipeline only uses left edges and vertical position, so a rough average
// glyph width suffices.
func approxWidth(text string, size float64) float64 {
	return float64(len([]rune(text))) * size * 0.5
}
