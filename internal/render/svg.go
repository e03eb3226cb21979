package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/checkpress-dev/checkpress/internal/model"
)

// WriteSVG serializes a page as an SVG document: decorations first,
// then text runs in paint order. Coordinates are in page units; the
// outer width/height carry the unit suffix so the document prints at
// physical size.
func WriteSVG(w io.Writer, p Page) error {
	_, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s%s\" height=\"%s%s\" viewBox=\"0 0 %s %s\">\n",
		num(p.Width), p.Unit, num(p.Height), p.Unit, num(p.Width), num(p.Height))
	if err != nil {
		return err
	}

	for _, shape := range p.Shapes {
		if err := writeShape(w, shape); err != nil {
			return err
		}
	}

	for _, run := range p.Texts {
		if err := writeText(w, run); err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "</svg>\n")
	return err
}

func writeShape(w io.Writer, d model.Decoration) error {
	switch d.Type {
	case model.DecorRect:
		fill := "none"
		if d.Filled {
			fill = "rgba(148, 163, 184, 0.08)"
		}
		stroke := "none"
		strokeWidth := "0"
		if d.Outline {
			stroke = "#94a3b8"
			strokeWidth = "0.4"
		}
		_, err := fmt.Fprintf(w,
			"  <rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" rx=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
			num(d.X), num(d.Y), num(d.W), num(d.H), num(d.Radius), fill, stroke, strokeWidth)
		return err
	case model.DecorLine:
		stroke := d.Stroke
		if stroke == "" {
			stroke = "#94a3b8"
		}
		width := d.StrokeWidth
		if width == 0 {
			width = 0.3
		}
		_, err := fmt.Fprintf(w,
			"  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
			num(d.X1), num(d.Y1), num(d.X2), num(d.Y2), escape(stroke), num(width))
		return err
	case model.DecorImage:
		ratio := d.PreserveAspectRatio
		if ratio == "" {
			ratio = "xMidYMid meet"
		}
		_, err := fmt.Fprintf(w,
			"  <image href=\"%s\" x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" preserveAspectRatio=\"%s\"/>\n",
			escape(d.Src), num(d.X), num(d.Y), num(d.W), num(d.H), escape(ratio))
		return err
	default:
		// Unknown decoration kinds are skipped, not fatal.
		return nil
	}
}

func writeText(w io.Writer, run TextRun) error {
	var attrs strings.Builder
	fmt.Fprintf(&attrs,
		"x=\"%s\" y=\"%s\" font-family=\"%s\" font-size=\"%s\" font-weight=\"%d\" text-anchor=\"%s\" alignment-baseline=\"hanging\" fill=\"%s\"",
		num(run.X), num(run.Y), escape(run.FontFamily), num(run.FontSize), run.FontWeight, run.Anchor, escape(run.Fill))
	if run.LetterSpacing != 0 {
		fmt.Fprintf(&attrs, " letter-spacing=\"%s\"", num(run.LetterSpacing))
	}
	_, err := fmt.Fprintf(w, "  <text %s>%s</text>\n", attrs.String(), escape(run.Text))
	return err
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var svgEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

func escape(s string) string {
	return svgEscaper.Replace(s)
}
