package render

import "github.com/checkpress-dev/checkpress/internal/model"

// Anchor is an SVG-style horizontal text anchor.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// TextRun is one positioned piece of display text.
type TextRun struct {
	Text          string
	X             float64
	Y             float64
	Anchor        Anchor
	FontFamily    string
	FontSize      float64
	FontWeight    int
	Fill          string
	LetterSpacing float64
}

// Page is a page-sized vector description of one rendered record.
// Shapes paint first, then Texts in template field order.
type Page struct {
	Width  float64
	Height float64
	Unit   model.Unit
	Margin float64
	Shapes []model.Decoration
	Texts  []TextRun
}

const defaultFill = "#0f172a"

// Layout renders one record onto one page. custom may be nil.
func Layout(t model.Template, rec model.CheckRecord, custom map[string]string) Page {
	unit := t.Page.Unit
	if unit == "" {
		unit = model.UnitMillimeter
	}

	page := Page{
		Width:  t.Page.Width,
		Height: t.Page.Height,
		Unit:   unit,
		Margin: t.Page.Margin,
		Shapes: t.Decor,
	}

	for i, field := range t.Fields {
		page.Texts = append(page.Texts, layoutField(t, field, i, rec, custom))
	}
	return page
}

// LayoutAll renders one page per record, in record order.
func LayoutAll(t model.Template, recs []model.CheckRecord, custom map[string]string) []Page {
	pages := make([]Page, 0, len(recs))
	for _, rec := range recs {
		pages = append(pages, Layout(t, rec, custom))
	}
	return pages
}

func layoutField(t model.Template, field model.Field, index int, rec model.CheckRecord, custom map[string]string) TextRun {
	run := TextRun{
		Text:          ResolveField(field, index, rec, custom),
		Y:             field.Y,
		FontFamily:    t.Font.Family,
		FontSize:      field.FontSize,
		FontWeight:    field.FontWeight,
		Fill:          field.Fill,
		LetterSpacing: field.LetterSpacing,
	}

	// The box width moves the anchor; it never clips text.
	switch field.Align {
	case model.AlignRight:
		run.Anchor = AnchorEnd
		run.X = field.X + field.W
	case model.AlignCenter:
		run.Anchor = AnchorMiddle
		run.X = field.X + field.W/2
	default:
		run.Anchor = AnchorStart
		run.X = field.X
	}

	if run.FontSize == 0 {
		run.FontSize = t.Font.Size
	}
	if run.FontWeight == 0 {
		run.FontWeight = t.Font.Weight
	}
	if run.FontWeight == 0 {
		run.FontWeight = 400
	}
	if run.Fill == "" {
		run.Fill = defaultFill
	}
	return run
}
