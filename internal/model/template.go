package model

// Unit is a page measurement unit.
type Unit string

const (
	UnitMillimeter Unit = "mm"
	UnitPixel      Unit = "px"
)

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Template is a declarative description of a printable page: geometry,
// font defaults, positioned fields and decorations. Templates are
// immutable once loaded; field order is paint order.
type Template struct {
	ID     string       `yaml:"id"`
	Label  string       `yaml:"label"`
	Page   PageGeometry `yaml:"page"`
	Font   FontSpec     `yaml:"font"`
	Fields []Field      `yaml:"fields"`
	Decor  []Decoration `yaml:"decor,omitempty"`
}

// PageGeometry is the physical page size.
type PageGeometry struct {
	Unit   Unit    `yaml:"unit"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin,omitempty"`
}

// FontSpec is the template-wide font default.
type FontSpec struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
	Weight int     `yaml:"weight,omitempty"`
}

// Field is one positioned text run on the page. Exactly one of the
// three variants applies: interactive (Input set), static (Static set)
// or data-bound (Key set); when several are structurally present the
// precedence is interactive > static > data-bound.
type Field struct {
	Key    string `yaml:"key,omitempty"`
	Type   string `yaml:"type,omitempty"` // "date" enables serial/date inference on raw columns
	Format string `yaml:"format,omitempty"`

	Static *string    `yaml:"static,omitempty"` // an empty literal is still a literal
	Input  *InputSpec `yaml:"input,omitempty"`

	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w,omitempty"`
	H     float64 `yaml:"h,omitempty"`
	Align Align   `yaml:"align,omitempty"`

	FontSize      float64 `yaml:"font_size,omitempty"`
	FontWeight    int     `yaml:"font_weight,omitempty"`
	Fill          string  `yaml:"fill,omitempty"`
	LetterSpacing float64 `yaml:"letter_spacing,omitempty"`
}

// InputSpec declares a user-suppliable field value.
type InputSpec struct {
	Key          string `yaml:"key,omitempty"`
	Label        string `yaml:"label,omitempty"`
	Placeholder  string `yaml:"placeholder,omitempty"`
	DefaultValue string `yaml:"default,omitempty"`
}

// DecorKind tags a Decoration variant.
type DecorKind string

const (
	DecorRect  DecorKind = "rect"
	DecorLine  DecorKind = "line"
	DecorImage DecorKind = "image"
)

// Decoration is a purely visual page element. The Type tag selects
// which of the variant fields apply; decorations never read record
// data and always paint beneath fields.
type Decoration struct {
	Type DecorKind `yaml:"type"`

	// rect and image geometry
	X float64 `yaml:"x,omitempty"`
	Y float64 `yaml:"y,omitempty"`
	W float64 `yaml:"w,omitempty"`
	H float64 `yaml:"h,omitempty"`

	// rect
	Radius  float64 `yaml:"radius,omitempty"`
	Outline bool    `yaml:"outline,omitempty"`
	Filled  bool    `yaml:"filled,omitempty"`

	// line
	X1          float64 `yaml:"x1,omitempty"`
	Y1          float64 `yaml:"y1,omitempty"`
	X2          float64 `yaml:"x2,omitempty"`
	Y2          float64 `yaml:"y2,omitempty"`
	Stroke      string  `yaml:"stroke,omitempty"`
	StrokeWidth float64 `yaml:"stroke_width,omitempty"`

	// image
	Src                 string `yaml:"src,omitempty"`
	PreserveAspectRatio string `yaml:"preserve_aspect_ratio,omitempty"`
}
