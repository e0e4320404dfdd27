package qrstyle

// Size bounds for a rendered symbol, in pixels.
const (
	MinSize = 128
	MaxSize = 512
)

// Fixed dimensions for an embedded logo overlay.
const (
	LogoWidth  = 40
	LogoHeight = 40
)

type Level string

const (
	LevelLow      Level = "L"
	LevelMedium   Level = "M"
	LevelQuartile Level = "Q"
	LevelHigh     Level = "H"
)

type DotType string

const (
	DotRounded       DotType = "rounded"
	DotDots          DotType = "dots"
	DotClassy        DotType = "classy"
	DotClassyRounded DotType = "classy-rounded"
	DotSquare        DotType = "square"
	DotExtraRounded  DotType = "extra-rounded"
)

type CornerSquareType string

const (
	CornerSquareDefault      CornerSquareType = "default"
	CornerSquareDot          CornerSquareType = "dot"
	CornerSquareSquare       CornerSquareType = "square"
	CornerSquareExtraRounded CornerSquareType = "extra-rounded"
)

type CornerDotType string

const (
	CornerDotDefault CornerDotType = "default"
	CornerDotDot     CornerDotType = "dot"
	CornerDotSquare  CornerDotType = "square"
)

type DotStyle struct {
	Type  DotType `json:"type"`
	Color string  `json:"color"`
}

type CornerSquareStyle struct {
	Type  CornerSquareType `json:"type"`
	Color string           `json:"color"`
}

type CornerDotStyle struct {
	Type  CornerDotType `json:"type"`
	Color string        `json:"color"`
}

// LogoOverlay describes a small raster image drawn over the center of the
// symbol. Image is a self-contained data URL, never an external reference.
// Excavate blanks the modules underneath instead of drawing through them.
type LogoOverlay struct {
	Image    string `json:"src"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Excavate bool   `json:"excavate"`
}

// StyleOptions is the fully-resolved rendering configuration for one QR code.
// Every optional element color has already been substituted with the
// foreground color, so a renderer never has to guess.
type StyleOptions struct {
	Content           string            `json:"value"`
	Size              int               `json:"size"`
	Level             Level             `json:"level"`
	BackgroundColor   string            `json:"bgColor"`
	ForegroundColor   string            `json:"fgColor"`
	IncludeMargin     bool              `json:"includeMargin"`
	LogoOverlay       *LogoOverlay      `json:"imageSettings,omitempty"`
	DotStyle          DotStyle          `json:"dots"`
	CornerSquareStyle CornerSquareStyle `json:"cornersSquareOptions"`
	CornerDotStyle    CornerDotStyle    `json:"cornersDotOptions"`
}

// RawFields holds the form values a StyleOptions is derived from. Element
// colors may be left empty; derivation falls back to FgColor for those.
type RawFields struct {
	Content            string `json:"value"`
	Size               int    `json:"size"`
	Level              string `json:"level"`
	BgColor            string `json:"bgColor"`
	FgColor            string `json:"fgColor"`
	IncludeMargin      bool   `json:"includeMargin"`
	DotsType           string `json:"dotsType"`
	DotsColor          string `json:"dotsColor"`
	CornersSquareType  string `json:"cornersSquareType"`
	CornersSquareColor string `json:"cornersSquareColor"`
	CornersDotType     string `json:"cornersDotType"`
	CornersDotColor    string `json:"cornersDotColor"`
}

// DefaultFields returns the generator's initial form state.
func DefaultFields() RawFields {
	return RawFields{
		Content:           "https://example.com",
		Size:              256,
		Level:             string(LevelHigh),
		BgColor:           "#FFFFFF",
		FgColor:           "#000000",
		IncludeMargin:     true,
		DotsType:          string(DotSquare),
		CornersSquareType: string(CornerSquareDefault),
		CornersDotType:    string(CornerDotDefault),
	}
}
