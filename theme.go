package target

// Theme holds the drawing constants which are not diagram options.
type Theme struct {
	// FontSize is the size of marker label text in points.
	FontSize float64

	// LegendFontSize is the size of legend entries in points.
	LegendFontSize float64

	// MarkerEdgeWidth is the outline width of legend mode markers and
	// PlainEdgeWidth the one of single colored markers, in points.
	MarkerEdgeWidth float64
	PlainEdgeWidth  float64

	// UncertaintyColor and UncertaintyLineType style the observation
	// uncertainty circle.
	UncertaintyColor    string
	UncertaintyLineType LineType

	// CircleSegments is the number of vertices used to trace a circle.
	CircleSegments int
}

var DefaultTheme = Theme{
	FontSize:            8,
	LegendFontSize:      8,
	MarkerEdgeWidth:     2,
	PlainEdgeWidth:      1,
	UncertaintyColor:    "b",
	UncertaintyLineType: DashedLine,
	CircleSegments:      200,
}
