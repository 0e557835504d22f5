package target

import (
	"fmt"
	"strings"
)

// OnOff is a switch given as "on"/"off" (any letter case) or as a boolean.
type OnOff bool

const (
	On  OnOff = true
	Off OnOff = false
)

// ParseOnOff converts "on" or "off" in any letter case to an OnOff.
func ParseOnOff(s string) (OnOff, error) {
	switch strings.ToLower(s) {
	case "on":
		return On, nil
	case "off":
		return Off, nil
	}
	return Off, fmt.Errorf("%w: %q is neither on nor off", ErrInvalidOption, s)
}

func (o OnOff) String() string {
	if o {
		return "on"
	}
	return "off"
}

// -------------------------------------------------------------------------
// Label sources

// LabelKind distinguishes the three ways marker labels can be given.
type LabelKind int

const (
	NoLabels       LabelKind = iota // markers are not labeled
	OrderedLabels                   // one text per point, in point order
	CategoryLabels                  // legend of text to color categories
)

func (k LabelKind) String() string {
	switch k {
	case NoLabels:
		return "none"
	case OrderedLabels:
		return "ordered"
	case CategoryLabels:
		return "category"
	}
	return fmt.Sprintf("LabelKind(%d)", int(k))
}

// Category is one entry of a category legend.
type Category struct {
	Text  string
	Color string
}

// LabelSource is the marker label option. Its zero value is NoLabels.
// Use Ordered or Categories to construct the other variants.
type LabelSource struct {
	kind       LabelKind
	texts      []string
	categories []Category
}

// Ordered returns a LabelSource labeling point i with texts[i].
func Ordered(texts ...string) LabelSource {
	return LabelSource{kind: OrderedLabels, texts: texts}
}

// Categories returns a LabelSource producing a legend with one entry per
// category, in the given order.
func Categories(cats ...Category) LabelSource {
	return LabelSource{kind: CategoryLabels, categories: cats}
}

func (l LabelSource) Kind() LabelKind        { return l.kind }
func (l LabelSource) Texts() []string        { return l.texts }
func (l LabelSource) Categories() []Category { return l.categories }

// Len is the number of texts or categories.
func (l LabelSource) Len() int {
	switch l.kind {
	case OrderedLabels:
		return len(l.texts)
	case CategoryLabels:
		return len(l.categories)
	}
	return 0
}

// Empty reports whether no labels are available.
func (l LabelSource) Empty() bool { return l.Len() == 0 }

// -------------------------------------------------------------------------
// Options

// MarkerSpec gives individual control over one marker.
type MarkerSpec struct {
	Label      string  `yaml:"label"`
	LabelColor string  `yaml:"labelcolor"`
	Symbol     string  `yaml:"symbol"`
	Size       float64 `yaml:"size"`
	FaceColor  string  `yaml:"facecolor"`
	EdgeColor  string  `yaml:"edgecolor"`
}

// EdgeFace splits a marker color into its edge and face part.
// Empty values fall back to Options.MarkerColor.
type EdgeFace struct {
	Edge string `yaml:"edge"`
	Face string `yaml:"face"`
}

// Options controls layout and markers of a target diagram. Use
// DefaultOptions to obtain a usable starting point: the zero value has
// e.g. a fully transparent Alpha.
type Options struct {
	// AxisMax is the half range of both axes; 0 determines it from the data.
	AxisMax   float64 `yaml:"axismax"`
	EqualAxes OnOff   `yaml:"equalaxes"`

	// Ticks, if non-empty, are used verbatim for both axes.
	Ticks []float64 `yaml:"ticks"`

	// XTickLabelPos and YTickLabelPos restrict tick labels to these
	// values. Empty means label all ticks.
	XTickLabelPos []float64 `yaml:"xticklabelpos"`
	YTickLabelPos []float64 `yaml:"yticklabelpos"`

	// XLabel and YLabel are the axis titles.
	XLabel string `yaml:"xlabel"`
	YLabel string `yaml:"ylabel"`

	MarkerLabel      LabelSource  `yaml:"markerlabel"`
	Markers          []MarkerSpec `yaml:"markers"`
	MarkerColor      string       `yaml:"markercolor"`
	MarkerColors     *EdgeFace    `yaml:"markercolors"`
	MarkerLegend     OnOff        `yaml:"markerlegend"`
	MarkerLabelColor string       `yaml:"markerlabelcolor"`
	MarkerSize       float64      `yaml:"markersize"`
	MarkerSymbol     string       `yaml:"markersymbol"`

	// MarkerDisplayed selects how points are shown. Only "marker" is
	// supported; empty means the same.
	MarkerDisplayed string `yaml:"markerdisplayed"`

	// Alpha is the opacity of marker faces, 0 transparent to 1 opaque.
	Alpha float64 `yaml:"alpha"`

	// Overlay adds markers to an existing diagram without touching its
	// axes and circles.
	Overlay OnOff `yaml:"overlay"`

	Circles         []float64 `yaml:"circles"`
	CircleLineSpec  string    `yaml:"circlelinespec"`
	CircleLineWidth float64   `yaml:"circlelinewidth"`
	Normalized      OnOff     `yaml:"normalized"`
	ObsUncertainty  float64   `yaml:"obsuncertainty"`
}

// DefaultOptions returns the options used when nothing else is requested.
func DefaultOptions() Options {
	return Options{
		EqualAxes:        On,
		XLabel:           "uRMSD",
		YLabel:           "Bias",
		MarkerLabelColor: "k",
		MarkerSize:       10,
		MarkerSymbol:     "o",
		Alpha:            1,
		CircleLineSpec:   "k--",
		CircleLineWidth:  1,
	}
}

// Validate checks the options for unknown colors and symbols and values
// out of range.
func (o *Options) Validate() error {
	const op = "target.options"
	check := func(what, c string) error {
		if c == "" {
			return nil
		}
		if _, err := ParseColor(c); err != nil {
			return &OpError{Op: op, Err: ErrInvalidOption, Msg: what + ": " + err.Error()}
		}
		return nil
	}

	if o.AxisMax < 0 {
		return opErrorf(op, ErrInvalidOption, "axismax=%g is negative", o.AxisMax)
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return opErrorf(op, ErrInvalidOption, "alpha=%g not in [0,1]", o.Alpha)
	}
	if o.MarkerSize <= 0 {
		return opErrorf(op, ErrInvalidOption, "markersize=%g must be positive", o.MarkerSize)
	}
	if o.MarkerDisplayed != "" && o.MarkerDisplayed != "marker" {
		return opErrorf(op, ErrInvalidOption, "markerdisplayed=%q, only \"marker\" is supported", o.MarkerDisplayed)
	}
	if _, err := ParseSymbol(o.MarkerSymbol); err != nil {
		return &OpError{Op: op, Err: ErrInvalidOption, Msg: "markersymbol: " + err.Error()}
	}
	if err := check("markercolor", o.MarkerColor); err != nil {
		return err
	}
	if o.MarkerColors != nil {
		if err := check("markercolors.edge", o.MarkerColors.Edge); err != nil {
			return err
		}
		if err := check("markercolors.face", o.MarkerColors.Face); err != nil {
			return err
		}
	}
	if err := check("markerlabelcolor", o.MarkerLabelColor); err != nil {
		return err
	}
	for _, c := range o.MarkerLabel.Categories() {
		if err := check(fmt.Sprintf("markerlabel[%q]", c.Text), c.Color); err != nil {
			return err
		}
	}
	for i, m := range o.Markers {
		if _, err := ParseSymbol(m.Symbol); err != nil {
			return &OpError{Op: op, Err: ErrInvalidOption, Msg: fmt.Sprintf("markers[%d].symbol: %s", i, err)}
		}
		for _, c := range []string{m.LabelColor, m.FaceColor, m.EdgeColor} {
			if err := check(fmt.Sprintf("markers[%d]", i), c); err != nil {
				return err
			}
		}
	}
	if o.CircleLineSpec != "" {
		if _, _, err := ParseLineSpec(o.CircleLineSpec); err != nil {
			return &OpError{Op: op, Err: ErrInvalidOption, Msg: "circlelinespec: " + err.Error()}
		}
	}
	if o.ObsUncertainty < 0 {
		return opErrorf(op, ErrInvalidOption, "obsuncertainty=%g is negative", o.ObsUncertainty)
	}
	return nil
}

// edgeFaceColors resolves the plain marker colors: the edge defaults to
// red and the face to the edge color.
func (o *Options) edgeFaceColors() (edge, face string) {
	edge, face = o.MarkerColor, o.MarkerColor
	if o.MarkerColors != nil {
		if o.MarkerColors.Edge != "" {
			edge = o.MarkerColors.Edge
		}
		if o.MarkerColors.Face != "" {
			face = o.MarkerColors.Face
		}
	}
	if edge == "" {
		edge = "r"
	}
	if face == "" {
		face = edge
	}
	return edge, face
}
