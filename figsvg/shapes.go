package figsvg

import "encoding/xml"

// This file defines the shape records accumulated by the canvas.
// Each record maps one-to-one onto an SVG element via its xml tags.

// Shape is one drawable record held by the canvas, either a Rect, a
// Line or a Text.
type Shape interface {
	isShape()
}

// Rect is a filled and/or stroked axis-aligned rectangle.
type Rect struct {
	XMLName xml.Name `xml:"rect"`

	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`

	Fill        string  `xml:"fill,attr"`
	Stroke      string  `xml:"stroke,attr"`
	StrokeWidth float64 `xml:"stroke-width,attr"`
	Opacity     float64 `xml:"opacity,attr"`
}

// Line is a straight stroke between two points.
type Line struct {
	XMLName xml.Name `xml:"line"`

	X1 float64 `xml:"x1,attr"`
	Y1 float64 `xml:"y1,attr"`
	X2 float64 `xml:"x2,attr"`
	Y2 float64 `xml:"y2,attr"`

	Stroke      string  `xml:"stroke,attr"`
	StrokeWidth float64 `xml:"stroke-width,attr"`
	Opacity     float64 `xml:"opacity,attr"`
}

// Text is a text run anchored at the start of its baseline, following
// the SVG text coordinate convention.
type Text struct {
	XMLName xml.Name `xml:"text"`

	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`

	Fill     string  `xml:"fill,attr"`
	FontSize float64 `xml:"font-size,attr"`

	Content string `xml:",chardata"`
}

func (Rect) isShape() {}
func (Line) isShape() {}
func (Text) isShape() {}
