package writer

import (
	"bytes"
	"fmt"
)

// ContentStream builds a page content stream operator by operator.
type ContentStream struct {
	buf bytes.Buffer
}

// NewContentStream creates an empty content stream builder.
func NewContentStream() *ContentStream {
	return &ContentStream{}
}

// Bytes returns the content stream data.
func (cs *ContentStream) Bytes() []byte {
	return cs.buf.Bytes()
}

// Text shows a string at the given position using the named font
// resource (BT/Tf/Td/Tj/ET).
func (cs *ContentStream) Text(font Name, size, x, y float64, s string) *ContentStream {
	cs.buf.WriteString("BT\n")
	cs.buf.WriteString(fmt.Sprintf("/%s %.2f Tf\n", string(font), size))
	cs.buf.WriteString(fmt.Sprintf("%.2f %.2f Td\n", x, y))
	cs.buf.WriteString(fmt.Sprintf("(%s) Tj\n", EscapeString(s)))
	cs.buf.WriteString("ET\n")
	return cs
}

// Line strokes a straight line segment (m/l/S).
func (cs *ContentStream) Line(x1, y1, x2, y2 float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.2f %.2f m\n", x1, y1))
	cs.buf.WriteString(fmt.Sprintf("%.2f %.2f l\n", x2, y2))
	cs.buf.WriteString("S\n")
	return cs
}

// SetLineWidth sets the stroke width (w operator).
func (cs *ContentStream) SetLineWidth(width float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.2f w\n", width))
	return cs
}

// SetStrokeGray sets the stroke color to a grayscale value (G operator).
func (cs *ContentStream) SetStrokeGray(gray float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.2f G\n", gray))
	return cs
}

// SetFillRGB sets the fill color (rg operator).
func (cs *ContentStream) SetFillRGB(r, g, b float64) *ContentStream {
	cs.buf.WriteString(fmt.Sprintf("%.2f %.2f %.2f rg\n", r, g, b))
	return cs
}
