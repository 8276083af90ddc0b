package writer

import (
	"fmt"
	"io"
	"os"
)

// Font resource names available on the page.
const (
	FontRegular Name = "Helv"
	FontBold    Name = "HeBo"
)

// Document is a single-page drawing surface with an attached AcroForm.
// Static text and lines are appended to the content stream; AddField
// places interactive widgets. Save finalizes the object tree and writes
// the file in one pass.
type Document struct {
	w       *Writer
	width   float64
	height  float64
	content *ContentStream

	pageRef  Ref
	pagesRef Ref
	helvRef  Ref
	boldRef  Ref

	fields []Ref
	annots []Ref
}

// NewDocument creates an empty single-page document of the given size in
// PDF points (origin bottom-left).
func NewDocument(width, height float64) *Document {
	w := New()
	d := &Document{
		w:       w,
		width:   width,
		height:  height,
		content: NewContentStream(),
		// Widgets reference the page before it is finalized.
		pagesRef: w.Reserve(),
		pageRef:  w.Reserve(),
	}

	d.helvRef = w.Add(Dict{
		"Type":     Name("Font"),
		"Subtype":  Name("Type1"),
		"BaseFont": Name("Helvetica"),
		"Encoding": Name("WinAnsiEncoding"),
	})
	d.boldRef = w.Add(Dict{
		"Type":     Name("Font"),
		"Subtype":  Name("Type1"),
		"BaseFont": Name("Helvetica-Bold"),
		"Encoding": Name("WinAnsiEncoding"),
	})

	return d
}

// Width returns the page width in points.
func (d *Document) Width() float64 { return d.width }

// Height returns the page height in points.
func (d *Document) Height() float64 { return d.height }

// Text draws a string at (x, y) with the given font resource and size.
func (d *Document) Text(font Name, size, x, y float64, s string) {
	d.content.Text(font, size, x, y, s)
}

// Line strokes a line from (x1, y1) to (x2, y2).
func (d *Document) Line(x1, y1, x2, y2 float64) {
	d.content.Line(x1, y1, x2, y2)
}

// Save finalizes the document and writes it to out.
func (d *Document) Save(out io.Writer) error {
	contentRef := d.w.AddStream(nil, d.content.Bytes())

	page := Dict{
		"Type":     Name("Page"),
		"Parent":   d.pagesRef,
		"MediaBox": Array{0, 0, d.width, d.height},
		"Resources": Dict{
			"Font": Dict{
				string(FontRegular): d.helvRef,
				string(FontBold):    d.boldRef,
			},
			"ProcSet": Array{Name("PDF"), Name("Text")},
		},
		"Contents": contentRef,
	}
	if len(d.annots) > 0 {
		page["Annots"] = append(Array{}, toValues(d.annots)...)
	}
	d.w.Set(d.pageRef, page)

	d.w.Set(d.pagesRef, Dict{
		"Type":  Name("Pages"),
		"Kids":  Array{d.pageRef},
		"Count": 1,
	})

	catalog := Dict{
		"Type":  Name("Catalog"),
		"Pages": d.pagesRef,
	}
	if len(d.fields) > 0 {
		acroRef := d.w.Add(Dict{
			"Fields":          append(Array{}, toValues(d.fields)...),
			"NeedAppearances": true,
			"DA":              "/Helv 0 Tf 0 g",
			"DR":              Dict{"Font": Dict{string(FontRegular): d.helvRef}},
		})
		catalog["AcroForm"] = acroRef
	}
	d.w.SetRoot(d.w.Add(catalog))
	d.w.SetInfo(d.w.Add(Dict{"Producer": "pdf-formgen"}))

	if _, err := d.w.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// WriteFile finalizes the document and writes it to path, creating or
// overwriting the file. The handle is released on all exit paths.
func (d *Document) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := d.Save(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// toValues converts a reference slice into array members.
func toValues(refs []Ref) []any {
	out := make([]any, len(refs))
	for i, r := range refs {
		out[i] = r
	}
	return out
}
