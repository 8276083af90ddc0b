package writer

import (
	"bytes"
	"fmt"
	"io"
)

// object holds one numbered PDF object awaiting serialization.
type object struct {
	number int
	dict   Dict
	stream []byte
}

// Writer builds a PDF file from numbered objects and emits the
// cross-reference table and trailer on Write.
type Writer struct {
	objects []*object
	byNum   map[int]*object
	nextNum int
	root    Ref
	info    Ref
	version string
}

// New creates an empty Writer targeting PDF 1.7.
func New() *Writer {
	return &Writer{
		byNum:   make(map[int]*object),
		nextNum: 1,
		version: "1.7",
	}
}

// Add appends a dictionary object and returns its reference.
func (w *Writer) Add(dict Dict) Ref {
	ref := w.Reserve()
	w.Set(ref, dict)
	return ref
}

// AddStream appends a stream object. The Length entry is filled in
// automatically.
func (w *Writer) AddStream(dict Dict, data []byte) Ref {
	ref := w.Reserve()
	if dict == nil {
		dict = Dict{}
	}
	dict["Length"] = len(data)
	obj := w.byNum[int(ref)]
	obj.dict = dict
	obj.stream = data
	return ref
}

// Reserve allocates an object number without content, so the reference
// can be used before the object is filled in (page and radio group
// parents need this).
func (w *Writer) Reserve() Ref {
	num := w.nextNum
	w.nextNum++
	obj := &object{number: num}
	w.objects = append(w.objects, obj)
	w.byNum[num] = obj
	return Ref(num)
}

// Set fills in a previously reserved object.
func (w *Writer) Set(ref Ref, dict Dict) {
	if obj, ok := w.byNum[int(ref)]; ok {
		obj.dict = dict
	}
}

// SetRoot records the document catalog reference for the trailer.
func (w *Writer) SetRoot(ref Ref) {
	w.root = ref
}

// SetInfo records the document information dictionary reference.
func (w *Writer) SetInfo(ref Ref) {
	w.info = ref
}

// WriteTo serializes the complete PDF to out. Object numbers are
// contiguous by construction, so the cross-reference table is a single
// section.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	if w.root == 0 {
		return 0, fmt.Errorf("no document catalog set")
	}

	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%%PDF-%s\n", w.version))
	buf.Write([]byte{'%', 0xE2, 0xE3, 0xCF, 0xD3, '\n'})

	offsets := make(map[int]int64, len(w.objects))
	for _, obj := range w.objects {
		if obj.dict == nil && obj.stream == nil {
			return 0, fmt.Errorf("object %d reserved but never set", obj.number)
		}

		offsets[obj.number] = int64(buf.Len())
		buf.WriteString(fmt.Sprintf("%d 0 obj\n", obj.number))
		buf.Write(formatDict(obj.dict))
		if obj.stream != nil {
			buf.WriteString("\nstream\n")
			buf.Write(obj.stream)
			buf.WriteString("\nendstream")
		}
		buf.WriteString("\nendobj\n")
	}

	xrefPos := int64(buf.Len())
	buf.WriteString("xref\n")
	buf.WriteString(fmt.Sprintf("0 %d\n", w.nextNum))
	buf.WriteString(fmt.Sprintf("%010d %05d f \n", 0, 65535))
	for i := 1; i < w.nextNum; i++ {
		buf.WriteString(fmt.Sprintf("%010d %05d n \n", offsets[i], 0))
	}

	buf.WriteString("trailer\n")
	trailer := Dict{
		"Size": w.nextNum,
		"Root": w.root,
	}
	if w.info != 0 {
		trailer["Info"] = w.info
	}
	buf.Write(formatDict(trailer))
	buf.WriteString(fmt.Sprintf("\nstartxref\n%d\n%%%%EOF\n", xrefPos))

	n, err := out.Write(buf.Bytes())
	return int64(n), err
}

// Bytes returns the complete PDF as a byte slice.
func (w *Writer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
