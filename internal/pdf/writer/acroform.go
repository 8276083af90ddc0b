package writer

import (
	"fmt"
)

// FieldKind identifies the widget kind a Field describes.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldCheckbox FieldKind = "checkbox"
	FieldRadio    FieldKind = "radio"
	FieldChoice   FieldKind = "choice"
)

// Field flag bits from the AcroForm /Ff entry.
const (
	FlagReadOnly   = 1 << 0
	FlagRequired   = 1 << 1
	FlagMultiline  = 1 << 12
	FlagPassword   = 1 << 13
	FlagRadio      = 1 << 15
	FlagPushbutton = 1 << 16
	FlagCombo      = 1 << 17
)

// RGB is a device RGB color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

func (c RGB) array() Array {
	return Array{c.R, c.G, c.B}
}

// Option is one (export value, display label) pair of a choice field.
type Option struct {
	Value string
	Label string
}

// RadioButton is one widget of a radio group. Buttons sharing the
// group's field name are distinguished by Value.
type RadioButton struct {
	Value    string
	X, Y     float64
	Selected bool
}

// Field describes one form widget to place on the page: its name, kind,
// position, appearance, and behavior flags. It is consumed by
// Document.AddField and has no identity beyond the generated file.
type Field struct {
	Name    string
	Kind    FieldKind
	X, Y    float64
	Width   float64
	Height  float64
	Tooltip string

	Value   string
	Default string
	Checked bool

	Required  bool
	ReadOnly  bool
	Multiline bool
	Password  bool
	MaxLen    int

	Options []Option
	Buttons []RadioButton

	BorderColor *RGB
	FillColor   *RGB
}

// flags folds the behavior booleans into the /Ff bit mask.
func (f Field) flags() int {
	flags := 0
	if f.ReadOnly {
		flags |= FlagReadOnly
	}
	if f.Required {
		flags |= FlagRequired
	}
	if f.Multiline {
		flags |= FlagMultiline
	}
	if f.Password {
		flags |= FlagPassword
	}
	return flags
}

// appearance builds the /MK appearance characteristics dictionary.
// caption is the ZapfDingbats glyph used for button widgets ("4" check
// mark, "l" filled circle).
func (f Field) appearance(caption string) Dict {
	mk := Dict{}
	if f.BorderColor != nil {
		mk["BC"] = f.BorderColor.array()
	}
	if f.FillColor != nil {
		mk["BG"] = f.FillColor.array()
	}
	if caption != "" {
		mk["CA"] = caption
	}
	return mk
}

// AddField places one field widget on the document page.
func (d *Document) AddField(f Field) error {
	switch f.Kind {
	case FieldText:
		return d.addTextField(f)
	case FieldCheckbox:
		return d.addCheckbox(f)
	case FieldRadio:
		return d.addRadioGroup(f)
	case FieldChoice:
		return d.addChoiceField(f)
	default:
		return fmt.Errorf("unsupported field kind: %q", f.Kind)
	}
}

// widgetBase fills the entries shared by every widget annotation.
func (d *Document) widgetBase(f Field, ft Name) Dict {
	dict := Dict{
		"Type":    Name("Annot"),
		"Subtype": Name("Widget"),
		"FT":      ft,
		"T":       f.Name,
		"Rect":    Array{f.X, f.Y, f.X + f.Width, f.Y + f.Height},
		"F":       4, // print
		"P":       d.pageRef,
		"BS":      Dict{"W": 1, "S": Name("I")},
	}
	if f.Tooltip != "" {
		dict["TU"] = f.Tooltip
	}
	return dict
}

func (d *Document) addTextField(f Field) error {
	dict := d.widgetBase(f, "Tx")
	dict["DA"] = "/Helv 0 Tf 0 g"
	if flags := f.flags(); flags != 0 {
		dict["Ff"] = flags
	}
	if f.Value != "" {
		dict["V"] = f.Value
	}
	if f.Default != "" {
		dict["DV"] = f.Default
	}
	if f.MaxLen > 0 {
		dict["MaxLen"] = f.MaxLen
	}
	if mk := f.appearance(""); len(mk) > 0 {
		dict["MK"] = mk
	}

	ref := d.w.Add(dict)
	d.fields = append(d.fields, ref)
	d.annots = append(d.annots, ref)
	return nil
}

func (d *Document) addCheckbox(f Field) error {
	dict := d.widgetBase(f, "Btn")
	state := Name("Off")
	if f.Checked {
		state = Name("Yes")
	}
	dict["V"] = state
	dict["AS"] = state
	if flags := f.flags(); flags != 0 {
		dict["Ff"] = flags
	}
	dict["MK"] = f.appearance("4")

	ref := d.w.Add(dict)
	d.fields = append(d.fields, ref)
	d.annots = append(d.annots, ref)
	return nil
}

func (d *Document) addRadioGroup(f Field) error {
	if len(f.Buttons) == 0 {
		return fmt.Errorf("radio group %q has no buttons", f.Name)
	}

	parentRef := d.w.Reserve()

	selected := Name("Off")
	kids := make(Array, 0, len(f.Buttons))
	for _, btn := range f.Buttons {
		state := Name("Off")
		if btn.Selected {
			state = Name(btn.Value)
			selected = state
		}
		kid := Dict{
			"Type":    Name("Annot"),
			"Subtype": Name("Widget"),
			"Rect":    Array{btn.X, btn.Y, btn.X + f.Width, btn.Y + f.Height},
			"F":       4,
			"P":       d.pageRef,
			"Parent":  parentRef,
			"AS":      state,
			"BS":      Dict{"W": 1, "S": Name("S")},
			"MK":      f.appearance("l"),
		}
		kidRef := d.w.Add(kid)
		kids = append(kids, kidRef)
		d.annots = append(d.annots, kidRef)
	}

	parent := Dict{
		"FT":   Name("Btn"),
		"T":    f.Name,
		"Ff":   f.flags() | FlagRadio,
		"Kids": kids,
		"V":    selected,
	}
	if f.Tooltip != "" {
		parent["TU"] = f.Tooltip
	}
	d.w.Set(parentRef, parent)
	d.fields = append(d.fields, parentRef)
	return nil
}

func (d *Document) addChoiceField(f Field) error {
	dict := d.widgetBase(f, "Ch")
	dict["DA"] = "/Helv 0 Tf 0 g"
	dict["Ff"] = f.flags() | FlagCombo

	opts := make(Array, 0, len(f.Options))
	for _, opt := range f.Options {
		opts = append(opts, Array{opt.Value, opt.Label})
	}
	dict["Opt"] = opts

	if f.Value != "" {
		dict["V"] = f.Value
	}
	if mk := f.appearance(""); len(mk) > 0 {
		dict["MK"] = mk
	}

	ref := d.w.Add(dict)
	d.fields = append(d.fields, ref)
	d.annots = append(d.annots, ref)
	return nil
}
