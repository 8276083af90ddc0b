package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/a3tai/pdf-formgen/internal/pdf/writer"
)

func allLayouts() map[string]layout {
	return map[string]layout{
		"basic":  basicForm(),
		"text":   textFields(),
		"choice": choiceFields(),
		"mixed":  mixedForm(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)),
	}
}

func TestLayoutFieldNamesAreUnique(t *testing.T) {
	for name, l := range allLayouts() {
		t.Run(name, func(t *testing.T) {
			seen := make(map[string]bool)
			for _, f := range l.Fields {
				assert.False(t, seen[f.Name], "duplicate field name %q", f.Name)
				seen[f.Name] = true
			}
		})
	}
}

func TestLayoutWidgetsWithinPageBounds(t *testing.T) {
	for name, l := range allLayouts() {
		t.Run(name, func(t *testing.T) {
			for _, f := range l.Fields {
				if f.Kind == writer.FieldRadio {
					for _, btn := range f.Buttons {
						assertInBounds(t, f.Name+"/"+btn.Value, btn.X, btn.Y, f.Width, f.Height)
					}
					continue
				}
				assertInBounds(t, f.Name, f.X, f.Y, f.Width, f.Height)
			}
		})
	}
}

func assertInBounds(t *testing.T, name string, x, y, w, h float64) {
	t.Helper()
	assert.GreaterOrEqual(t, x, 0.0, "%s left edge", name)
	assert.GreaterOrEqual(t, y, 0.0, "%s bottom edge", name)
	assert.LessOrEqual(t, x+w, PageWidth, "%s right edge", name)
	assert.LessOrEqual(t, y+h, PageHeight, "%s top edge", name)
}

func TestLayoutChoiceDefaultsMatchOptions(t *testing.T) {
	for name, l := range allLayouts() {
		t.Run(name, func(t *testing.T) {
			for _, f := range l.Fields {
				if f.Kind != writer.FieldChoice || f.Value == "" {
					continue
				}
				found := false
				for _, opt := range f.Options {
					if opt.Value == f.Value {
						found = true
						break
					}
				}
				assert.True(t, found, "choice %q default %q has no matching option", f.Name, f.Value)
			}
		})
	}
}

func TestLayoutRadioGroupsSelectAtMostOne(t *testing.T) {
	for name, l := range allLayouts() {
		t.Run(name, func(t *testing.T) {
			for _, f := range l.Fields {
				if f.Kind != writer.FieldRadio {
					continue
				}
				selected := 0
				values := make(map[string]bool)
				for _, btn := range f.Buttons {
					assert.NotEmpty(t, btn.Value, "radio %q has a button without a value", f.Name)
					assert.False(t, values[btn.Value], "radio %q repeats value %q", f.Name, btn.Value)
					values[btn.Value] = true
					if btn.Selected {
						selected++
					}
				}
				assert.LessOrEqual(t, selected, 1, "radio %q selects more than one button", f.Name)
			}
		})
	}
}

func TestBasicFormLayout(t *testing.T) {
	l := basicForm()
	assert.Equal(t, "Basic Form Example", l.Title)
	assert.Len(t, l.Fields, 5)

	kinds := make(map[writer.FieldKind]int)
	for _, f := range l.Fields {
		kinds[f.Kind]++
	}
	assert.Equal(t, 2, kinds[writer.FieldText])
	assert.Equal(t, 1, kinds[writer.FieldCheckbox])
	assert.Equal(t, 1, kinds[writer.FieldRadio])
	assert.Equal(t, 1, kinds[writer.FieldChoice])
}

func TestChoiceFieldsLayout(t *testing.T) {
	l := choiceFields()

	var state, size *writer.Field
	for i := range l.Fields {
		switch l.Fields[i].Name {
		case "state":
			state = &l.Fields[i]
		case "size":
			size = &l.Fields[i]
		}
	}

	if assert.NotNil(t, state) {
		assert.Len(t, state.Options, 12)
		assert.Equal(t, "", state.Options[0].Value, "first state option should be blank")
		assert.Equal(t, "", state.Value)
	}
	if assert.NotNil(t, size) {
		assert.Len(t, size.Buttons, 4)
		var selected string
		for _, btn := range size.Buttons {
			if btn.Selected {
				selected = btn.Value
			}
		}
		assert.Equal(t, "m", selected)
	}
}

func TestMixedFormLayout(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	l := mixedForm(now)

	assert.Equal(t, writer.FontBold, l.TitleFont)
	assert.Equal(t, "Form generated on 2024-01-15 09:30:00", l.Footer)

	required := make(map[string]bool)
	for _, f := range l.Fields {
		if f.Required {
			required[f.Name] = true
		}
	}
	assert.Equal(t, map[string]bool{
		"firstName":    true,
		"lastName":     true,
		"emailAddress": true,
		"terms":        true,
	}, required)
}
