package inspect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a3tai/pdf-formgen/internal/pdf/writer"
)

// buildFormPDF renders a small document carrying one field of each kind.
func buildFormPDF(t *testing.T) []byte {
	t.Helper()

	d := writer.NewDocument(612, 792)
	d.Text(writer.FontRegular, 12, 50, 750, "Inspection sample")

	fields := []writer.Field{
		{
			Name: "fullName", Kind: writer.FieldText,
			X: 150, Y: 700, Width: 300, Height: 20,
			Tooltip:  "Enter your full name",
			Required: true,
			MaxLen:   40,
		},
		{
			Name: "secret", Kind: writer.FieldText,
			X: 150, Y: 650, Width: 300, Height: 20,
			Password: true,
		},
		{
			Name: "notes", Kind: writer.FieldText,
			X: 150, Y: 550, Width: 300, Height: 80,
			Multiline: true,
		},
		{
			Name: "frozen", Kind: writer.FieldText,
			X: 150, Y: 500, Width: 300, Height: 20,
			ReadOnly: true,
			Value:    "This cannot be changed",
		},
		{
			Name: "agree", Kind: writer.FieldCheckbox,
			X: 150, Y: 450, Width: 20, Height: 20,
		},
		{
			Name: "color", Kind: writer.FieldRadio,
			Width: 20, Height: 20,
			Buttons: []writer.RadioButton{
				{Value: "red", X: 150, Y: 400},
				{Value: "blue", X: 250, Y: 400, Selected: true},
				{Value: "green", X: 350, Y: 400},
			},
		},
		{
			Name: "city", Kind: writer.FieldChoice,
			X: 150, Y: 350, Width: 200, Height: 20,
			Value: "sf",
			Options: []writer.Option{
				{Value: "sf", Label: "San Francisco"},
				{Value: "ny", Label: "New York"},
			},
		},
	}
	for _, f := range fields {
		require.NoError(t, d.AddField(f))
	}

	var buf bytes.Buffer
	require.NoError(t, d.Save(&buf))
	return buf.Bytes()
}

func extractByName(t *testing.T, data []byte) map[string]FormField {
	t.Helper()

	extractor := NewExtractor(false)
	fields, err := extractor.Extract(bytes.NewReader(data))
	require.NoError(t, err)

	byName := make(map[string]FormField, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	return byName
}

func TestExtractFieldSchema(t *testing.T) {
	data := buildFormPDF(t)
	byName := extractByName(t, data)
	require.Len(t, byName, 7)

	tests := []struct {
		name  string
		check func(t *testing.T, f FormField)
	}{
		{
			name: "fullName",
			check: func(t *testing.T, f FormField) {
				assert.Equal(t, FieldTypeText, f.Type)
				assert.True(t, f.Required)
				assert.False(t, f.ReadOnly)
				assert.Equal(t, 40, f.MaxLength)
				assert.Equal(t, "Enter your full name", f.Tooltip)
				assert.Equal(t, []float64{150, 700, 450, 720}, f.Rect)
			},
		},
		{
			name: "secret",
			check: func(t *testing.T, f FormField) {
				assert.Equal(t, FieldTypeText, f.Type)
				assert.True(t, f.Password)
				assert.False(t, f.Multiline)
			},
		},
		{
			name: "notes",
			check: func(t *testing.T, f FormField) {
				assert.Equal(t, FieldTypeText, f.Type)
				assert.True(t, f.Multiline)
				assert.False(t, f.Password)
			},
		},
		{
			name: "frozen",
			check: func(t *testing.T, f FormField) {
				assert.True(t, f.ReadOnly)
				assert.Equal(t, "This cannot be changed", f.Value)
			},
		},
		{
			name: "agree",
			check: func(t *testing.T, f FormField) {
				assert.Equal(t, FieldTypeCheckbox, f.Type)
				assert.Equal(t, false, f.Value)
			},
		},
		{
			name: "color",
			check: func(t *testing.T, f FormField) {
				assert.Equal(t, FieldTypeRadio, f.Type)
				assert.Equal(t, 3, f.WidgetCount)
				assert.Equal(t, "blue", f.Value)
			},
		},
		{
			name: "city",
			check: func(t *testing.T, f FormField) {
				assert.Equal(t, FieldTypeSelect, f.Type)
				assert.Equal(t, "sf", f.Value)
				require.Len(t, f.Options, 2)
				assert.Equal(t, Choice{Value: "sf", Label: "San Francisco"}, f.Options[0])
				assert.Equal(t, Choice{Value: "ny", Label: "New York"}, f.Options[1])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := byName[tt.name]
			require.True(t, ok, "field %q not extracted", tt.name)
			tt.check(t, f)
		})
	}
}

func TestExtractNoAcroForm(t *testing.T) {
	d := writer.NewDocument(612, 792)
	d.Text(writer.FontRegular, 12, 50, 750, "No fields")

	var buf bytes.Buffer
	require.NoError(t, d.Save(&buf))

	extractor := NewExtractor(false)
	fields, err := extractor.Extract(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestExtractFileMissing(t *testing.T) {
	extractor := NewExtractor(false)
	_, err := extractor.ExtractFile("does-not-exist.pdf")
	assert.Error(t, err)
}

func TestExtractGarbage(t *testing.T) {
	extractor := NewExtractor(false)
	_, err := extractor.Extract(bytes.NewReader([]byte("not a pdf")))
	assert.Error(t, err)
}
