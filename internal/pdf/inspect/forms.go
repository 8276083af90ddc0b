// Package inspect reads generated fixture PDFs back and reports their
// AcroForm field schemas, so tests and the verify pass can confirm each
// document carries exactly the fields it should.
package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// FieldType represents the type of a form field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeSelect   FieldType = "select"
	FieldTypeButton   FieldType = "button"
	FieldTypeUnknown  FieldType = "unknown"
)

// Choice is one (export value, display label) option of a choice field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormField is the extracted schema of one interactive form field.
type FormField struct {
	Name        string      `json:"name"`
	Type        FieldType   `json:"type"`
	Value       interface{} `json:"value,omitempty"`
	Default     interface{} `json:"default,omitempty"`
	Options     []Choice    `json:"options,omitempty"`
	Required    bool        `json:"required"`
	ReadOnly    bool        `json:"read_only"`
	Multiline   bool        `json:"multiline"`
	Password    bool        `json:"password"`
	MaxLength   int         `json:"max_length,omitempty"`
	Tooltip     string      `json:"tooltip,omitempty"`
	WidgetCount int         `json:"widget_count"`
	Rect        []float64   `json:"rect,omitempty"`
}

// Extractor walks the AcroForm dictionary of a PDF using pdfcpu.
type Extractor struct {
	debugMode bool
}

// NewExtractor creates a form field extractor.
func NewExtractor(debugMode bool) *Extractor {
	return &Extractor{debugMode: debugMode}
}

// ExtractFile extracts all form fields from a PDF file.
func (e *Extractor) ExtractFile(filePath string) ([]FormField, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer file.Close()

	return e.Extract(file)
}

// Extract extracts all form fields from a PDF read from reader.
func (e *Extractor) Extract(reader io.ReadSeeker) ([]FormField, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(reader, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to ensure page count: %w", err)
	}

	return e.extractFromContext(ctx)
}

func (e *Extractor) extractFromContext(ctx *model.Context) ([]FormField, error) {
	var fields []FormField

	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		if e.debugMode {
			fmt.Println("No AcroForm dictionary found in document")
		}
		return fields, nil
	}

	acroFormDict, err := ctx.DereferenceDict(acroFormObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference AcroForm: %w", err)
	}
	if acroFormDict == nil {
		return fields, nil
	}

	fieldsObj, found := acroFormDict.Find("Fields")
	if !found {
		return fields, nil
	}
	fieldsArray, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference Fields array: %w", err)
	}

	for i, fieldRef := range fieldsArray {
		field, err := e.processField(ctx, fieldRef, i)
		if err != nil {
			if e.debugMode {
				fmt.Printf("Error processing field %d: %v\n", i, err)
			}
			continue
		}
		if field != nil {
			fields = append(fields, *field)
		}
	}

	return fields, nil
}

func (e *Extractor) processField(ctx *model.Context, fieldObj types.Object, index int) (*FormField, error) {
	fieldDict, err := ctx.DereferenceDict(fieldObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference field: %w", err)
	}
	if fieldDict == nil {
		return nil, nil
	}

	field := &FormField{WidgetCount: 1}

	if nameObj, found := fieldDict.Find("T"); found {
		if name, err := ctx.DereferenceStringOrHexLiteral(nameObj, model.V10, nil); err == nil {
			field.Name = name
		}
	}
	if field.Name == "" {
		field.Name = fmt.Sprintf("field_%d", index)
	}

	if tipObj, found := fieldDict.Find("TU"); found {
		if tip, err := ctx.DereferenceStringOrHexLiteral(tipObj, model.V10, nil); err == nil {
			field.Tooltip = tip
		}
	}

	flags := e.fieldFlags(ctx, fieldDict)
	field.Type = e.fieldType(ctx, fieldDict, flags)
	field.ReadOnly = flags&1 != 0
	field.Required = flags&2 != 0
	field.Multiline = field.Type == FieldTypeText && flags&(1<<12) != 0
	field.Password = field.Type == FieldTypeText && flags&(1<<13) != 0

	if valueObj, found := fieldDict.Find("V"); found {
		field.Value = e.fieldValue(ctx, valueObj, field.Type)
	}
	if defaultObj, found := fieldDict.Find("DV"); found {
		field.Default = e.fieldValue(ctx, defaultObj, field.Type)
	}

	if maxLenObj, found := fieldDict.Find("MaxLen"); found {
		if maxLen, err := ctx.DereferenceInteger(maxLenObj); err == nil && maxLen != nil {
			field.MaxLength = int(*maxLen)
		}
	}

	if field.Type == FieldTypeSelect {
		field.Options = e.fieldOptions(ctx, fieldDict)
	}

	if kidsObj, found := fieldDict.Find("Kids"); found {
		if kidsArray, err := ctx.DereferenceArray(kidsObj); err == nil {
			field.WidgetCount = len(kidsArray)
		}
	}

	if rectObj, found := fieldDict.Find("Rect"); found {
		field.Rect = e.fieldRect(ctx, rectObj)
	}

	if e.debugMode {
		fmt.Printf("Extracted field: %s (type: %s)\n", field.Name, field.Type)
	}

	return field, nil
}

// fieldFlags reads the /Ff entry, following the parent chain if needed.
func (e *Extractor) fieldFlags(ctx *model.Context, fieldDict types.Dict) int {
	if flagsObj, found := fieldDict.Find("Ff"); found {
		if flags, err := ctx.DereferenceInteger(flagsObj); err == nil && flags != nil {
			return int(*flags)
		}
	}
	if parentObj, found := fieldDict.Find("Parent"); found {
		if parentDict, err := ctx.DereferenceDict(parentObj); err == nil && parentDict != nil {
			return e.fieldFlags(ctx, parentDict)
		}
	}
	return 0
}

// fieldType determines the field type from the /FT entry and flags.
func (e *Extractor) fieldType(ctx *model.Context, fieldDict types.Dict, flags int) FieldType {
	ftObj, found := fieldDict.Find("FT")
	if !found {
		if parentObj, found := fieldDict.Find("Parent"); found {
			if parentDict, err := ctx.DereferenceDict(parentObj); err == nil && parentDict != nil {
				return e.fieldType(ctx, parentDict, flags)
			}
		}
		return FieldTypeUnknown
	}

	ftName, err := ctx.DereferenceName(ftObj, model.V10, nil)
	if err != nil {
		return FieldTypeUnknown
	}

	switch ftName {
	case "Btn":
		if flags&(1<<15) != 0 {
			return FieldTypeRadio
		}
		if flags&(1<<16) != 0 {
			return FieldTypeButton
		}
		return FieldTypeCheckbox
	case "Tx":
		return FieldTypeText
	case "Ch":
		return FieldTypeSelect
	default:
		return FieldTypeUnknown
	}
}

// fieldValue extracts the /V or /DV entry based on field type.
func (e *Extractor) fieldValue(ctx *model.Context, valueObj types.Object, fieldType FieldType) interface{} {
	switch fieldType {
	case FieldTypeText, FieldTypeSelect:
		if val, err := ctx.DereferenceStringOrHexLiteral(valueObj, model.V10, nil); err == nil {
			return val
		}
	case FieldTypeCheckbox:
		if name, err := ctx.DereferenceName(valueObj, model.V10, nil); err == nil {
			return name == "Yes" || name == "On"
		}
	case FieldTypeRadio:
		if name, err := ctx.DereferenceName(valueObj, model.V10, nil); err == nil {
			return name
		}
	}
	return nil
}

// fieldOptions extracts the /Opt array. Entries are either plain strings
// or [export value, display label] pairs.
func (e *Extractor) fieldOptions(ctx *model.Context, fieldDict types.Dict) []Choice {
	var options []Choice

	optObj, found := fieldDict.Find("Opt")
	if !found {
		return options
	}
	optArray, err := ctx.DereferenceArray(optObj)
	if err != nil {
		return options
	}

	for _, opt := range optArray {
		if str, err := ctx.DereferenceStringOrHexLiteral(opt, model.V10, nil); err == nil {
			options = append(options, Choice{Value: str, Label: str})
			continue
		}
		if arr, err := ctx.DereferenceArray(opt); err == nil && len(arr) >= 2 {
			var choice Choice
			if val, err := ctx.DereferenceStringOrHexLiteral(arr[0], model.V10, nil); err == nil {
				choice.Value = val
			}
			if label, err := ctx.DereferenceStringOrHexLiteral(arr[1], model.V10, nil); err == nil {
				choice.Label = label
			}
			options = append(options, choice)
		}
	}

	return options
}

// fieldRect parses the widget /Rect entry.
func (e *Extractor) fieldRect(ctx *model.Context, rectObj types.Object) []float64 {
	rectArray, err := ctx.DereferenceArray(rectObj)
	if err != nil || len(rectArray) != 4 {
		return nil
	}

	coords := make([]float64, 4)
	for i, coord := range rectArray {
		if f, err := ctx.DereferenceNumber(coord); err == nil {
			coords[i] = f
		}
	}
	return coords
}
