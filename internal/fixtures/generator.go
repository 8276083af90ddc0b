// Package fixtures produces the sample PDF documents with AcroForm
// fields used as fixtures when testing form-extraction tooling. Each
// layout is a declarative table of field definitions consumed by one
// generic placement routine.
package fixtures

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/a3tai/pdf-formgen/internal/pdf/writer"
)

// Output file names of the four fixture documents.
const (
	BasicFormFile    = "basic-form.pdf"
	TextFieldsFile   = "text-fields.pdf"
	ChoiceFieldsFile = "choice-fields.pdf"
	MixedFormFile    = "mixed-form.pdf"
)

// Generator renders the canned fixture layouts into PDF files.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a fixture generator.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// GenerateBasicForm writes a form with basic field types: text fields,
// a checkbox, a radio group, and a dropdown.
func (g *Generator) GenerateBasicForm(path string) error {
	return g.render(basicForm(), path)
}

// GenerateTextFields writes a form with six text field configurations.
func (g *Generator) GenerateTextFields(path string) error {
	return g.render(textFields(), path)
}

// GenerateChoiceFields writes a form with dropdowns, radio buttons, and
// checkboxes.
func (g *Generator) GenerateChoiceFields(path string) error {
	return g.render(choiceFields(), path)
}

// GenerateMixedForm writes a realistic registration form with mixed
// field types and a generation timestamp footer.
func (g *Generator) GenerateMixedForm(path string) error {
	return g.render(mixedForm(g.now()), path)
}

// render draws one layout onto a fresh document and writes it to path.
// A confirmation line is printed on success.
func (g *Generator) render(l layout, path string) error {
	doc := writer.NewDocument(PageWidth, PageHeight)

	doc.Text(l.TitleFont, l.TitleSize, 50, 750, l.Title)
	doc.Line(50, 745, 550, 745)

	for _, lb := range l.Labels {
		doc.Text(writer.FontRegular, lb.Size, lb.X, lb.Y, lb.Text)
	}

	for _, f := range l.Fields {
		if err := doc.AddField(f); err != nil {
			return fmt.Errorf("failed to place field %q: %w", f.Name, err)
		}
	}

	if l.Footer != "" {
		doc.Text(writer.FontRegular, 8, 50, 50, l.Footer)
	}

	if err := doc.WriteFile(path); err != nil {
		return err
	}

	fmt.Printf("Created: %s\n", path)
	return nil
}

// Result reports the outcome of one document generation.
type Result struct {
	File string
	Path string
	Err  error
}

// GenerateAll writes all four fixture documents into dir, creating it
// if absent. Each document is generated independently: a failure in one
// does not abort the rest. The returned error joins the individual
// failures, if any.
func (g *Generator) GenerateAll(dir string) ([]Result, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("cannot create output directory %s: %w", dir, err)
	}

	docs := []struct {
		file     string
		generate func(string) error
	}{
		{BasicFormFile, g.GenerateBasicForm},
		{TextFieldsFile, g.GenerateTextFields},
		{ChoiceFieldsFile, g.GenerateChoiceFields},
		{MixedFormFile, g.GenerateMixedForm},
	}

	results := make([]Result, 0, len(docs))
	var errs []error
	for _, doc := range docs {
		path := filepath.Join(dir, doc.file)
		err := doc.generate(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", doc.file, err))
		}
		results = append(results, Result{File: doc.file, Path: path, Err: err})
	}

	return results, errors.Join(errs...)
}
