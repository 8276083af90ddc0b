package fixtures

import (
	"fmt"
	"time"

	"github.com/a3tai/pdf-formgen/internal/pdf/writer"
)

// Page size of every generated document (US letter, in points).
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

// Widget box size for checkboxes and radio buttons.
const buttonSize = 20.0

var (
	black   = writer.RGB{R: 0, G: 0, B: 0}
	pink    = writer.RGB{R: 1, G: 0.75, B: 0.8}
	green   = writer.RGB{R: 0, G: 0.5, B: 0}
	magenta = writer.RGB{R: 1, G: 0, B: 1}
)

func rgb(c writer.RGB) *writer.RGB { return &c }

// label is one piece of static text drawn on the page.
type label struct {
	X, Y float64
	Size float64
	Text string
}

// layout is the declarative description of one fixture document: a
// title, static labels, and the ordered field definitions to place.
type layout struct {
	Title     string
	TitleFont writer.Name
	TitleSize float64
	Labels    []label
	Fields    []writer.Field
	Footer    string
}

// basicForm exercises minimal usage of each field kind: two text
// fields, a checkbox, a two-option radio group, and a dropdown.
func basicForm() layout {
	return layout{
		Title:     "Basic Form Example",
		TitleFont: writer.FontRegular,
		TitleSize: 12,
		Labels: []label{
			{50, 700, 12, "Name:"},
			{50, 650, 12, "Email:"},
			{50, 600, 12, "Subscribe:"},
			{50, 550, 12, "Gender:"},
			{175, 550, 12, "Male"},
			{275, 550, 12, "Female"},
			{50, 500, 12, "Country:"},
			{50, 400, 12, "Note: Submit buttons would go here in a real form"},
		},
		Fields: []writer.Field{
			{
				Name: "name", Kind: writer.FieldText,
				X: 150, Y: 695, Width: 300, Height: 20,
				Tooltip:     "Enter your name",
				BorderColor: rgb(black), FillColor: rgb(pink),
			},
			{
				Name: "email", Kind: writer.FieldText,
				X: 150, Y: 645, Width: 300, Height: 20,
				Tooltip:     "Enter your email",
				BorderColor: rgb(black), FillColor: rgb(pink),
			},
			{
				Name: "subscribe", Kind: writer.FieldCheckbox,
				X: 150, Y: 598, Width: buttonSize, Height: buttonSize,
				Tooltip:     "Check to subscribe",
				BorderColor: rgb(black), FillColor: rgb(green),
			},
			{
				Name: "gender", Kind: writer.FieldRadio,
				Width: buttonSize, Height: buttonSize,
				Tooltip:     "Select gender",
				BorderColor: rgb(black), FillColor: rgb(magenta),
				Buttons: []writer.RadioButton{
					{Value: "male", X: 150, Y: 548},
					{Value: "female", X: 250, Y: 548},
				},
			},
			{
				Name: "country", Kind: writer.FieldChoice,
				X: 150, Y: 495, Width: 200, Height: 20,
				Tooltip: "Select your country",
				Value:   "us",
				Options: []writer.Option{
					{Value: "us", Label: "United States"},
					{Value: "ca", Label: "Canada"},
					{Value: "uk", Label: "United Kingdom"},
				},
				BorderColor: rgb(black), FillColor: rgb(pink),
			},
		},
	}
}

// textFields exercises text field behavior flags in isolation: plain,
// required, length-limited, multiline, password-masked, and read-only
// with a preset value.
func textFields() layout {
	return layout{
		Title:     "Text Field Examples",
		TitleFont: writer.FontRegular,
		TitleSize: 12,
		Labels: []label{
			{50, 700, 12, "Regular Text:"},
			{50, 650, 12, "Required Field:"},
			{50, 600, 12, "Max 10 chars:"},
			{50, 550, 12, "Comments:"},
			{50, 430, 12, "Password:"},
			{50, 380, 12, "Read-only:"},
		},
		Fields: []writer.Field{
			{
				Name: "regularText", Kind: writer.FieldText,
				X: 200, Y: 695, Width: 250, Height: 20,
				Tooltip: "Regular text field",
			},
			{
				Name: "requiredField", Kind: writer.FieldText,
				X: 200, Y: 645, Width: 250, Height: 20,
				Tooltip:  "This field is required",
				Required: true,
			},
			{
				Name: "maxLengthField", Kind: writer.FieldText,
				X: 200, Y: 595, Width: 150, Height: 20,
				Tooltip: "Maximum 10 characters",
				MaxLen:  10,
			},
			{
				Name: "comments", Kind: writer.FieldText,
				X: 200, Y: 470, Width: 250, Height: 75,
				Tooltip:   "Multiline text field",
				Multiline: true,
			},
			{
				Name: "password", Kind: writer.FieldText,
				X: 200, Y: 425, Width: 250, Height: 20,
				Tooltip:  "Password field",
				Password: true,
			},
			{
				Name: "readOnly", Kind: writer.FieldText,
				X: 200, Y: 375, Width: 250, Height: 20,
				Tooltip:  "Read-only field",
				ReadOnly: true,
				Value:    "This cannot be changed",
			},
		},
	}
}

// choiceFields exercises choice variants: a short dropdown, a long one
// with a blank default, a four-option radio group, and three
// checkboxes simulating a multi-select.
func choiceFields() layout {
	sizeButtons := []writer.RadioButton{
		{Value: "s", X: 200, Y: 588},
		{Value: "m", X: 250, Y: 588, Selected: true},
		{Value: "l", X: 300, Y: 588},
		{Value: "xl", X: 350, Y: 588},
	}

	l := layout{
		Title:     "Choice Field Examples",
		TitleFont: writer.FontRegular,
		TitleSize: 12,
		Labels: []label{
			{50, 700, 12, "Simple Dropdown:"},
			{50, 650, 12, "State:"},
			{50, 590, 12, "Size:"},
			{220, 590, 12, "S"},
			{270, 590, 12, "M"},
			{320, 590, 12, "L"},
			{370, 590, 12, "XL"},
			{50, 540, 12, "Features:"},
			{170, 540, 12, "Feature 1"},
			{270, 540, 12, "Feature 2"},
			{370, 540, 12, "Feature 3"},
		},
		Fields: []writer.Field{
			{
				Name: "simpleDropdown", Kind: writer.FieldChoice,
				X: 200, Y: 695, Width: 200, Height: 20,
				Tooltip: "Select an option",
				Value:   "opt1",
				Options: []writer.Option{
					{Value: "opt1", Label: "Option 1"},
					{Value: "opt2", Label: "Option 2"},
					{Value: "opt3", Label: "Option 3"},
				},
			},
			{
				Name: "state", Kind: writer.FieldChoice,
				X: 200, Y: 645, Width: 200, Height: 20,
				Tooltip: "Select your state",
				Options: []writer.Option{
					{Value: "", Label: "-- Select State --"},
					{Value: "AL", Label: "Alabama"},
					{Value: "AK", Label: "Alaska"},
					{Value: "AZ", Label: "Arizona"},
					{Value: "AR", Label: "Arkansas"},
					{Value: "CA", Label: "California"},
					{Value: "CO", Label: "Colorado"},
					{Value: "CT", Label: "Connecticut"},
					{Value: "DE", Label: "Delaware"},
					{Value: "FL", Label: "Florida"},
					{Value: "GA", Label: "Georgia"},
					{Value: "HI", Label: "Hawaii"},
				},
			},
			{
				Name: "size", Kind: writer.FieldRadio,
				Width: buttonSize, Height: buttonSize,
				Tooltip: "Select a size",
				Buttons: sizeButtons,
			},
		},
	}

	features := []struct {
		name string
		x    float64
		tip  string
	}{
		{"feature1", 150, "Feature 1"},
		{"feature2", 250, "Feature 2"},
		{"feature3", 350, "Feature 3"},
	}
	for _, f := range features {
		l.Fields = append(l.Fields, writer.Field{
			Name: f.name, Kind: writer.FieldCheckbox,
			X: f.x, Y: 538, Width: buttonSize, Height: buttonSize,
			Tooltip: f.tip,
		})
	}

	return l
}

// mixedForm is a composite registration form combining required text
// fields, a dropdown, and two checkboxes in a realistic intake layout,
// with a generation timestamp footer.
func mixedForm(now time.Time) layout {
	return layout{
		Title:     "Registration Form",
		TitleFont: writer.FontBold,
		TitleSize: 14,
		Labels: []label{
			{50, 720, 11, "First Name:"},
			{300, 720, 11, "Last Name:"},
			{50, 680, 11, "Email:"},
			{50, 640, 11, "Age:"},
			{200, 640, 11, "Country:"},
			{50, 600, 11, "Subscribe to newsletter:"},
			{50, 570, 11, "I agree to the terms and conditions:"},
			{50, 500, 11, "Note: Submit button would go here in a real form"},
		},
		Fields: []writer.Field{
			{
				Name: "firstName", Kind: writer.FieldText,
				X: 130, Y: 715, Width: 150, Height: 20,
				Required: true,
			},
			{
				Name: "lastName", Kind: writer.FieldText,
				X: 380, Y: 715, Width: 150, Height: 20,
				Required: true,
			},
			{
				Name: "emailAddress", Kind: writer.FieldText,
				X: 130, Y: 675, Width: 400, Height: 20,
				Required: true,
			},
			{
				Name: "age", Kind: writer.FieldText,
				X: 130, Y: 635, Width: 50, Height: 20,
				MaxLen: 3,
			},
			{
				Name: "countrySelect", Kind: writer.FieldChoice,
				X: 280, Y: 635, Width: 150, Height: 20,
				Options: []writer.Option{
					{Value: "", Label: "-- Select --"},
					{Value: "us", Label: "United States"},
					{Value: "ca", Label: "Canada"},
					{Value: "mx", Label: "Mexico"},
					{Value: "uk", Label: "United Kingdom"},
					{Value: "de", Label: "Germany"},
					{Value: "fr", Label: "France"},
				},
			},
			{
				Name: "newsletter", Kind: writer.FieldCheckbox,
				X: 200, Y: 598, Width: buttonSize, Height: buttonSize,
			},
			{
				Name: "terms", Kind: writer.FieldCheckbox,
				X: 250, Y: 568, Width: buttonSize, Height: buttonSize,
				Required: true,
			},
		},
		Footer: fmt.Sprintf("Form generated on %s", now.Format("2006-01-02 15:04:05")),
	}
}
