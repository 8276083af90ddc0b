// Package writer assembles PDF documents from scratch: an object table,
// page content streams, AcroForm field dictionaries, and the final
// cross-reference table and trailer.
package writer

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Name represents a PDF name object, serialized with a leading slash.
type Name string

// Ref represents an indirect reference to a numbered object.
type Ref int

// Dict represents a PDF dictionary.
type Dict map[string]any

// Array represents a PDF array.
type Array []any

// formatDict serializes a dictionary with sorted keys so output is
// deterministic across runs.
func formatDict(dict Dict) []byte {
	var buf bytes.Buffer
	buf.WriteString("<<")

	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		buf.WriteString("/")
		buf.WriteString(key)
		buf.WriteString(" ")
		buf.WriteString(formatValue(dict[key]))
		buf.WriteString(" ")
	}

	buf.WriteString(">>")
	return buf.Bytes()
}

// formatValue serializes a single value as PDF syntax.
func formatValue(value any) string {
	switch v := value.(type) {
	case Name:
		return "/" + string(v)
	case Ref:
		return fmt.Sprintf("%d 0 R", int(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return "(" + EscapeString(v) + ")"
	case Array:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, formatValue(item))
		}
		return "[" + strings.Join(items, " ") + "]"
	case Dict:
		return string(formatDict(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// EscapeString escapes special characters for a PDF literal string.
func EscapeString(s string) string {
	var result strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			result.WriteString("\\\\")
		case '(':
			result.WriteString("\\(")
		case ')':
			result.WriteString("\\)")
		case '\n':
			result.WriteString("\\n")
		case '\r':
			result.WriteString("\\r")
		case '\t':
			result.WriteString("\\t")
		default:
			if r > 127 {
				result.WriteString(fmt.Sprintf("\\%03o", r))
			} else {
				result.WriteRune(r)
			}
		}
	}
	return result.String()
}
