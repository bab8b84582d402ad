package csv

import (
	"bytes"
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-rfc4180/internal/parser"
)

// Render converts records to file text: fields joined by commas, records
// joined by CRLF, then the sentinel.
//
// Every field must already be a valid field as Parse returns it. Values
// containing commas, quotes or line breaks must be escaped first with
// Quote. Since Parse keeps escaped fields as written, rendering parsed
// records reproduces the consumed input exactly.
//
// Example:
//
//	out, _ := csv.Render([][]string{{"a", csv.Quote("b,c")}})
//	// out: a,"b,c"\x03
func Render(records [][]string) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	var buf bytes.Buffer
	for i, record := range records {
		if i > 0 {
			buf.WriteString("\r\n")
		}
		if err := renderRecord(&buf, i, record); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(Sentinel)

	return buf.Bytes(), nil
}

func renderRecord(buf *bytes.Buffer, index int, fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("record %d: %w", index, ErrEmptyRecord)
	}
	for j, field := range fields {
		if !parser.IsField(field) {
			return fmt.Errorf("record %d, field %d: %w: %q", index, j, ErrInvalidField, field)
		}
		if j > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(field)
	}
	return nil
}

// RenderAST converts an AST produced by ParseAST back to file text.
func RenderAST(node ast.SchemaNode) ([]byte, error) {
	records, err := recordsFromAST(node)
	if err != nil {
		return nil, err
	}
	return Render(records)
}

// Quote returns s in escaped form, enclosed in double quotes with each
// double quote doubled. The result is a valid field whenever s holds only
// TEXTDATA, commas, double quotes, CR and LF.
func Quote(s string) string {
	return parser.Quote(s)
}

// recordsFromAST reads the records of an AST in the shape ParseAST
// produces.
func recordsFromAST(node ast.SchemaNode) ([][]string, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	elements := arrayNode.Elements()
	records := make([][]string, 0, len(elements))
	for _, elem := range elements {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", elem)
		}

		fields := make([]string, 0, recordNode.Len())
		for _, fieldNode := range recordNode.Elements() {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
			}
			value, ok := literalNode.Value().(string)
			if !ok {
				return nil, fmt.Errorf("expected field value to be string, got %T", literalNode.Value())
			}
			fields = append(fields, value)
		}
		records = append(records, fields)
	}

	return records, nil
}
