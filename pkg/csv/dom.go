package csv

import "github.com/shapestone/shape-core/pkg/ast"

// Document is a parsed file with accessors for its records.
// Setter methods return *Document to allow chaining.
//
// Headers are optional. When set they are rendered as the first record
// and let Record.GetByName look fields up by column name.
//
//	doc, _ := csv.ParseDocument("name,age\r\nAlice,30\x03")
//	doc.UseFirstRecordAsHeaders()
//	record, _ := doc.GetRecord(0)
//	age, _ := record.GetByName("age") // "30"
type Document struct {
	headers []string
	records [][]string
}

// Record is a single row of a Document.
type Record struct {
	fields  []string
	headers []string
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{
		headers: []string{},
		records: make([][]string, 0),
	}
}

// ParseDocument parses input into a Document. Data after the sentinel is
// an error.
func ParseDocument(input string) (*Document, error) {
	records, err := ParseStrict(input)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	for _, record := range records {
		doc.AddRecord(record)
	}
	return doc, nil
}

// SetHeaders sets the column names.
func (d *Document) SetHeaders(headers []string) *Document {
	d.headers = headers
	return d
}

// UseFirstRecordAsHeaders moves the first record into the headers.
// It does nothing when the document has no records.
func (d *Document) UseFirstRecordAsHeaders() *Document {
	if len(d.records) == 0 {
		return d
	}
	d.headers = d.records[0]
	d.records = d.records[1:]
	return d
}

// AddRecord appends a record.
func (d *Document) AddRecord(fields []string) *Document {
	d.records = append(d.records, fields)
	return d
}

// Headers returns the column names, or an empty slice if none are set.
func (d *Document) Headers() []string {
	return d.headers
}

// Records returns all records in row order. Headers are not included.
func (d *Document) Records() []Record {
	records := make([]Record, len(d.records))
	for i, fields := range d.records {
		records[i] = Record{fields: fields, headers: d.headers}
	}
	return records
}

// RecordCount returns the number of records, not counting headers.
func (d *Document) RecordCount() int {
	return len(d.records)
}

// GetRecord returns the record at index, or false if index is out of range.
func (d *Document) GetRecord(index int) (Record, bool) {
	if index < 0 || index >= len(d.records) {
		return Record{}, false
	}
	return Record{fields: d.records[index], headers: d.headers}, true
}

// CSV renders the document, headers first, in the format Parse accepts.
func (d *Document) CSV() (string, error) {
	out, err := Render(d.all())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ToAST converts the document, headers first, to an AST in the shape
// ParseAST produces.
func (d *Document) ToAST() *ast.ArrayDataNode {
	return toAST(d.all())
}

// FromAST creates a Document from an AST in the shape ParseAST produces.
func FromAST(node ast.SchemaNode) (*Document, error) {
	records, err := recordsFromAST(node)
	if err != nil {
		return nil, err
	}
	return &Document{headers: []string{}, records: records}, nil
}

func (d *Document) all() [][]string {
	if len(d.headers) == 0 {
		return d.records
	}
	return append([][]string{d.headers}, d.records...)
}

// Get returns the field at index, or false if index is out of range.
func (r Record) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName returns the field under the named header. It returns false
// when no headers are set, the name is unknown, or the record is too short
// to have that column.
func (r Record) GetByName(name string) (string, bool) {
	for i, header := range r.headers {
		if header == name {
			return r.Get(i)
		}
	}
	return "", false
}

// Fields returns a copy of the record's fields.
func (r Record) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}
