package csv_test

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-rfc4180/pkg/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc := csv.NewDocument()
	require.NotNil(t, doc)
	assert.Equal(t, 0, doc.RecordCount())
	assert.Empty(t, doc.Headers())
}

func TestParseDocument(t *testing.T) {
	doc, err := csv.ParseDocument("name,age\r\nAlice,30\r\nBob,25\x03")
	require.NoError(t, err)
	assert.Equal(t, 3, doc.RecordCount())

	doc.UseFirstRecordAsHeaders()
	assert.Equal(t, []string{"name", "age"}, doc.Headers())
	require.Equal(t, 2, doc.RecordCount())

	record, ok := doc.GetRecord(1)
	require.True(t, ok)

	name, ok := record.GetByName("name")
	assert.True(t, ok)
	assert.Equal(t, "Bob", name)

	_, ok = record.GetByName("email")
	assert.False(t, ok)
}

func TestParseDocument_Error(t *testing.T) {
	doc, err := csv.ParseDocument("name,age")
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, csv.ErrNoMatch)
}

func TestDocument_Chaining(t *testing.T) {
	doc := csv.NewDocument()
	assert.Same(t, doc, doc.SetHeaders([]string{"a"}))
	assert.Same(t, doc, doc.AddRecord([]string{"1"}))
	assert.Same(t, doc, doc.UseFirstRecordAsHeaders())
}

func TestDocument_UseFirstRecordAsHeadersEmpty(t *testing.T) {
	doc := csv.NewDocument().UseFirstRecordAsHeaders()
	assert.Empty(t, doc.Headers())
	assert.Equal(t, 0, doc.RecordCount())
}

func TestDocument_GetRecordOutOfRange(t *testing.T) {
	doc := csv.NewDocument().AddRecord([]string{"a"})

	_, ok := doc.GetRecord(-1)
	assert.False(t, ok)
	_, ok = doc.GetRecord(1)
	assert.False(t, ok)
}

func TestRecord_Access(t *testing.T) {
	doc := csv.NewDocument().
		SetHeaders([]string{"a", "b", "c"}).
		AddRecord([]string{"1", "2"})

	records := doc.Records()
	require.Len(t, records, 1)
	record := records[0]

	assert.Equal(t, 2, record.Len())

	v, ok := record.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = record.Get(2)
	assert.False(t, ok)

	// Ragged row: header "c" has no field.
	_, ok = record.GetByName("c")
	assert.False(t, ok)

	fields := record.Fields()
	fields[0] = "changed"
	v, _ = record.Get(0)
	assert.Equal(t, "1", v)
}

func TestRecord_GetByNameWithoutHeaders(t *testing.T) {
	record, ok := csv.NewDocument().AddRecord([]string{"x"}).GetRecord(0)
	require.True(t, ok)

	_, ok = record.GetByName("x")
	assert.False(t, ok)
}

func TestDocument_CSV(t *testing.T) {
	doc := csv.NewDocument().
		SetHeaders([]string{"name", "quote"}).
		AddRecord([]string{"Alice", csv.Quote(`she said "hi"`)})

	out, err := doc.CSV()
	require.NoError(t, err)
	assert.Equal(t, "name,quote\r\nAlice,\"she said \"\"hi\"\"\"\x03", out)

	round, err := csv.ParseDocument(out)
	require.NoError(t, err)
	round.UseFirstRecordAsHeaders()
	record, _ := round.GetRecord(0)
	quote, _ := record.GetByName("quote")
	assert.Equal(t, `"she said ""hi"""`, quote)
}

func TestDocument_CSVInvalidField(t *testing.T) {
	doc := csv.NewDocument().AddRecord([]string{"a,b"})

	_, err := doc.CSV()
	assert.ErrorIs(t, err, csv.ErrInvalidField)
}

func TestDocument_ASTRoundTrip(t *testing.T) {
	doc := csv.NewDocument().
		SetHeaders([]string{"h1", "h2"}).
		AddRecord([]string{"a", "b"})

	node := doc.ToAST()
	require.Equal(t, 2, node.Len())

	back, err := csv.FromAST(node)
	require.NoError(t, err)
	assert.Equal(t, 2, back.RecordCount())

	first, _ := back.GetRecord(0)
	assert.Equal(t, []string{"h1", "h2"}, first.Fields())
}

func TestFromAST_Errors(t *testing.T) {
	_, err := csv.FromAST(ast.NewLiteralNode("x", ast.ZeroPosition()))
	assert.Error(t, err)

	bad := ast.NewArrayDataNode([]ast.SchemaNode{
		ast.NewLiteralNode("x", ast.ZeroPosition()),
	}, ast.ZeroPosition())
	_, err = csv.FromAST(bad)
	assert.Error(t, err)
}
