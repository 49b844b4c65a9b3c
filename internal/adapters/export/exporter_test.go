package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testHeader = []string{"id", "title"}
	testRows   = [][]string{{"1", "Go, tips"}, {"2", `say "hi"`}, {"3"}}
)

func TestWriter_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter().Export(context.Background(), FormatCSV, &buf, testHeader, testRows))

	want := "id,title\n1,\"Go, tips\"\n2,\"say \"\"hi\"\"\"\n3,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter().Export(context.Background(), FormatJSON, &buf, testHeader, testRows))

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []map[string]string{
		{"id": "1", "title": "Go, tips"},
		{"id": "2", "title": `say "hi"`},
		{"id": "3", "title": ""},
	}, got)
}

func TestWriter_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter().Export(context.Background(), FormatJSON, &buf, nil, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriter_XML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter().Export(context.Background(), FormatXML, &buf, testHeader, testRows[:2]))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, "<datas>")
	assert.Contains(t, out, "<title>Go, tips</title>")
	assert.Contains(t, out, "<title>say &#34;hi&#34;</title>")
	assert.Equal(t, 2, strings.Count(out, "<row>"))
}

func TestWriter_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter().Export(context.Background(), "xls", &buf, testHeader, testRows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xls")
	assert.Empty(t, buf.String())
}

func TestWriter_ContentType(t *testing.T) {
	w := NewWriter()
	assert.Equal(t, "text/csv; charset=utf-8", w.ContentType(FormatCSV))
	assert.Equal(t, "application/json", w.ContentType(FormatJSON))
	assert.Equal(t, "text/xml; charset=utf-8", w.ContentType(FormatXML))
	assert.Empty(t, w.ContentType("xls"))
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	assert.ErrorIs(t, NewWriter().Export(ctx, FormatCSV, &buf, testHeader, testRows), context.Canceled)
}
