package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"table", "json", "csv", "wordgrain"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleAggregate(), FormatTable, 2))

	out := buf.String()
	assert.Contains(t, out, "Artist: Test Artist")
	assert.Contains(t, out, "Songs analyzed: 2")
	assert.Contains(t, out, "gonna")
	assert.Contains(t, out, "night")
	assert.NotContains(t, out, "rain")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleAggregate(), FormatJSON, 2))

	var report struct {
		Artist   string `json:"artist"`
		TopWords []struct {
			Word  string `json:"word"`
			Count int    `json:"count"`
		} `json:"top_words"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "Test Artist", report.Artist)
	require.Len(t, report.TopWords, 2)
	assert.Equal(t, "gonna", report.TopWords[0].Word)
	assert.Equal(t, 60, report.TopWords[0].Count)
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleAggregate(), FormatCSV, 3))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"rank", "word", "count", "percentage"}, records[0])
	assert.Equal(t, []string{"1", "gonna", "60", "60.00"}, records[1])
	assert.Equal(t, []string{"3", "rain", "10", "10.00"}, records[3])
}

func TestRenderWordGrain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleAggregate(), FormatWordGrain, 2))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, SchemaURL, doc.Schema)
	// topN limits display formats only; wordgrain exports everything.
	assert.Len(t, doc.Grains, 3)
}
