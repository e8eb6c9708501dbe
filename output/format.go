package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"lyriclens/analysis"
)

// Format selects the render target for an analysis run.
type Format string

const (
	FormatTable     Format = "table"
	FormatJSON      Format = "json"
	FormatCSV       Format = "csv"
	FormatWordGrain Format = "wordgrain"
)

// ParseFormat validates a format name from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatCSV, FormatWordGrain:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, csv, or wordgrain)", s)
	}
}

// Render writes the aggregate result in the given format. topN limits the
// display formats only; wordgrain always exports the full vocabulary, and
// callers wanting enrichment or a non-English language code build the
// document themselves and use WriteDocument.
func Render(w io.Writer, agg *analysis.AggregateResult, format Format, topN int) error {
	switch format {
	case FormatTable:
		return renderTable(w, agg, topN)
	case FormatJSON:
		return renderJSON(w, agg, topN)
	case FormatCSV:
		return renderCSV(w, agg, topN)
	case FormatWordGrain:
		return WriteDocument(w, NewDocument(agg, "en"))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteDocument marshals a WordGrain document with indentation.
func WriteDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

func renderTable(w io.Writer, agg *analysis.AggregateResult, topN int) error {
	fmt.Fprintf(w, "Artist: %s\n", agg.ArtistName)
	fmt.Fprintf(w, "Songs analyzed: %d\n", agg.SongsAnalyzed)
	fmt.Fprintf(w, "Total words: %d, unique words: %d\n\n", agg.TotalWords, agg.UniqueWords)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tWORD\tCOUNT\tPERCENT")
	for i, freq := range agg.TopWords(topN) {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f%%\n", i+1, freq.Word, freq.Count, freq.Percentage)
	}
	return tw.Flush()
}

type jsonReport struct {
	Artist        string                   `json:"artist"`
	SongsAnalyzed int                      `json:"songs_analyzed"`
	TotalWords    int                      `json:"total_words"`
	UniqueWords   int                      `json:"unique_words"`
	TopWords      []analysis.WordFrequency `json:"top_words"`
}

func renderJSON(w io.Writer, agg *analysis.AggregateResult, topN int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Artist:        agg.ArtistName,
		SongsAnalyzed: agg.SongsAnalyzed,
		TotalWords:    agg.TotalWords,
		UniqueWords:   agg.UniqueWords,
		TopWords:      agg.TopWords(topN),
	})
}

func renderCSV(w io.Writer, agg *analysis.AggregateResult, topN int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "word", "count", "percentage"}); err != nil {
		return err
	}
	for i, freq := range agg.TopWords(topN) {
		record := []string{
			strconv.Itoa(i + 1),
			freq.Word,
			strconv.Itoa(freq.Count),
			strconv.FormatFloat(freq.Percentage, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
