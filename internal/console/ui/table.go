package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table writes aligned columns. Rows shorter than the header are padded.
func (t *Terminal) Table(header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		cells := make([]string, len(header))
		copy(cells, row)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

type Field struct {
	Label string
	Value string
}

// Fields writes one "label: value" line per field, labels aligned.
func (t *Terminal) Fields(fields []Field) error {
	tw := tabwriter.NewWriter(t.out, 0, 0, 1, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Label, f.Value)
	}
	return tw.Flush()
}

func (t *Terminal) Heading(title string) {
	fmt.Fprintf(t.out, "\n%s\n%s\n", title, strings.Repeat("=", len([]rune(title))))
}

// Frame renders spreadsheet sample rows in the original column order. Cells
// are kept as text, whatever the backend decoded them to.
func (t *Terminal) Frame(columns []string, rows []map[string]any) error {
	if len(rows) == 0 || len(columns) == 0 {
		t.Println("(no rows)")
		return nil
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, columns)
	for _, row := range rows {
		rec := make([]string, len(columns))
		for i, c := range columns {
			if v, ok := row[c]; ok && v != nil {
				rec[i] = fmt.Sprint(v)
			}
		}
		records = append(records, rec)
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return fmt.Errorf("can't build preview: %w", df.Err)
	}

	out := df.Records()
	return t.Table(out[0], out[1:])
}
