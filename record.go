package cinelist

import (
	"strconv"
	"strings"
)

// Record is one extracted title entry. Title is the only required field;
// every other field is nil or empty when it could not be resolved from
// the markup.
type Record struct {
	Title    string   `json:"title"`
	Year     *int     `json:"year"`
	Duration *int     `json:"duration"` // total minutes
	Age      string   `json:"age"`      // age threshold or certification code
	Rating   *float64 `json:"rating"`
	Votes    *int     `json:"votes"`
}

// Row is a Record with its position in a Dataset. No is 1-based and dense,
// assigned after de-duplication.
type Row struct {
	No int `json:"no"`
	Record
}

// Dataset is the ordered result of one extraction. Row order mirrors
// discovery order in the source document. A Dataset is immutable once
// produced.
type Dataset struct {
	Rows []Row `json:"rows"`
}

// Columns returns the dataset column headers in output order.
func Columns() []string {
	return []string{"No.", "Title", "Year", "Duration", "Age", "Rating", "Votes"}
}

// NewDataset builds a Dataset from extracted records. Records without a
// title are discarded. Duplicates sharing the same (lowercased Title,
// stringified Year) key are dropped, keeping the first occurrence. Row
// numbers are assigned 1..N after de-duplication.
func NewDataset(records []Record) *Dataset {
	seen := make(map[string]bool)
	var rows []Row

	for _, rec := range records {
		title := strings.TrimSpace(rec.Title)
		if title == "" {
			continue
		}

		key := strings.ToLower(title) + "\x00" + intString(rec.Year)
		if seen[key] {
			continue
		}
		seen[key] = true

		rows = append(rows, Row{No: len(rows) + 1, Record: rec})
	}

	return &Dataset{Rows: rows}
}

// Len returns the number of rows in the dataset.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Values returns the row rendered as display strings in column order.
// Unresolved fields render as empty strings; Duration renders as a bare
// integer minute count.
func (r Row) Values() []string {
	return []string{
		strconv.Itoa(r.No),
		r.Title,
		intString(r.Year),
		intString(r.Duration),
		r.Age,
		floatString(r.Rating),
		intString(r.Votes),
	}
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
