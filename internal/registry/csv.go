package registry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// categoryColumns maps the CSV column prefixes to catalog labels
var categoryColumns = map[string]string{
	"degree":     "DEGREE",
	"non_degree": "NON DEGREE",
	"candidates": "NO OF CANDIDATES",
	"exam_fee":   "EXAM FEE",
	"handbooks":  "HAND BOOKS",
}

// LoadError reports a client file that could not be read
type LoadError struct {
	Path    string
	Line    int
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("registry: %s line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("registry: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NewLoadError creates a LoadError
func NewLoadError(path string, line int, message string, cause error) *LoadError {
	return &LoadError{Path: path, Line: line, Message: message, Cause: cause}
}

// LoadCSV reads a client directory from a CSV file. The first row is a
// header; columns are matched by name so their order does not matter.
// Recognised columns are name, gstin, pan, address, email,
// purchase_order and, per category, <category>_qty and <category>_rate
// using the prefixes degree, non_degree, candidates, exam_fee and
// handbooks. Unknown columns are ignored.
func LoadCSV(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(path, 0, "cannot open client file", err)
	}
	defer f.Close()

	dir, err := ReadCSV(f)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
			return nil, loadErr
		}
		return nil, NewLoadError(path, 0, "cannot parse client file", err)
	}
	return dir, nil
}

// ReadCSV reads a client directory from CSV data
func ReadCSV(r io.Reader) (*Directory, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows may omit trailing category columns
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, NewLoadError("", 0, "client file is empty", nil)
	}
	if err != nil {
		return nil, NewLoadError("", 0, "cannot read header", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := index["name"]; !ok {
		return nil, NewLoadError("", 1, "header has no name column", nil)
	}

	cell := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	dir := NewDirectory()
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, NewLoadError("", line, "malformed row", err)
		}

		c := Client{
			Name:          cell(record, "name"),
			GSTIN:         strings.ToUpper(cell(record, "gstin")),
			PAN:           strings.ToUpper(cell(record, "pan")),
			Address:       cell(record, "address"),
			Email:         cell(record, "email"),
			PurchaseOrder: cell(record, "purchase_order"),
		}
		if c.Name == "" {
			continue
		}

		for prefix, label := range categoryColumns {
			qty := cell(record, prefix+"_qty")
			rate := cell(record, prefix+"_rate")
			if qty == "" && rate == "" {
				continue
			}
			if c.Defaults == nil {
				c.Defaults = make(map[string]ItemDefault)
			}
			c.Defaults[label] = ItemDefault{Quantity: qty, Rate: rate}
		}

		dir.Put(c)
	}

	return dir, nil
}
