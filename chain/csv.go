package chain

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for trace CSV loading.
type CSVOptions struct {
	HasHeader bool     // Whether the file has a header row naming parameters (default: true)
	Delimiter rune     // Field delimiter (default: ',')
	SkipRows  int      // Number of rows to skip at start
	Columns   []string // Parameter names to keep (optional, requires a header)
}

// DefaultCSVOptions returns default options for trace CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads chains from a trace CSV file with one column per parameter.
func LoadCSV(filename string, opts *CSVOptions) ([]*Chain, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads chains from an io.Reader. Each column becomes one
// chain, named from the header row when present or "param_<i>" otherwise.
// Trace files must be rectangular; a blank or non-numeric cell is an error,
// not a skipped draw.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) ([]*Chain, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var names []string
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		names = make([]string, len(header))
		for i, h := range header {
			names[i] = strings.TrimSpace(strings.Trim(h, "\""))
		}
	}

	var columns [][]float64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if columns == nil {
			columns = make([][]float64, len(record))
		}
		for i, cell := range record {
			cell = strings.TrimSpace(strings.Trim(cell, "\""))
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %q is not a number: %w",
					row, i, cell, ErrInvalidArgument)
			}
			columns[i] = append(columns[i], v)
		}
		row++
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("no draws found in trace: %w", ErrInvalidArgument)
	}

	chains := make([]*Chain, 0, len(columns))
	for i, col := range columns {
		name := fmt.Sprintf("param_%d", i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		if len(opts.Columns) > 0 && !containsName(opts.Columns, name) {
			continue
		}
		chains = append(chains, Named(name, col))
	}
	if len(chains) == 0 {
		return nil, fmt.Errorf("no requested columns found in trace: %w", ErrInvalidArgument)
	}
	return chains, nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// SaveCSV saves chains to a trace CSV file, one column per parameter.
func SaveCSV(filename string, chains ...*Chain) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, chains...)
}

// WriteCSV writes chains to w as a trace CSV with a header row of parameter
// names. All chains must share the same length.
func WriteCSV(w io.Writer, chains ...*Chain) error {
	if len(chains) == 0 {
		return fmt.Errorf("no chains to write: %w", ErrInvalidArgument)
	}
	n := chains[0].Len()
	header := make([]string, len(chains))
	for i, c := range chains {
		if c.Len() != n {
			return fmt.Errorf("chain %d has %d draws, want %d: %w", i, c.Len(), n, ErrInvalidArgument)
		}
		header[i] = c.Name
		if header[i] == "" {
			header[i] = fmt.Sprintf("param_%d", i)
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	record := make([]string, len(chains))
	for t := 0; t < n; t++ {
		for i, c := range chains {
			record[i] = strconv.FormatFloat(c.Values[t], 'f', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
