package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

/*
ReadCSV reads a table from a CSV stream. The first record is taken as
the column names; every following record is parsed cell by cell with
ParseCell. It returns an error if a record has the wrong number of
cells or the stream cannot be read.
*/
func ReadCSV(reader io.Reader) (*Table, error) {
	r := newReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}
	t := New(names)
	if err := readBody(r, t, 2); err != nil {
		return nil, err
	}
	return t, nil
}

/*
ReadSamplesCSV reads a headerless table of sample rows from a CSV
stream. The first record fixes the column count; columns are unnamed.
*/
func ReadSamplesCSV(reader io.Reader) (*Table, error) {
	r := newReader(reader)
	first, err := r.Read()
	if err == io.EOF {
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading line 1: %v", err)
	}
	t := New(make([]string, len(first)))
	if err := t.AppendRow(parseRecord(first)); err != nil {
		return nil, fmt.Errorf("line 1: %v", err)
	}
	if err := readBody(r, t, 2); err != nil {
		return nil, err
	}
	return t, nil
}

/*
ReadCSVFromFilePath opens the file at the given path and reads a
table from it with ReadCSV. An empty path or "-" reads from stdin.
*/
func ReadCSVFromFilePath(filepath string) (*Table, error) {
	f, name, err := openInput(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV file %s: %v", name, err)
	}
	return t, nil
}

/*
ReadSamplesCSVFromFilePath opens the file at the given path and reads
a headerless samples table from it with ReadSamplesCSV. An empty path
or "-" reads from stdin.
*/
func ReadSamplesCSVFromFilePath(filepath string) (*Table, error) {
	f, name, err := openInput(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadSamplesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV file %s: %v", name, err)
	}
	return t, nil
}

func openInput(filepath string) (*os.File, string, error) {
	if filepath == "" || filepath == "-" {
		return os.Stdin, "<stdin>", nil
	}
	f, err := os.Open(filepath)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %v", filepath, err)
	}
	return f, filepath, nil
}

func newReader(reader io.Reader) *csv.Reader {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r
}

func readBody(r *csv.Reader, t *Table, line int) error {
	for ; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading line %d: %v", line, err)
		}
		if err := t.AppendRow(parseRecord(record)); err != nil {
			return fmt.Errorf("line %d: %v", line, err)
		}
	}
}

func parseRecord(record []string) []Cell {
	cells := make([]Cell, len(record))
	for i, field := range record {
		cells[i] = ParseCell(strings.TrimSpace(field))
	}
	return cells
}
