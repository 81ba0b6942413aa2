// Package tabular provides the small CSV table model used by the
// reconciliation pass: probing candidate files for their shape, loading a
// table into memory, and writing rows back out under a fixed column list.
package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"

	pkgerrors "github.com/jbmln/partsmerge/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is a fully loaded CSV file with rows keyed by header name.
type Table struct {
	Path    string
	Columns []string
	Rows    []map[string]string
}

// Info describes a CSV candidate's shape without loading its rows.
type Info struct {
	Path    string
	Size    int64
	Columns int
	Rows    int // data rows, header excluded
}

// Read loads a CSV file into a Table. Short records are padded with empty
// strings so every row exposes every column.
func Read(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.WrapIO("read", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	columns, err := r.Read()
	if err != nil {
		return nil, pkgerrors.WrapParse("csv", path, err)
	}

	var rows []map[string]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pkgerrors.WrapParse("csv", path, err)
		}
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Path: path, Columns: columns, Rows: rows}, nil
}

// Probe reads only the header record for the column count and counts
// physical lines for the row count (lines minus header). This is the cheap
// shape check the CSV pair selector runs per candidate.
func Probe(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, pkgerrors.WrapIO("stat", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return Info{}, pkgerrors.WrapIO("open", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	head, _ := br.Peek(len(utf8BOM))
	if bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return Info{}, pkgerrors.WrapParse("csv", path, err)
	}

	// Count remaining physical lines. The header was already consumed by
	// the csv reader, but it may have buffered past it, so recount from
	// the start of the file.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Info{}, pkgerrors.WrapIO("seek", path, err)
	}
	lines := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines++
	}
	if err := scanner.Err(); err != nil {
		return Info{}, pkgerrors.WrapIO("read", path, err)
	}

	return Info{
		Path:    path,
		Size:    fi.Size(),
		Columns: len(header),
		Rows:    lines - 1,
	}, nil
}

// Write writes rows to path under the given column list. Missing cells are
// written as empty strings; cells outside the column list are dropped.
func Write(path string, columns []string, rows []map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.WrapIO("create", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return pkgerrors.WrapIO("write", path, err)
	}

	rec := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			rec[i] = row[col]
		}
		if err := w.Write(rec); err != nil {
			return pkgerrors.WrapIO("write", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return pkgerrors.WrapIO("write", path, err)
	}
	return f.Close()
}
