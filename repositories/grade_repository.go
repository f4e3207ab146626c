package repositories

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/consulta-notas/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// GradeRepository reads the grade table
type GradeRepository interface {
	// LoadAll re-reads the whole table. A missing file yields an empty table.
	LoadAll(ctx context.Context) (models.GradeTable, error)
}

// csvGradeRepository implements GradeRepository over a delimited text file
type csvGradeRepository struct {
	path      string
	delimiter rune
	log       *zap.Logger
}

// NewGradeRepository creates a grade repository reading the table at path
func NewGradeRepository(path string, delimiter rune, log *zap.Logger) GradeRepository {
	return &csvGradeRepository{path: path, delimiter: delimiter, log: log}
}

// LoadAll reads and parses the table file. Rows without a codigo are skipped,
// later duplicates replace earlier ones.
func (r *csvGradeRepository) LoadAll(ctx context.Context) (models.GradeTable, error) {
	table := models.GradeTable{}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return table, nil
		}
		return nil, fmt.Errorf("failed to open grade table: %w", err)
	}
	defer f.Close()

	reader := newCSVReader(f, r.delimiter)

	header, err := reader.Read()
	if err == io.EOF {
		return table, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read grade table header: %w", err)
	}
	columns := indexColumns(header)

	codigoIdx, ok := columns[models.ColumnCodigo]
	if !ok {
		r.log.Warn("grade table has no codigo column", zap.String("path", r.path))
		return table, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.log.Debug("skipping malformed grade row", zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("failed to read grade table: %w", err)
		}

		codigo := field(row, codigoIdx)
		if codigo == "" {
			continue
		}

		table[codigo] = models.GradeRecord{
			Codigo: codigo,
			Nombre: column(row, columns, models.ColumnNombre),
			Nota:   column(row, columns, models.ColumnNota),
		}
	}

	return table, nil
}

// newCSVReader returns a lenient reader: rows may have any number of fields
// and a leading UTF-8 byte order mark is dropped.
func newCSVReader(r io.Reader, delimiter rune) *csv.Reader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// indexColumns maps lower-cased, trimmed header names to their position.
// The first occurrence of a name wins.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

// column returns the trimmed value of the named column, or "" when the table
// has no such column or the row is short.
func column(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok {
		return ""
	}
	return field(row, idx)
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
