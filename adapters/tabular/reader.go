package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"predmaint/domain/frame"
	"predmaint/internal/errors"
	"predmaint/ports"

	"github.com/xuri/excelize/v2"
)

// Reader loads CSV and Excel datasets into a frame
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

var _ ports.DatasetReader = (*Reader)(nil)

// NewReader creates a reader for the given path. Files with an .xlsx
// extension are read through excelize, everything else as CSV.
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Path returns the configured source path
func (r *Reader) Path() string {
	return r.filePath
}

// ReadFrame reads the dataset into a frame, first row as column names
func (r *Reader) ReadFrame() (*frame.Frame, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return nil, errors.DataLoadError(r.filePath, err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, errors.DataLoadError(r.filePath, err)
	}

	if len(rows) < 2 {
		return nil, errors.DataLoadError(r.filePath,
			fmt.Errorf("dataset must have a header row and at least one data row"))
	}

	f, err := frame.FromRecords(rows[0], rows[1:])
	if err != nil {
		return nil, errors.DataLoadError(r.filePath, err)
	}
	log.Printf("[Reader] %s read: %d rows, %d columns", r.fileType, f.NumRows(), f.NumCols())
	return f, nil
}

// readCSVRows reads all records from a CSV file
func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	// encoding/csv rejects rows whose field count differs from the first
	// row, which covers the malformed-input contract
	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// readExcelRows reads Sheet1 from an Excel workbook
func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}

	// excelize trims trailing empty cells; pad rows back to header width
	if len(rows) > 0 {
		width := len(rows[0])
		for i, row := range rows {
			for len(row) < width {
				row = append(row, "")
			}
			rows[i] = row
		}
	}
	return rows, nil
}
