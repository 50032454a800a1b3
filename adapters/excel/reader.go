package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"orchidbreed/domain/core"
	"orchidbreed/domain/specimen"
)

// column aliases accepted in the header row
var columnAliases = map[string]string{
	"id":                "id",
	"specimen_id":       "id",
	"genus":             "genus",
	"species":           "species",
	"name":              "name",
	"notes":             "notes",
	"cultivation_notes": "notes",
}

// SpecimenReader reads specimen sheets from Excel or CSV files
type SpecimenReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewSpecimenReader creates a reader; the file type follows the extension
func NewSpecimenReader(filePath string) *SpecimenReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &SpecimenReader{filePath: filePath, fileType: fileType}
}

// ReadSpecimens parses every data row into a SpecimenRef. Rows without a genus are
// skipped; rows without an id get a generated one.
func (r *SpecimenReader) ReadSpecimens() ([]specimen.SpecimenRef, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	start := time.Now()
	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[SpecimenReader] %s read in %.2fms (%d rows)", r.filePath, float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	return ParseSpecimenRows(rows)
}

func (r *SpecimenReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheets[0], err)
	}
	return rows, nil
}

func (r *SpecimenReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// ParseSpecimenRows converts a header row plus data rows into specimens
func ParseSpecimenRows(rows [][]string) ([]specimen.SpecimenRef, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("specimen sheet must have a header row and at least one data row")
	}

	columns := make(map[string]int)
	for i, header := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		if field, ok := columnAliases[key]; ok {
			if _, dup := columns[field]; !dup {
				columns[field] = i
			}
		}
	}
	if _, ok := columns["genus"]; !ok {
		return nil, fmt.Errorf("specimen sheet is missing a genus column")
	}

	cell := func(row []string, field string) string {
		i, ok := columns[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	seen := make(map[core.SpecimenID]bool)
	out := make([]specimen.SpecimenRef, 0, len(rows)-1)
	for n, row := range rows[1:] {
		genus := cell(row, "genus")
		if genus == "" {
			log.Printf("[SpecimenReader] Skipping row %d: no genus", n+2)
			continue
		}

		id := core.SpecimenID(cell(row, "id"))
		if id == "" {
			id = core.SpecimenID(core.NewID())
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate specimen id %s on row %d", id, n+2)
		}
		seen[id] = true

		out = append(out, specimen.SpecimenRef{
			ID:      id,
			Name:    cell(row, "name"),
			Genus:   genus,
			Species: cell(row, "species"),
			Notes:   cell(row, "notes"),
		})
	}
	return out, nil
}
