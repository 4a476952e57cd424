package importers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WordRow is a single vocabulary entry read from an import file.
type WordRow struct {
	Line             int
	Word             string
	Definition       string
	PhoneticSpelling string
	Sentence         string
	Level            int
	Category         string
	SubCategory      string
}

var columnAliases = map[string]string{
	"word":              "word",
	"wordname":          "word",
	"definition":        "definition",
	"phonetic":          "phonetic",
	"phoneticspelling":  "phonetic",
	"pronunciation":     "phonetic",
	"sentence":          "sentence",
	"example":           "sentence",
	"level":             "level",
	"category":          "category",
	"categoryname":      "category",
	"subcategory":       "subcategory",
	"subcategoryname":   "subcategory",
	"sub category":      "subcategory",
	"sub-category":      "subcategory",
	"phonetic spelling": "phonetic",
}

// ParseWordsFile reads rows from a .csv or .xlsx file. sheet selects the
// worksheet of a workbook; empty means the first one.
func ParseWordsFile(path, sheet string) ([]WordRow, []string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer f.Close()
		return ParseWordsCSV(f)
	case ".xlsx", ".xlsm":
		return ParseWordsXLSX(path, sheet)
	default:
		return nil, nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// ParseWordsCSV parses a CSV export. Returns the parsed rows, per-line
// problems, and a fatal error if the header cannot be read.
func ParseWordsCSV(r io.Reader) ([]WordRow, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records [][]string
	var problems []string
	lineNum := 1
	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			problems = append(problems, fmt.Sprintf("Line %d: %v", lineNum, err))
			records = append(records, nil)
			continue
		}
		records = append(records, record)
	}

	rows, rowProblems, err := parseRecords(header, records)
	if err != nil {
		return nil, nil, err
	}
	return rows, append(problems, rowProblems...), nil
}

// ParseWordsXLSX parses a worksheet of an Excel workbook.
func ParseWordsXLSX(path, sheet string) ([]WordRow, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	return parseRecords(all[0], all[1:])
}

// parseRecords maps data records onto WordRows using the header. Nil
// records stand for lines that could not be read and are skipped.
func parseRecords(header []string, records [][]string) ([]WordRow, []string, error) {
	headerIndex := make(map[string]int)
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if column, ok := columnAliases[key]; ok {
			if _, seen := headerIndex[column]; !seen {
				headerIndex[column] = i
			}
		}
	}
	if _, ok := headerIndex["word"]; !ok {
		return nil, nil, fmt.Errorf("missing required header: word")
	}

	var rows []WordRow
	var problems []string
	for i, record := range records {
		lineNum := i + 2
		if record == nil {
			continue
		}

		row := WordRow{
			Line:             lineNum,
			Word:             cellValue(record, headerIndex, "word"),
			Definition:       cellValue(record, headerIndex, "definition"),
			PhoneticSpelling: cellValue(record, headerIndex, "phonetic"),
			Sentence:         cellValue(record, headerIndex, "sentence"),
			Category:         cellValue(record, headerIndex, "category"),
			SubCategory:      cellValue(record, headerIndex, "subcategory"),
		}

		if row.Word == "" {
			if !blank(record) {
				problems = append(problems, fmt.Sprintf("Line %d: skipped - missing word", lineNum))
			}
			continue
		}

		if level := cellValue(record, headerIndex, "level"); level != "" {
			n, err := strconv.Atoi(level)
			if err != nil || n < 0 {
				problems = append(problems, fmt.Sprintf("Line %d: skipped - invalid level %q", lineNum, level))
				continue
			}
			row.Level = n
		}

		rows = append(rows, row)
	}

	return rows, problems, nil
}

func cellValue(record []string, headerIndex map[string]int, column string) string {
	if idx, ok := headerIndex[column]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
