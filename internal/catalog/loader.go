package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/junhyuk/worddrill/internal/logger"
	"github.com/junhyuk/worddrill/internal/models"
)

// Load reads the catalog file once. The format is chosen by extension:
// .xlsx files go through excelize, everything else is parsed as CSV.
// Any failure here is fatal for the session.
func Load(path string) (*Catalog, error) {
	log := logger.Default().WithPrefix("catalog")
	log.Info("loading catalog: %s", path)

	var (
		entries []models.WordEntry
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		entries, err = loadXLSX(path)
	default:
		entries, err = loadCSV(path)
	}
	if err != nil {
		log.Error("failed to load catalog: %v", err)
		return nil, err
	}

	log.Info("catalog loaded: %d entries", len(entries))
	return New(entries), nil
}

func loadCSV(path string) ([]models.WordEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse catalog csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}

	meaningCol, wordCol, err := headerColumns(records[0])
	if err != nil {
		return nil, err
	}

	entries := make([]models.WordEntry, 0, len(records)-1)
	for i, row := range records[1:] {
		if meaningCol >= len(row) || wordCol >= len(row) {
			return nil, fmt.Errorf("catalog row %d: missing columns", i+2)
		}
		entries = append(entries, models.WordEntry{
			Meaning: row[meaningCol],
			Word:    row[wordCol],
		})
	}
	return entries, nil
}

func loadXLSX(path string) ([]models.WordEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalog %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read catalog sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}

	meaningCol, wordCol, err := headerColumns(rows[0])
	if err != nil {
		return nil, err
	}

	entries := make([]models.WordEntry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		// excelize drops trailing empty cells, so short rows are real.
		if meaningCol >= len(row) || wordCol >= len(row) {
			return nil, fmt.Errorf("catalog row %d: missing columns", i+2)
		}
		entries = append(entries, models.WordEntry{
			Meaning: row[meaningCol],
			Word:    row[wordCol],
		})
	}
	return entries, nil
}

// headerColumns locates the meaning and word columns by header name,
// case-insensitively, so column order in the file does not matter.
func headerColumns(header []string) (meaning, word int, err error) {
	meaning, word = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "meaning":
			meaning = i
		case "word":
			word = i
		}
	}
	if meaning < 0 || word < 0 {
		return 0, 0, fmt.Errorf("catalog header must contain 'meaning' and 'word' columns, got %v", header)
	}
	return meaning, word, nil
}
