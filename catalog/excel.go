package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// LoadExcel reads one category per sheet. Columns are A=ja, B=en, C=level; a
// first row whose level cell is not a number is treated as a header.
func LoadExcel(fs afero.Fs, p string) (Catalog, error) {
	var c Catalog
	handle, err := fs.Open(p)
	if err != nil {
		return c, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer handle.Close()

	f, err := excelize.OpenReader(handle)
	if err != nil {
		return c, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return c, fmt.Errorf("failed to get rows of %s: %w", sheet, err)
		}
		cat := Category{Name: strings.TrimSpace(sheet)}
		for i, row := range rows {
			w, ok, err := parseRow(row)
			if err != nil {
				if i == 0 {
					continue
				}
				return c, fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
			}
			if !ok {
				continue
			}
			cat.Words = append(cat.Words, w)
		}
		if len(cat.Words) == 0 {
			continue
		}
		c.Categories = append(c.Categories, cat)
	}
	return c, c.Validate()
}

// parseRow turns ja/en/level cells into a word. Blank rows report ok=false.
func parseRow(cells []string) (Word, bool, error) {
	var w Word
	for len(cells) < 3 {
		cells = append(cells, "")
	}
	ja := strings.TrimSpace(cells[0])
	en := strings.TrimSpace(cells[1])
	lv := strings.TrimSpace(cells[2])
	if ja == "" && en == "" && lv == "" {
		return w, false, nil
	}
	level, err := strconv.Atoi(lv)
	if err != nil {
		return w, false, fmt.Errorf("%w: level '%s'", ErrInvalidWord, lv)
	}
	return Word{Prompt: ja, Target: en, Level: level}, true, nil
}
