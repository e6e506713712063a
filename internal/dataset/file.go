package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

// FileSource reads a dataset kept on local disk, either a JSON export or an
// .xlsx workbook downloaded from the sheet.
type FileSource struct {
	path  string
	sheet string
}

// NewFileSource returns a source for path. sheet picks the worksheet of an
// .xlsx workbook; empty means the first one.
func NewFileSource(path, sheet string) *FileSource {
	return &FileSource{path: path, sheet: sheet}
}

func (fs *FileSource) Fetch(ctx context.Context) ([]reading.Record, error) {
	switch strings.ToLower(filepath.Ext(fs.path)) {
	case ".xlsx", ".xlsm":
		return fs.fetchWorkbook()
	default:
		data, err := os.ReadFile(fs.path)
		if err != nil {
			return nil, fmt.Errorf("read dataset file: %w", err)
		}
		return Decode(data)
	}
}

func (fs *FileSource) fetchWorkbook() ([]reading.Record, error) {
	f, err := excelize.OpenFile(fs.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Str("path", fs.path).Msg("failed to close workbook")
		}
	}()

	sheet := fs.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", fs.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return FromRows(stringRows(rows)), nil
}
