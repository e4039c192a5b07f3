package spreadsheet

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadRows parses uploaded workbook bytes and returns the rows of the first
// sheet as string slices, header row included.
func ReadRows(data []byte) ([][]string, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "spreadsheet: open workbook")
	}

	if len(f.Sheets) == 0 {
		return nil, eris.New("spreadsheet: workbook has no sheets")
	}
	sheet := f.Sheets[0]

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		rows = append(rows, rowToStrings(row))
	}

	return rows, nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
