// internal/buffer/render.go
package buffer

import (
	"strings"

	"github.com/bethropolis/kite/internal/types"
	"github.com/bethropolis/kite/internal/utils"
)

// Cell is one character as it appears on screen.
type Cell struct {
	Text  string // Display text: tabs expanded to spaces, controls replaced
	Col   int    // Display column where the cell starts
	Width int    // Display columns covered
	Tag   types.Tag
}

// RenderedRow is a row ready for painting.
type RenderedRow struct {
	Line  int
	Text  string
	Cells []Cell
}

// VisibleRows renders rows [rowOffset, rowOffset+height) clipped to the
// document. Horizontal clipping is left to the caller, which works in
// display columns using Cell.Col.
func (d *Document) VisibleRows(rowOffset, height, tabWidth int) []RenderedRow {
	if rowOffset < 0 {
		rowOffset = 0
	}
	end := min(rowOffset+height, len(d.rows))
	if rowOffset >= end {
		return nil
	}

	out := make([]RenderedRow, 0, end-rowOffset)
	for i := rowOffset; i < end; i++ {
		r := d.rows[i]
		chars, tags := r.Chars(), r.Tags()
		cells := make([]Cell, len(chars))
		col := 0
		for j, ch := range chars {
			w := utils.CharWidth(ch, col, tabWidth)
			cells[j] = Cell{
				Text:  cellText(ch, w),
				Col:   col,
				Width: w,
				Tag:   tags[j],
			}
			col += w
		}
		out = append(out, RenderedRow{
			Line:  i,
			Text:  utils.Render(chars, 0, len(chars), tabWidth),
			Cells: cells,
		})
	}
	return out
}

func cellText(ch string, width int) string {
	switch {
	case ch == "\t":
		return strings.Repeat(" ", width)
	case utils.IsControl(ch):
		return utils.ControlPlaceholder
	default:
		return ch
	}
}
