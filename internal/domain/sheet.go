package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sheet is one tab of the booking spreadsheet.
// Position orders sheets; the lowest position is the "first" sheet.
type Sheet struct {
	ID        uuid.UUID
	Name      string
	Position  int
	CreatedAt time.Time
}

// SheetRow is a single appended row. Cells are stored verbatim.
type SheetRow struct {
	ID        uuid.UUID
	SheetName string
	Cells     []string
	CreatedAt time.Time
}
