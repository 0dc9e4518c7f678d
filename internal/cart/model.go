package cart

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type Note string

const (
	NoteSafe       Note = "safe"
	NoteOutOfStock Note = "out of stock"
	NoteUnsafe     Note = "unsafe"
	NoteNotFound   Note = "not found"
)

// MaxLineQuantity bounds a single cart line.
const MaxLineQuantity = 10000

// Line is one requested cart entry.
type Line struct {
	ID       uint `json:"id" binding:"required,gt=0"`
	Quantity int  `json:"quantity" binding:"gte=0,max=10000"`
}

// Lines accepts either a JSON array or a JSON string holding the array.
type Lines []Line

func (l *Lines) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCart, err)
		}
		data = []byte(encoded)
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCart, err)
	}
	*l = lines
	return nil
}

func (l Lines) IDs() []uint {
	ids := make([]uint, len(l))
	for i, line := range l {
		ids[i] = line.ID
	}
	return ids
}

// Item is an annotated cart line. Only ID and Note are set when the book does not exist.
type Item struct {
	ID       uint             `json:"id"`
	Title    *string          `json:"title,omitempty"`
	Cover    *string          `json:"cover,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Weight   *int             `json:"weight,omitempty"`
	Quantity *int             `json:"quantity,omitempty"`
	Note     Note             `json:"note"`
}
