package cart

import (
	"math"

	"bookshop-be/internal/book"
)

// Reconcile annotates each line against the stock in books, keeping input order.
func Reconcile(lines Lines, books map[uint]*book.Book) []Item {
	items := make([]Item, 0, len(lines))

	for _, line := range lines {
		b, ok := books[line.ID]
		if !ok {
			items = append(items, Item{ID: line.ID, Note: NoteNotFound})
			continue
		}

		stock := max(b.Stock, 0)
		available := min(line.Quantity, stock)

		var note Note
		switch {
		case available == line.Quantity:
			note = NoteSafe
		case available == stock:
			note = NoteOutOfStock
		default:
			note = NoteUnsafe
		}

		title := b.Title
		price := b.Price
		weight := b.Weight
		items = append(items, Item{
			ID:       b.ID,
			Title:    &title,
			Cover:    b.Cover,
			Price:    &price,
			Weight:   &weight,
			Quantity: &available,
			Note:     note,
		})
	}

	return items
}

// TotalWeight sums weight × requested quantity in grams. Unknown books weigh nothing.
// A sum that would not fit in an int yields ErrCartTooHeavy.
func TotalWeight(lines Lines, books map[uint]*book.Book) (int, error) {
	total := 0
	for _, line := range lines {
		b, ok := books[line.ID]
		if !ok || b.Weight <= 0 || line.Quantity <= 0 {
			continue
		}
		if b.Weight > (math.MaxInt-total)/line.Quantity {
			return 0, ErrCartTooHeavy
		}
		total += b.Weight * line.Quantity
	}
	return total, nil
}
