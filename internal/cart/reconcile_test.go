package cart

import (
	"math"
	"testing"

	"bookshop-be/internal/book"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() map[uint]*book.Book {
	cover := "go.jpg"
	return map[uint]*book.Book{
		1: {ID: 1, Title: "Go", Cover: &cover, Price: decimal.NewFromInt(75000), Weight: 300, Stock: 3},
		2: {ID: 2, Title: "Rust", Price: decimal.NewFromInt(90000), Weight: 500, Stock: 10},
		3: {ID: 3, Title: "Zig", Price: decimal.NewFromInt(50000), Weight: 200, Stock: 0},
	}
}

func TestReconcile_OutOfStock(t *testing.T) {
	items := Reconcile(Lines{{ID: 1, Quantity: 5}}, catalog())

	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, 3, *items[0].Quantity)
	assert.Equal(t, NoteOutOfStock, items[0].Note)
}

func TestReconcile_NegativeStockReadsAsEmpty(t *testing.T) {
	books := map[uint]*book.Book{4: {ID: 4, Title: "C", Stock: -2}}

	items := Reconcile(Lines{{ID: 4, Quantity: 1}}, books)

	require.Len(t, items, 1)
	assert.Equal(t, 0, *items[0].Quantity)
	assert.Equal(t, NoteOutOfStock, items[0].Note)
}

func TestReconcile_NotFound(t *testing.T) {
	items := Reconcile(Lines{{ID: 99, Quantity: 1}}, catalog())

	require.Len(t, items, 1)
	assert.Equal(t, Item{ID: 99, Note: NoteNotFound}, items[0])
}

func TestReconcile_Properties(t *testing.T) {
	lines := Lines{
		{ID: 2, Quantity: 4},
		{ID: 99, Quantity: 1},
		{ID: 1, Quantity: 3},
		{ID: 3, Quantity: 1},
		{ID: 1, Quantity: 7},
		{ID: 2, Quantity: 0},
	}
	books := catalog()

	items := Reconcile(lines, books)

	require.Len(t, items, len(lines))
	for i, line := range lines {
		assert.Equal(t, line.ID, items[i].ID, "order preserved at %d", i)

		b, ok := books[line.ID]
		if !ok {
			assert.Equal(t, NoteNotFound, items[i].Note)
			assert.Nil(t, items[i].Quantity)
			continue
		}

		if line.Quantity <= b.Stock {
			assert.Equal(t, NoteSafe, items[i].Note, "line %d", i)
			assert.Equal(t, line.Quantity, *items[i].Quantity)
		} else {
			assert.Equal(t, NoteOutOfStock, items[i].Note, "line %d", i)
			assert.Equal(t, b.Stock, *items[i].Quantity)
		}
		assert.Equal(t, b.Title, *items[i].Title)
		assert.True(t, b.Price.Equal(*items[i].Price))
	}
}

func TestReconcile_Empty(t *testing.T) {
	items := Reconcile(nil, catalog())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestTotalWeight(t *testing.T) {
	lines := Lines{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 1}, {ID: 99, Quantity: 4}}
	weight, err := TotalWeight(lines, catalog())
	require.NoError(t, err)
	assert.Equal(t, 300*2+500, weight)

	weight, err = TotalWeight(Lines{{ID: 99, Quantity: 4}}, catalog())
	require.NoError(t, err)
	assert.Zero(t, weight)
}

func TestTotalWeight_Overflow(t *testing.T) {
	heavy := map[uint]*book.Book{
		1: {ID: 1, Title: "Atlas", Weight: math.MaxInt / 2, Stock: 1},
	}

	_, err := TotalWeight(Lines{{ID: 1, Quantity: 3}}, heavy)
	assert.ErrorIs(t, err, ErrCartTooHeavy)

	_, err = TotalWeight(Lines{{ID: 1, Quantity: 1}, {ID: 1, Quantity: 1}, {ID: 1, Quantity: 1}}, heavy)
	assert.ErrorIs(t, err, ErrCartTooHeavy)

	weight, err := TotalWeight(Lines{{ID: 1, Quantity: 2}}, heavy)
	require.NoError(t, err)
	assert.Positive(t, weight)
}

func TestTotalWeight_MaxLineQuantityFits(t *testing.T) {
	weight, err := TotalWeight(Lines{{ID: 2, Quantity: MaxLineQuantity}}, catalog())
	require.NoError(t, err)
	assert.Equal(t, 500*MaxLineQuantity, weight)
}
