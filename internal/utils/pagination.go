package utils

const (
	DefaultPerPage = 6
	MaxPerPage     = 100
	MaxPage        = 1_000_000
)

type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// Paginate normalizes page/perPage and returns the offset to query with.
// Pages past MaxPage are clamped so the offset cannot overflow.
func Paginate(page, perPage int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage, (page - 1) * perPage
}

func NewPage[T any](items []T, page, perPage int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	lastPage := 1
	if total > 0 && perPage > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return Page[T]{
		Items:    items,
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: lastPage,
	}
}
