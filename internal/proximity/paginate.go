package proximity

// Page - одна страница отсортированного списка.
type Page[T any] struct {
	Items   []T
	Total   int
	HasMore bool
}

// Paginate возвращает элементы страницы page (нумерация с 1) размером limit.
// Страница за пределами списка пуста и не является ошибкой.
func Paginate[T any](items []T, page, limit int) Page[T] {
	total := len(items)
	if page < 1 || limit < 1 || page-1 > total/limit {
		return Page[T]{Items: []T{}, Total: total}
	}

	start := (page - 1) * limit
	if start >= total {
		return Page[T]{Items: []T{}, Total: total}
	}
	end := min(start+limit, total)

	return Page[T]{
		Items:   items[start:end],
		Total:   total,
		HasMore: end < total,
	}
}
