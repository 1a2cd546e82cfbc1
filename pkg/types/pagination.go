package types

// PageRequest - номер страницы (с 1) и размер страницы.
type PageRequest struct {
	Page uint64
	Size uint64
}

func (p PageRequest) Offset() uint64 {
	return (p.Page - 1) * p.Size
}

// TotalPages = ceil(total / size), без переполнения при огромном size.
func (p PageRequest) TotalPages(total uint64) uint64 {
	if p.Size == 0 {
		return 0
	}
	pages := total / p.Size
	if total%p.Size != 0 {
		pages++
	}
	return pages
}
