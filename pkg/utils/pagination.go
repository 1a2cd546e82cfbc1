package utils

import (
	"math"
	"net/url"
	"strconv"

	"rental-system/pkg/types"
)

const (
	DefaultPage = 1
	DefaultSize = 10
)

// ParsePageParams читает page и size. Отсутствующие или нечисловые значения
// заменяются на значения по умолчанию. maxSize == 0 - без ограничения.
func ParsePageParams(values url.Values, defaultSize, maxSize uint64) types.PageRequest {
	if defaultSize == 0 {
		defaultSize = DefaultSize
	}
	req := types.PageRequest{Page: DefaultPage, Size: defaultSize}

	if p, err := strconv.ParseUint(values.Get("page"), 10, 64); err == nil && p > 0 {
		req.Page = p
	}
	if s, err := strconv.ParseUint(values.Get("size"), 10, 64); err == nil && s > 0 {
		req.Size = s
	}
	if maxSize > 0 && req.Size > maxSize {
		req.Size = maxSize
	}

	// LIMIT и OFFSET в Postgres - bigint, (page-1)*size не должен переполниться
	if req.Size > math.MaxInt64 {
		req.Size = math.MaxInt64
	}
	if maxPage := math.MaxInt64/req.Size + 1; req.Page > maxPage {
		req.Page = maxPage
	}
	return req
}
