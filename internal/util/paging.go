package util

import (
	"errors"
	"math"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
)

// Paging 1-based 分頁, PageSize 固定為 constants.DefaultPagingSize
type Paging struct {
	Page     int
	PageSize int
}

// NewPaging 由 query string 的 page 建立分頁, 非數字或小於 1 時視為第 1 頁
//
// 超出 int32 OFFSET 範圍的頁數會被限制在最後一個合法頁, 查詢結果為空頁
func NewPaging(rawPage string) Paging {
	size := constants.DefaultPagingSize
	maxPage := maxPageFor(size)

	page, err := strconv.Atoi(rawPage)
	switch {
	case errors.Is(err, strconv.ErrRange) && page > 0:
		page = maxPage
	case err != nil || page < 1:
		page = constants.DefaultPaging
	case page > maxPage:
		page = maxPage
	}
	return Paging{
		Page:     page,
		PageSize: size,
	}
}

func maxPageFor(size int) int {
	return math.MaxInt32/size + 1
}

// Offset 超出 int32 時回傳 math.MaxInt32
func (p Paging) Offset() int32 {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	offset := (int64(p.Page) - 1) * int64(p.PageSize)
	if offset > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(offset)
}

func (p Paging) Limit() int32 {
	return int32(p.PageSize)
}
