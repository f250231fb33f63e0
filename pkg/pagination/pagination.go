// Package pagination 提供集合分页的参数归一化与分页信封构造
// 信封结构: items + pagination 元数据 + links 导航链接
package pagination

import (
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultPage    = 1   // 默认页码
	DefaultPerPage = 10  // 默认每页条数
	MaxPerPage     = 100 // 每页条数硬上限，超过时静默截断
)

// Params 归一化之后的分页参数
type Params struct {
	Page    int // 从 1 开始的页码
	PerPage int // 每页条数，1..MaxPerPage
}

// NewParams 从查询字符串解析分页参数
// 非整数按默认值处理；page < 1 视为 1；per_page < 1 取默认值，大于上限截断为上限
func NewParams(page, perPage string, defaultPerPage int) Params {
	if defaultPerPage < 1 {
		defaultPerPage = DefaultPerPage
	}
	p, err := strconv.Atoi(page)
	if err != nil {
		p = DefaultPage
	}
	pp, err := strconv.Atoi(perPage)
	if err != nil {
		pp = defaultPerPage
	}
	return Normalize(p, pp, defaultPerPage)
}

// Normalize 对整数分页参数做边界处理
func Normalize(page, perPage, defaultPerPage int) Params {
	if defaultPerPage < 1 {
		defaultPerPage = DefaultPerPage
	}
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

// Offset 查询偏移量，溢出时返回 math.MaxInt
func (p Params) Offset() int {
	if p.Page-1 > math.MaxInt/p.PerPage {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PerPage
}

// Limit 查询条数
func (p Params) Limit() int {
	return p.PerPage
}

// TotalPages 向上取整的总页数，空集合为 0
func TotalPages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Meta 分页元数据
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}

// Links 导航链接，next 在最后一页（及之后）缺省，prev 在第一页缺省
type Links struct {
	Self  string `json:"self"`
	Next  string `json:"next,omitempty"`
	Prev  string `json:"prev,omitempty"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// Page 分页信封
type Page[T any] struct {
	Items      []T   `json:"items"`
	Pagination Meta  `json:"pagination"`
	Links      Links `json:"links"`
}

// Endpoint 生成链接所需的路径和附加查询参数
// Path 已经带入路径参数，例如 /users/3/followers
type Endpoint struct {
	Path  string
	Query url.Values
}

// URL 生成指定页码的链接
func (e Endpoint) URL(page, perPage int) string {
	q := url.Values{}
	for k, vs := range e.Query {
		if k == "page" || k == "per_page" {
			continue
		}
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return e.Path + "?" + q.Encode()
}

// New 构造分页信封
// items 为 nil 时输出空数组而不是 null
func New[T any](items []T, p Params, total int64, ep Endpoint) *Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := TotalPages(total, p.PerPage)
	last := totalPages
	if last < 1 {
		last = 1
	}

	links := Links{
		Self:  ep.URL(p.Page, p.PerPage),
		First: ep.URL(1, p.PerPage),
		Last:  ep.URL(last, p.PerPage),
	}
	if p.Page < totalPages {
		links.Next = ep.URL(p.Page+1, p.PerPage)
	}
	if p.Page > 1 {
		links.Prev = ep.URL(p.Page-1, p.PerPage)
	}

	return &Page[T]{
		Items: items,
		Pagination: Meta{
			Page:       p.Page,
			PerPage:    p.PerPage,
			TotalPages: totalPages,
			TotalItems: total,
		},
		Links: links,
	}
}

// Map 把一页实体转换成另一种表示，常用于 model -> respond
func Map[S any, T any](items []S, fn func(S) T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
