package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging membaca ?page= & ?limit= (alias ?per_page=) dan normalisasi.
// Invalid or missing values fall back to page 1 and defaultLimit; limit is capped at MaxLimit
// and page is capped so the offset stays representable.
func ResolvePaging(c *fiber.Ctx, defaultLimit int) Paging {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}

	page, err := strconv.Atoi(strings.TrimSpace(c.Query("page")))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := strings.TrimSpace(c.Query("limit"))
	if limitStr == "" {
		limitStr = strings.TrimSpace(c.Query("per_page"))
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	// keep (page-1)*limit from overflowing into a negative offset
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}

	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Pagination builds the response block for this page.
func (p Paging) Pagination(total int64) Pagination {
	return BuildPaginationFromPage(total, p.Page, p.Limit)
}

// QueryFilter returns the trimmed query value, treating "All" (any case) as no filter.
func QueryFilter(c *fiber.Ctx, key string) string {
	v := strings.TrimSpace(c.Query(key))
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

// LikePattern builds a lower-cased, escaped %term% pattern for `LOWER(col) LIKE ? ESCAPE '\'`.
func LikePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}
