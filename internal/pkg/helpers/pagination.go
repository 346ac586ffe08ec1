package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/videobelajar/backend/internal/app/models/dto"
)

const MaxPageLimit = 100

// ParseLimitOffset extracts optional limit/offset query parameters. A missing
// or invalid parameter yields nil, meaning the full result set is returned.
func ParseLimitOffset(c *gin.Context) (limit, offset *int) {
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			if v > MaxPageLimit {
				v = MaxPageLimit
			}
			limit = &v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = &v
		}
	}
	return limit, offset
}

// NewPagination builds the pagination block for list responses. count is the
// number of items in the returned page, total the full matching count.
func NewPagination(total int64, count int, limit, offset *int) dto.Pagination {
	return dto.Pagination{
		Total:  total,
		Count:  count,
		Limit:  limit,
		Offset: offset,
	}
}
