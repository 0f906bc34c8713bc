// Package handler holds the query parsing shared by the HTTP handlers.
package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	apperrors "github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/errors"
)

// QueryInt reads an optional integer query parameter. Absent or empty
// values give nil; anything else that is not an integer is a validation
// error.
func QueryInt(c *gin.Context, key string) (*int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s must be an integer", key), err)
	}
	return &v, nil
}

// RequiredQueryInt is QueryInt for parameters the endpoint cannot do without.
func RequiredQueryInt(c *gin.Context, key string) (int, error) {
	v, err := QueryInt(c, key)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, apperrors.Validation(fmt.Sprintf("%s is required", key), nil)
	}
	return *v, nil
}

// PageLimits are the page size defaults applied to list endpoints.
type PageLimits struct {
	Default int
	Max     int
}

// QueryPagination reads start and limit. start defaults to 0, limit to
// limits.Default; limit is capped at limits.Max.
func QueryPagination(c *gin.Context, limits PageLimits) (model.Pagination, error) {
	page := model.Pagination{Start: 0, Limit: limits.Default}

	start, err := QueryInt(c, "start")
	if err != nil {
		return page, err
	}
	if start != nil {
		if *start < 0 {
			return page, apperrors.Validation("start must not be negative", nil)
		}
		page.Start = *start
	}

	limit, err := QueryInt(c, "limit")
	if err != nil {
		return page, err
	}
	if limit != nil {
		if *limit < 1 {
			return page, apperrors.Validation("limit must be at least 1", nil)
		}
		page.Limit = *limit
	}

	if limits.Max > 0 && page.Limit > limits.Max {
		page.Limit = limits.Max
	}
	return page, nil
}
