package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/tourdesk/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestNewPaginationParams(t *testing.T) {
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, domain.NewPaginationParams(nil, nil))
	assert.Equal(t, domain.PaginationParams{Page: 3, Limit: 5}, domain.NewPaginationParams(intPtr(3), intPtr(5)))
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 100}, domain.NewPaginationParams(intPtr(0), intPtr(500)))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, domain.Paginate(items, domain.PaginationParams{Page: 1, Limit: 2}))
	assert.Equal(t, []int{5}, domain.Paginate(items, domain.PaginationParams{Page: 3, Limit: 2}))
	assert.Equal(t, []int{}, domain.Paginate(items, domain.PaginationParams{Page: 4, Limit: 2}))
}

func TestPaginate_HugePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	for _, page := range []int{461168601842738792, math.MaxInt} {
		p := domain.NewPaginationParams(intPtr(page), nil)
		assert.Equal(t, []int{}, domain.Paginate(items, p))
	}
	assert.Equal(t, []int{}, domain.Paginate(items, domain.PaginationParams{Page: math.MaxInt, Limit: 100}))
	assert.Equal(t, []int{}, domain.Paginate([]int{}, domain.PaginationParams{Page: 1, Limit: 20}))
}
