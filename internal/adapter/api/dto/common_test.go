package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valores válidos", 2, 20, 2, 20},
		{"página negativa volta para a primeira", -1, 20, 1, 20},
		{"tamanho zero usa o padrão", 1, 0, 1, 10},
		{"tamanho acima do limite é truncado", 1, 500, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GetPagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 30, Pagination{Page: 4, PageSize: 10}.Offset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 1, calculateTotalPages(0, 10))
	assert.Equal(t, 1, calculateTotalPages(10, 10))
	assert.Equal(t, 2, calculateTotalPages(11, 10))
	assert.Equal(t, 0, calculateTotalPages(10, 0))
}
