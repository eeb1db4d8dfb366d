//go:build unit

package queries_test

import (
	"testing"

	"tutorhive/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotSortFields = map[string]string{
	"start_at":   "s.start_at",
	"created_at": "s.created_at",
}

func TestPageRequestOffset(t *testing.T) {
	cases := []struct {
		name string
		req  queries.PageRequest
		want int
	}{
		{name: "first page", req: queries.PageRequest{Page: 1, Limit: 10}, want: 0},
		{name: "third page", req: queries.PageRequest{Page: 3, Limit: 20}, want: 40},
		{name: "zero page defaults to first", req: queries.PageRequest{Page: 0, Limit: 10}, want: 0},
		{name: "negative page defaults to first", req: queries.PageRequest{Page: -5, Limit: 10}, want: 0},
		{name: "zero limit defaults", req: queries.PageRequest{Page: 2, Limit: 0}, want: queries.DefaultLimit},
		{name: "limit above maximum is clamped", req: queries.PageRequest{Page: 2, Limit: 1000}, want: queries.MaxLimit},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.req.Offset())
		})
	}
}

func TestPageRequestNormalizedLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultLimit, queries.PageRequest{}.NormalizedLimit())
	assert.Equal(t, 25, queries.PageRequest{Limit: 25}.NormalizedLimit())
	assert.Equal(t, queries.MaxLimit, queries.PageRequest{Limit: queries.MaxLimit + 1}.NormalizedLimit())
}

func TestPageRequestOrderClause(t *testing.T) {
	t.Run("default sort uses fallback descending", func(t *testing.T) {
		clause, err := queries.PageRequest{}.OrderClause(slotSortFields, "start_at")
		require.NoError(t, err)
		assert.Equal(t, "s.start_at DESC", clause)
	})

	t.Run("explicit sort field and ascending order", func(t *testing.T) {
		req := queries.PageRequest{SortBy: "created_at", SortOrder: queries.SortAsc}
		clause, err := req.OrderClause(slotSortFields, "start_at")
		require.NoError(t, err)
		assert.Equal(t, "s.created_at ASC", clause)
	})

	t.Run("unknown sort field is rejected", func(t *testing.T) {
		req := queries.PageRequest{SortBy: "password_hash"}
		_, err := req.OrderClause(slotSortFields, "start_at")
		require.ErrorIs(t, err, queries.ErrInvalidSortField)
	})

	t.Run("sql injection attempt is rejected", func(t *testing.T) {
		req := queries.PageRequest{SortBy: "start_at; DROP TABLE users"}
		_, err := req.OrderClause(slotSortFields, "start_at")
		require.ErrorIs(t, err, queries.ErrInvalidSortField)
	})

	t.Run("invalid sort order falls back to descending", func(t *testing.T) {
		req := queries.PageRequest{SortBy: "start_at", SortOrder: "sideways"}
		clause, err := req.OrderClause(slotSortFields, "start_at")
		require.NoError(t, err)
		assert.Equal(t, "s.start_at DESC", clause)
	})
}

func TestNewPageInfo(t *testing.T) {
	cases := []struct {
		name  string
		req   queries.PageRequest
		total int64
		want  queries.PageInfo
	}{
		{name: "exact multiple", req: queries.PageRequest{Page: 1, Limit: 10}, total: 30,
			want: queries.PageInfo{Total: 30, Page: 1, Limit: 10, TotalPages: 3}},
		{name: "partial last page", req: queries.PageRequest{Page: 2, Limit: 10}, total: 31,
			want: queries.PageInfo{Total: 31, Page: 2, Limit: 10, TotalPages: 4}},
		{name: "empty result", req: queries.PageRequest{Page: 1, Limit: 10}, total: 0,
			want: queries.PageInfo{Total: 0, Page: 1, Limit: 10, TotalPages: 0}},
		{name: "single item", req: queries.PageRequest{Page: 1, Limit: 10}, total: 1,
			want: queries.PageInfo{Total: 1, Page: 1, Limit: 10, TotalPages: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			info := queries.NewPageInfo(c.req, c.total)
			if diff := cmp.Diff(c.want, info); diff != "" {
				t.Errorf("page info mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
