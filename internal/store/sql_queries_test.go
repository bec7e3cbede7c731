// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/gophertalk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func Test_buildSelectPostsQuery_Feed(t *testing.T) {
	query, args, err := buildSelectPostsQuery(context.Background(), models.PostFilter{
		UserID:     42,
		Pagination: models.Pagination{Limit: 100, Offset: 20},
	})
	require.NoError(t, err)

	// both like/view flag joins are bound to the caller
	require.Equal(t, []any{int64(42), int64(42)}, args)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "with likes_count as"))
	require.Contains(t, q, "from posts p")
	require.Contains(t, q, "join users u on p.user_id = u.id")
	require.Contains(t, q, "left join likes l on l.post_id = p.id and l.user_id = $1")
	require.Contains(t, q, "left join views v on v.post_id = p.id and v.user_id = $2")
	require.Contains(t, q, "p.deleted_at is null")
	require.Contains(t, q, "p.reply_to_id is null")
	require.Contains(t, q, "order by p.created_at desc, p.id desc")
	require.Contains(t, q, "limit 100")
	require.Contains(t, q, "offset 20")
	require.NotContains(t, q, "ilike")
}

func Test_buildSelectPostsQuery_Thread(t *testing.T) {
	query, args, err := buildSelectPostsQuery(context.Background(), models.PostFilter{
		UserID:     1,
		ReplyToID:  ptr(int64(7)),
		Pagination: models.Pagination{Limit: 10},
	})
	require.NoError(t, err)
	require.Equal(t, []any{int64(1), int64(1), int64(7)}, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "p.reply_to_id = $3")
	assert.Contains(t, q, "order by p.created_at asc, p.id asc")
	assert.NotContains(t, q, "p.reply_to_id is null")
}

func Test_buildSelectPostsQuery_Filters(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.PostFilter
		wantArgs []any
		contains []string
	}{
		{
			name:     "search",
			filter:   models.PostFilter{UserID: 1, Search: ptr("Go")},
			wantArgs: []any{int64(1), int64(1), "%Go%"},
			contains: []string{"p.text ilike $3"},
		},
		{
			name:     "empty search is ignored",
			filter:   models.PostFilter{UserID: 1, Search: ptr("")},
			wantArgs: []any{int64(1), int64(1)},
		},
		{
			name:     "search escapes wildcards",
			filter:   models.PostFilter{UserID: 1, Search: ptr(`50%_off\`)},
			wantArgs: []any{int64(1), int64(1), `%50\%\_off\\%`},
		},
		{
			name:     "owner",
			filter:   models.PostFilter{UserID: 1, OwnerID: ptr(int64(9))},
			wantArgs: []any{int64(1), int64(1), int64(9)},
			contains: []string{"p.user_id = $3"},
		},
		{
			name:     "search and owner",
			filter:   models.PostFilter{UserID: 1, Search: ptr("x"), OwnerID: ptr(int64(9))},
			wantArgs: []any{int64(1), int64(1), "%x%", int64(9)},
			contains: []string{"p.text ilike $3", "p.user_id = $4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectPostsQuery(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, args)

			q := strings.ToLower(query)
			for _, part := range tt.contains {
				assert.Contains(t, q, part)
			}
		})
	}
}

func Test_buildSelectPostByIDQuery(t *testing.T) {
	query, args, err := buildSelectPostByIDQuery(context.Background(), 3, 8)
	require.NoError(t, err)
	require.Equal(t, []any{int64(8), int64(8), int64(3)}, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "p.id = $3")
	assert.Contains(t, q, "p.deleted_at is null")
	assert.NotContains(t, q, "limit")
}

func Test_buildSelectUsersQuery(t *testing.T) {
	query, args, err := buildSelectUsersQuery(context.Background(), models.Pagination{Limit: 10, Offset: 30})
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT id, user_name, first_name, last_name, status, created_at, updated_at FROM users WHERE deleted_at IS NULL ORDER BY id ASC LIMIT 10 OFFSET 30",
		query)
}

func Test_buildUpdateUserQuery(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		query, args, err := buildUpdateUserQuery(context.Background(), 5, models.UpdateUserRequest{
			UserName:     ptr("gopher"),
			FirstName:    ptr("Go"),
			LastName:     ptr("Pher"),
			PasswordHash: ptr("hash"),
		})
		require.NoError(t, err)
		assert.Equal(t, []any{"hash", "gopher", "Go", "Pher", int64(5)}, args)
		assert.True(t, strings.HasPrefix(query,
			"UPDATE users SET password_hash = $1, user_name = $2, first_name = $3, last_name = $4, updated_at = NOW() WHERE id = $5 AND deleted_at IS NULL RETURNING "))
		assert.Contains(t, query, "RETURNING id, user_name, first_name, last_name, status, created_at, updated_at")
	})

	t.Run("plain password is never written", func(t *testing.T) {
		query, args, err := buildUpdateUserQuery(context.Background(), 5, models.UpdateUserRequest{
			Password:     ptr("secret"),
			PasswordHash: ptr("hash"),
		})
		require.NoError(t, err)
		assert.Equal(t, []any{"hash", int64(5)}, args)
		assert.NotContains(t, query, "secret")
	})

	t.Run("only touches updated_at", func(t *testing.T) {
		query, args, err := buildUpdateUserQuery(context.Background(), 5, models.UpdateUserRequest{})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(5)}, args)
		assert.Contains(t, query, "SET updated_at = NOW() WHERE id = $1")
	})
}

func Test_escapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `snake\_case`, escapeLike("snake_case"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
}
