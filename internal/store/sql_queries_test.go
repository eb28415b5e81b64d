// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/meme-forge/models"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_identityColumn(t *testing.T) {
	tests := []struct {
		name       string
		key        models.IdentityKey
		wantColumn string
		wantValue  any
		wantErr    bool
	}{
		{"user", models.IdentityKey{Kind: models.IdentityKindUser, Value: "42"}, "user_id", int64(42), false},
		{"session", models.IdentityKey{Kind: models.IdentityKindSession, Value: "abc"}, "session_id", "abc", false},
		{"ip", models.IdentityKey{Kind: models.IdentityKindIP, Value: "10.0.0.1"}, "ip_address", "10.0.0.1", false},
		{"non numeric user", models.IdentityKey{Kind: models.IdentityKindUser, Value: "x"}, "", nil, true},
		{"unknown kind", models.IdentityKey{Kind: "cookie", Value: "x"}, "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column, value, err := identityColumn(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantColumn, column)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func Test_buildCountGenerationsQuery(t *testing.T) {
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.FixedZone("X", 3*3600))

	query, args, err := buildCountGenerationsQuery(pgBuilder, models.IdentityKey{Kind: models.IdentityKindSession, Value: "s-1"}, since)
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM generations WHERE session_id = $1 AND created_at >= $2", query)
	require.Len(t, args, 2)
	assert.Equal(t, "s-1", args[0])
	// the window start is compared in UTC
	assert.Equal(t, since.UTC(), args[1])
	assert.Equal(t, time.UTC, args[1].(time.Time).Location())
}

func Test_buildCountGenerationsQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildCountGenerationsQuery(sqliteBuilder, models.IdentityKey{Kind: models.IdentityKindIP, Value: "1.2.3.4"}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM generations WHERE ip_address = ? AND created_at >= ?", query)
}

func Test_buildCountGenerationsQuery_InvalidKey(t *testing.T) {
	_, _, err := buildCountGenerationsQuery(pgBuilder, models.IdentityKey{}, time.Now())
	require.Error(t, err)
}

func Test_buildInsertGenerationQuery(t *testing.T) {
	session := "s-1"
	event := models.GenerationEvent{SessionID: &session, CreatedAt: time.Unix(100, 0)}

	query, args, err := buildInsertGenerationQuery(pgBuilder, event)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO generations (user_id,session_id,ip_address,created_at) VALUES ($1,$2,$3,$4) RETURNING id", query)
	require.Len(t, args, 4)
	assert.Nil(t, args[0])
	assert.Equal(t, &session, args[1])
}

func Test_buildInsertMemeQuery(t *testing.T) {
	query, args, err := buildInsertMemeQuery(pgBuilder, models.Meme{Prompt: "p", EnhancedPrompt: "ep", ImageURL: "u"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into memes"))
	assert.True(t, strings.HasSuffix(q, "returning id"))
	assert.Len(t, args, 13)
	assert.Contains(t, query, "$13")
}

func Test_buildListPublicMemesQuery(t *testing.T) {
	query, args, err := buildListPublicMemesQuery(pgBuilder, models.Page{Limit: 20, Offset: 40})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM memes m LEFT JOIN users u ON u.user_id = m.user_id")
	assert.Contains(t, query, "COALESCE(u.username, '') AS username")
	assert.Contains(t, query, "WHERE m.is_public = $1")
	assert.Contains(t, query, "ORDER BY m.created_at DESC, m.id DESC")
	assert.Contains(t, query, "LIMIT 20 OFFSET 40")
	assert.Equal(t, []any{true}, args)
}

func Test_buildListMemesByUserQuery_NewestFirst(t *testing.T) {
	query, args, err := buildListMemesByUserQuery(pgBuilder, 7, models.Page{Limit: 50})
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE user_id = $1")
	assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")
	for _, column := range memeColumns {
		assert.Contains(t, query, column)
	}
	assert.Equal(t, []any{int64(7)}, args)
}

func Test_buildOwnerScopedMemeQueries(t *testing.T) {
	query, args, err := buildUpdateVisibilityQuery(pgBuilder, 3, 9, true)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE memes SET is_public = $1 WHERE id = $2 AND user_id = $3", query)
	assert.Equal(t, []any{true, int64(3), int64(9)}, args)

	query, args, err = buildDeleteMemeQuery(pgBuilder, 3, 9)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM memes WHERE id = $1 AND user_id = $2", query)
	assert.Equal(t, []any{int64(3), int64(9)}, args)
}

func Test_buildIncrementLikesQuery(t *testing.T) {
	query, args, err := buildIncrementLikesQuery(pgBuilder, 5)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE memes SET likes = likes + 1 WHERE id = $1 AND is_public = $2 RETURNING likes", query)
	assert.Equal(t, []any{int64(5), true}, args)
}

func Test_buildMarkStoredQuery(t *testing.T) {
	query, args, err := buildMarkStoredQuery(pgBuilder, 5, "https://cdn/x.png")
	require.NoError(t, err)

	assert.Equal(t, "UPDATE memes SET image_url = $1, stored = $2 WHERE id = $3 AND stored = $4", query)
	assert.Equal(t, []any{"https://cdn/x.png", true, int64(5), false}, args)
}

func Test_buildFindAssetsQuery(t *testing.T) {
	query, args, err := buildFindAssetsQuery(pgBuilder, 1, []int64{4, 5})
	require.NoError(t, err)

	assert.Contains(t, query, "id IN ($1,$2)")
	assert.Contains(t, query, "user_id = $4")
	assert.Len(t, args, 4)
}

func Test_buildCreateUserQuery_ReturnsID(t *testing.T) {
	query, args, err := buildCreateUserQuery(pgBuilder, models.User{Email: "a@b.c", Username: "abc", PasswordHash: "h", DailyLimit: 50})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(query, "RETURNING user_id"))
	require.Len(t, args, 6)
	assert.Equal(t, "a@b.c", args[0])
	assert.Equal(t, true, args[4])
}
