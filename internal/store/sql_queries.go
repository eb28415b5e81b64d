package store

import (
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/meme-forge/models"
)

var (
	userColumns = []string{"user_id", "email", "username", "password_hash", "daily_limit", "is_active", "created_at"}

	memeColumns = []string{
		"id", "user_id", "character_id", "prompt", "enhanced_prompt", "image_url", "source_url", "stored",
		"is_public", "format", "brand_color_1", "brand_color_2", "logo_description", "likes", "views", "created_at",
	}

	characterColumns = []string{"id", "user_id", "name", "description", "style_prompt", "reference_image_url", "is_active", "created_at"}

	assetColumns = []string{"id", "user_id", "name", "image_url", "asset_type", "description", "is_active", "created_at"}
)

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// ── users ────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("email", "username", "password_hash", "daily_limit", "is_active", "created_at").
		Values(user.Email, user.Username, user.PasswordHash, user.DailyLimit, true, user.CreatedAt.UTC()).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
}

// ── generations ──────────────────────────────────────────────────────────────

// identityColumn maps an identity key to the generations column it is
// counted by, together with the typed value.
func identityColumn(key models.IdentityKey) (string, any, error) {
	switch key.Kind {
	case models.IdentityKindUser:
		userID, err := strconv.ParseInt(key.Value, 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid user identity %q: %w", key.Value, err)
		}
		return "user_id", userID, nil
	case models.IdentityKindSession:
		return "session_id", key.Value, nil
	case models.IdentityKindIP:
		return "ip_address", key.Value, nil
	default:
		return "", nil, fmt.Errorf("unknown identity kind %q", key.Kind)
	}
}

func buildCountGenerationsQuery(b sq.StatementBuilderType, key models.IdentityKey, since time.Time) (string, []any, error) {
	column, value, err := identityColumn(key)
	if err != nil {
		return "", nil, err
	}

	return b.Select("COUNT(*)").
		From("generations").
		Where(sq.Eq{column: value}).
		Where(sq.GtOrEq{"created_at": since.UTC()}).
		ToSql()
}

func buildInsertGenerationQuery(b sq.StatementBuilderType, event models.GenerationEvent) (string, []any, error) {
	return b.Insert("generations").
		Columns("user_id", "session_id", "ip_address", "created_at").
		Values(event.UserID, event.SessionID, event.IPAddress, event.CreatedAt.UTC()).
		Suffix("RETURNING id").
		ToSql()
}

// ── memes ────────────────────────────────────────────────────────────────────

func buildInsertMemeQuery(b sq.StatementBuilderType, meme models.Meme) (string, []any, error) {
	return b.Insert("memes").
		Columns(
			"user_id", "character_id", "prompt", "enhanced_prompt", "image_url", "source_url", "stored",
			"is_public", "format", "brand_color_1", "brand_color_2", "logo_description", "created_at",
		).
		Values(
			meme.UserID, meme.CharacterID, meme.Prompt, meme.EnhancedPrompt, meme.ImageURL, meme.SourceURL, meme.Stored,
			meme.IsPublic, meme.Format, meme.BrandColor1, meme.BrandColor2, meme.LogoDescription, meme.CreatedAt.UTC(),
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildListMemesByUserQuery(b sq.StatementBuilderType, userID int64, page models.Page) (string, []any, error) {
	return b.Select(memeColumns...).
		From("memes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
}

func publicMemesSelect(b sq.StatementBuilderType) sq.SelectBuilder {
	columns := append(prefixed("m", memeColumns), "COALESCE(u.username, '') AS username")
	return b.Select(columns...).
		From("memes m").
		LeftJoin("users u ON u.user_id = m.user_id").
		Where(sq.Eq{"m.is_public": true})
}

func buildListPublicMemesQuery(b sq.StatementBuilderType, page models.Page) (string, []any, error) {
	return publicMemesSelect(b).
		OrderBy("m.created_at DESC", "m.id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
}

func buildFindPublicMemeQuery(b sq.StatementBuilderType, memeID int64) (string, []any, error) {
	return publicMemesSelect(b).
		Where(sq.Eq{"m.id": memeID}).
		ToSql()
}

func buildMemeStatsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("COUNT(*)", "COALESCE(SUM(likes), 0)", "COALESCE(SUM(views), 0)").
		From("memes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateVisibilityQuery(b sq.StatementBuilderType, memeID, userID int64, isPublic bool) (string, []any, error) {
	return b.Update("memes").
		Set("is_public", isPublic).
		Where(sq.Eq{"id": memeID, "user_id": userID}).
		ToSql()
}

func buildDeleteMemeQuery(b sq.StatementBuilderType, memeID, userID int64) (string, []any, error) {
	return b.Delete("memes").
		Where(sq.Eq{"id": memeID, "user_id": userID}).
		ToSql()
}

func buildIncrementLikesQuery(b sq.StatementBuilderType, memeID int64) (string, []any, error) {
	return b.Update("memes").
		Set("likes", sq.Expr("likes + 1")).
		Where(sq.Eq{"id": memeID, "is_public": true}).
		Suffix("RETURNING likes").
		ToSql()
}

func buildIncrementViewsQuery(b sq.StatementBuilderType, memeID int64) (string, []any, error) {
	return b.Update("memes").
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": memeID}).
		ToSql()
}

func buildListUnstoredQuery(b sq.StatementBuilderType, since time.Time, limit uint64) (string, []any, error) {
	return b.Select(memeColumns...).
		From("memes").
		Where(sq.Eq{"stored": false}).
		Where(sq.GtOrEq{"created_at": since.UTC()}).
		OrderBy("created_at ASC", "id ASC").
		Limit(limit).
		ToSql()
}

func buildMarkStoredQuery(b sq.StatementBuilderType, memeID int64, imageURL string) (string, []any, error) {
	return b.Update("memes").
		Set("image_url", imageURL).
		Set("stored", true).
		Where(sq.Eq{"id": memeID, "stored": false}).
		ToSql()
}

// ── characters & assets ──────────────────────────────────────────────────────

func buildCreateCharacterQuery(b sq.StatementBuilderType, c models.Character) (string, []any, error) {
	return b.Insert("characters").
		Columns("user_id", "name", "description", "style_prompt", "reference_image_url", "is_active", "created_at").
		Values(c.UserID, c.Name, c.Description, c.StylePrompt, c.ReferenceImageURL, true, c.CreatedAt.UTC()).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindCharacterQuery(b sq.StatementBuilderType, characterID int64) (string, []any, error) {
	return b.Select(characterColumns...).
		From("characters").
		Where(sq.Eq{"id": characterID, "is_active": true}).
		ToSql()
}

func buildListCharactersQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(characterColumns...).
		From("characters").
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildCreateAssetQuery(b sq.StatementBuilderType, a models.Asset) (string, []any, error) {
	return b.Insert("assets").
		Columns("user_id", "name", "image_url", "asset_type", "description", "is_active", "created_at").
		Values(a.UserID, a.Name, a.ImageURL, a.AssetType, a.Description, true, a.CreatedAt.UTC()).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindAssetsQuery(b sq.StatementBuilderType, userID int64, assetIDs []int64) (string, []any, error) {
	return b.Select(assetColumns...).
		From("assets").
		Where(sq.Eq{"user_id": userID, "id": assetIDs, "is_active": true}).
		OrderBy("id ASC").
		ToSql()
}

func buildListAssetsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(assetColumns...).
		From("assets").
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}
