package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/mock"
	"github.com/MKhiriev/meme-forge/internal/store"
	"github.com/MKhiriev/meme-forge/models"
)

type memeMocks struct {
	memes *mock.MockMemeRepository
	users *mock.MockUserRepository
	quota *mock.MockQuotaLedger
}

func newTestMemeService(t *testing.T) (MemeService, memeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := memeMocks{
		memes: mock.NewMockMemeRepository(ctrl),
		users: mock.NewMockUserRepository(ctrl),
		quota: mock.NewMockQuotaLedger(ctrl),
	}
	return NewMemeService(m.memes, m.users, m.quota, logger.Nop()), m
}

func TestMemeService_Dashboard(t *testing.T) {
	svc, m := newTestMemeService(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByID(ctx, int64(5)).Return(models.User{UserID: 5, DailyLimit: 50}, nil)
	m.memes.EXPECT().ListByUser(ctx, int64(5), models.Page{Limit: DefaultPageLimit}).Return([]models.Meme{{ID: 1}, {ID: 2}}, nil)
	m.memes.EXPECT().StatsByUser(ctx, int64(5)).Return(models.DashboardStats{TotalMemes: 2, TotalLikes: 3, TotalViews: 10}, nil)
	m.quota.EXPECT().CountToday(ctx, models.IdentityKey{Kind: models.IdentityKindUser, Value: "5"}).Return(4, nil)

	dashboard, err := svc.Dashboard(ctx, 5, models.Page{})
	require.NoError(t, err)

	assert.Len(t, dashboard.Memes, 2)
	assert.Equal(t, models.DashboardStats{
		TotalMemes:       2,
		TotalLikes:       3,
		TotalViews:       10,
		GenerationsToday: 4,
		DailyLimit:       50,
	}, dashboard.Stats)
}

func TestMemeService_Dashboard_UnknownUser(t *testing.T) {
	svc, m := newTestMemeService(t)

	m.users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Dashboard(context.Background(), 5, models.Page{})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestMemeService_Community_EmptyIsNotNil(t *testing.T) {
	svc, m := newTestMemeService(t)

	m.memes.EXPECT().ListPublic(gomock.Any(), models.Page{Limit: MaxPageLimit, Offset: 40}).Return(nil, nil)

	memes, err := svc.Community(context.Background(), models.Page{Limit: 1000, Offset: 40})
	require.NoError(t, err)
	assert.NotNil(t, memes)
	assert.Empty(t, memes)
}

func TestMemeService_ViewMeme(t *testing.T) {
	svc, m := newTestMemeService(t)

	gomock.InOrder(
		m.memes.EXPECT().FindPublicByID(gomock.Any(), int64(8)).Return(models.Meme{ID: 8, Views: 2, IsPublic: true}, nil),
		m.memes.EXPECT().IncrementViews(gomock.Any(), int64(8)).Return(nil),
	)

	meme, err := svc.ViewMeme(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, 3, meme.Views)
}

func TestMemeService_ViewMeme_PrivateNotCounted(t *testing.T) {
	svc, m := newTestMemeService(t)

	m.memes.EXPECT().FindPublicByID(gomock.Any(), int64(8)).Return(models.Meme{}, store.ErrMemeNotFound)

	_, err := svc.ViewMeme(context.Background(), 8)
	assert.ErrorIs(t, err, store.ErrMemeNotFound)
}

func TestMemeService_OwnerOperations(t *testing.T) {
	svc, m := newTestMemeService(t)
	ctx := context.Background()

	m.memes.EXPECT().UpdateVisibility(ctx, int64(8), int64(5), true).Return(nil)
	require.NoError(t, svc.SetVisibility(ctx, 5, 8, true))

	m.memes.EXPECT().UpdateVisibility(ctx, int64(9), int64(5), false).Return(store.ErrMemeNotFound)
	assert.ErrorIs(t, svc.SetVisibility(ctx, 5, 9, false), store.ErrMemeNotFound)

	m.memes.EXPECT().Delete(ctx, int64(8), int64(5)).Return(nil)
	require.NoError(t, svc.DeleteMeme(ctx, 5, 8))

	m.memes.EXPECT().IncrementLikes(ctx, int64(8)).Return(4, nil)
	likes, err := svc.LikeMeme(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, 4, likes)
}

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, models.Page{Limit: DefaultPageLimit}, NormalizePage(models.Page{}))
	assert.Equal(t, models.Page{Limit: 10, Offset: 30}, NormalizePage(models.Page{Limit: 10, Offset: 30}))
	assert.Equal(t, models.Page{Limit: MaxPageLimit}, NormalizePage(models.Page{Limit: MaxPageLimit + 1}))
}
