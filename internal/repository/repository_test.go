package repository_test

import (
	"context"
	"testing"
	"time"

	"portal/internal/database/databasetest"
	"portal/internal/domain"
	"portal/internal/models"
	"portal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestProductPagingAndSort(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(databasetest.New(t))
	for i, name := range []string{"c", "a", "e", "b", "d"} {
		require.NoError(t, repo.Create(ctx, &models.Product{Name: name, Price: float64(i), IsActive: true, SortOrder: i}))
	}

	page, err := repo.List(ctx, repository.PageRequest{Page: 1, Size: 2, Sort: "name", Direction: "asc"})
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Number)
	assert.False(t, page.First)
	assert.False(t, page.Last)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "c", page.Content[0].Name)
	assert.Equal(t, "d", page.Content[1].Name)

	last, err := repo.List(ctx, repository.PageRequest{Page: 2, Size: 2, Sort: "name", Direction: "asc"})
	require.NoError(t, err)
	assert.True(t, last.Last)
	assert.Equal(t, 1, last.NumberOfElements)
}

func TestPageRequestIgnoresUnknownSortKey(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(databasetest.New(t))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "first", IsActive: true}))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "second", IsActive: true}))

	page, err := repo.List(ctx, repository.PageRequest{Sort: "name; DROP TABLE products"})
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "second", page.Content[0].Name)
}

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   repository.PageRequest
		want repository.PageRequest
	}{
		{"defaults", repository.PageRequest{}, repository.PageRequest{Page: 0, Size: domain.DefaultPageSize, Direction: "desc"}},
		{"negative page", repository.PageRequest{Page: -3, Size: 5, Direction: "ASC"}, repository.PageRequest{Page: 0, Size: 5, Direction: "asc"}},
		{"capped size", repository.PageRequest{Page: 2, Size: 1000}, repository.PageRequest{Page: 2, Size: domain.MaxPageSize, Direction: "desc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestEmptyPage(t *testing.T) {
	repo := repository.NewNewsRepository(databasetest.New(t))
	page, err := repo.List(context.Background(), repository.PageRequest{})
	require.NoError(t, err)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.Equal(t, 0, page.TotalPages)
	assert.True(t, page.First)
	assert.True(t, page.Last)
}

func TestProductActiveQueries(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(databasetest.New(t))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "late", Category: "cloud", IsActive: true, SortOrder: 2}))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "early", Category: "cloud", IsActive: true, SortOrder: 1}))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "hidden", Category: "legacy", IsActive: false}))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "ai", Category: "ai", IsActive: true, SortOrder: 3}))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "early", active[0].Name)

	cloud, err := repo.ListActiveByCategory(ctx, "cloud")
	require.NoError(t, err)
	assert.Len(t, cloud, 2)

	legacy, err := repo.ListActiveByCategory(ctx, "legacy")
	require.NoError(t, err)
	assert.Empty(t, legacy)

	cats, err := repo.DistinctActiveCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ai", "cloud"}, cats)
}

func TestNewsPublishedQueries(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewNewsRepository(databasetest.New(t))
	now := time.Now()
	for i := 0; i < 8; i++ {
		at := now.Add(-time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, &models.News{
			Title: "n", Content: "c", Category: []string{"tech", "corp"}[i%2],
			IsPublished: true, PublishedAt: &at,
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.News{Title: "draft", Content: "c", Category: "secret"}))

	latest, err := repo.Latest(ctx, domain.LatestNewsLimit)
	require.NoError(t, err)
	require.Len(t, latest, domain.LatestNewsLimit)
	for i := 1; i < len(latest); i++ {
		assert.False(t, latest[i].PublishedAt.After(*latest[i-1].PublishedAt))
	}

	page, err := repo.ListPublished(ctx, "tech", repository.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 4, page.TotalElements)
	for _, n := range page.Content {
		assert.Equal(t, "tech", n.Category)
	}

	all, err := repo.ListPublished(ctx, "", repository.PageRequest{Size: 100})
	require.NoError(t, err)
	assert.EqualValues(t, 8, all.TotalElements)

	cats, err := repo.DistinctPublishedCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"corp", "tech"}, cats)
}

func TestNewsIncrementViewCount(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewNewsRepository(databasetest.New(t))
	n := &models.News{Title: "t", Content: "c", IsPublished: true}
	require.NoError(t, repo.Create(ctx, n))

	require.NoError(t, repo.IncrementViewCount(ctx, n.ID))
	require.NoError(t, repo.IncrementViewCount(ctx, n.ID))
	got, err := repo.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.ViewCount)

	err = repo.IncrementViewCount(ctx, n.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyPrimaryIsExclusive(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCompanyRepository(databasetest.New(t))

	_, err := repo.Primary(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	a := &models.CompanyInfo{Name: "A", Description: "a"}
	require.NoError(t, repo.Create(ctx, a))
	got, err := repo.Primary(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	b := &models.CompanyInfo{Name: "B", Description: "b", IsPrimary: true}
	require.NoError(t, repo.Create(ctx, b))
	c := &models.CompanyInfo{Name: "C", Description: "c", IsPrimary: true}
	require.NoError(t, repo.Create(ctx, c))

	got, err = repo.Primary(ctx)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	b.IsPrimary = true
	require.NoError(t, repo.Update(ctx, b))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	primaries := 0
	for _, row := range list {
		if row.IsPrimary {
			primaries++
			assert.Equal(t, b.ID, row.ID)
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestMessageFiltersAndLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMessageRepository(databasetest.New(t))
	base := time.Now().Add(-time.Hour)
	var ids []uint
	for i := 0; i < 3; i++ {
		m := &models.Message{Name: "v", Email: "v@example.com", Content: "hi", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(ctx, m))
		ids = append(ids, m.ID)
	}

	require.NoError(t, repo.MarkRead(ctx, ids[0], time.Now()))
	require.NoError(t, repo.MarkRead(ctx, ids[0], time.Now()))
	require.NoError(t, repo.Reply(ctx, ids[1], "thanks", time.Now()))

	replied, err := repo.GetByID(ctx, ids[1])
	require.NoError(t, err)
	assert.True(t, replied.IsRead)
	assert.True(t, replied.IsReplied)
	assert.Equal(t, "thanks", replied.ReplyContent)
	assert.NotNil(t, replied.ReplyTime)

	unread, err := repo.List(ctx, repository.MessageFilter{IsRead: ptr(false)}, repository.PageRequest{})
	require.NoError(t, err)
	require.Len(t, unread.Content, 1)
	assert.Equal(t, ids[2], unread.Content[0].ID)

	readNotReplied, err := repo.List(ctx, repository.MessageFilter{IsRead: ptr(true), IsReplied: ptr(false)}, repository.PageRequest{})
	require.NoError(t, err)
	require.Len(t, readNotReplied.Content, 1)
	assert.Equal(t, ids[0], readNotReplied.Content[0].ID)

	all, err := repo.List(ctx, repository.MessageFilter{}, repository.PageRequest{})
	require.NoError(t, err)
	require.Len(t, all.Content, 3)
	assert.Equal(t, ids[2], all.Content[0].ID)

	n, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = repo.CountUnreplied(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	assert.ErrorIs(t, repo.MarkRead(ctx, 999, time.Now()), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 999), domain.ErrNotFound)
}

func TestConfigUpsert(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewConfigRepository(databasetest.New(t))
	now := time.Now()

	created, err := repo.Upsert(ctx, "site.title", "Portal", ptr("Browser title"), now)
	require.NoError(t, err)
	assert.Equal(t, "Portal", created.ConfigValue)

	updated, err := repo.Upsert(ctx, "site.title", "Portal 2", nil, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Portal 2", updated.ConfigValue)
	assert.Equal(t, "Browser title", updated.Description)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	taken, err := repo.ExistsByKey(ctx, "site.title", 0)
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = repo.ExistsByKey(ctx, "site.title", created.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestAdminUserDuplicateMapsToConflict(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAdminUserRepository(databasetest.New(t))
	require.NoError(t, repo.Create(ctx, &models.AdminUser{Username: "ann", Email: "ann@example.com", Password: "x", Role: domain.RoleAdmin, Enabled: true}))

	err := repo.Create(ctx, &models.AdminUser{Username: "ann", Email: "other@example.com", Password: "x", Role: domain.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrConflict)

	u, err := repo.GetByUsername(ctx, "ann")
	require.NoError(t, err)
	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "new-hash", time.Now()))
	u, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", u.Password)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboardCounts(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)
	require.NoError(t, db.Create(&models.Message{Name: "a", Email: "a@x.io", Content: "c"}).Error)
	require.NoError(t, db.Create(&models.Message{Name: "b", Email: "b@x.io", Content: "c", IsRead: true}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "p"}).Error)

	stats, err := repository.NewDashboardRepository(db).Counts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalMessages)
	assert.EqualValues(t, 1, stats.UnreadMessages)
	assert.EqualValues(t, 1, stats.TotalProducts)
	assert.EqualValues(t, 0, stats.TotalNews)
}

func TestActivityRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewActivityRepository(databasetest.New(t))
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.ActivityLog{Operator: "admin", Action: domain.ActionCreate, Target: "product", CreatedAt: base.Add(time.Duration(i) * time.Minute)}))
	}
	recent, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.True(t, recent[0].CreatedAt.After(recent[1].CreatedAt))
}

func TestUpdateOfDeletedRowIsNotFound(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)

	products := repository.NewProductRepository(db)
	p := &models.Product{Name: "Gone", Price: 1, IsActive: true}
	require.NoError(t, products.Create(ctx, p))
	require.NoError(t, products.Delete(ctx, p.ID))
	p.Name = "Back"
	assert.ErrorIs(t, products.Update(ctx, p), domain.ErrNotFound)
	n, err := products.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	news := repository.NewNewsRepository(db)
	a := &models.News{Title: "Gone", Content: "x"}
	require.NoError(t, news.Create(ctx, a))
	require.NoError(t, news.Delete(ctx, a.ID))
	a.Title = "Back"
	assert.ErrorIs(t, news.Update(ctx, a), domain.ErrNotFound)

	companies := repository.NewCompanyRepository(db)
	c := &models.CompanyInfo{Name: "Gone", Description: "x"}
	require.NoError(t, companies.Create(ctx, c))
	require.NoError(t, companies.Delete(ctx, c.ID))
	c.IsPrimary = true
	assert.ErrorIs(t, companies.Update(ctx, c), domain.ErrNotFound)
	n, err = companies.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	configs := repository.NewConfigRepository(db)
	cfg := &models.SystemConfig{ConfigKey: "gone", ConfigValue: "x"}
	require.NoError(t, configs.Create(ctx, cfg))
	require.NoError(t, configs.Delete(ctx, cfg.ID))
	cfg.ConfigValue = "y"
	assert.ErrorIs(t, configs.Update(ctx, cfg), domain.ErrNotFound)
	_, err = configs.GetByKey(ctx, "gone")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateWithoutChangesSucceeds(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(databasetest.New(t))
	p := &models.Product{Name: "Same", Price: 2, IsActive: true}
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.Update(ctx, p))
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Same", got.Name)
	assert.True(t, got.IsActive)
}
