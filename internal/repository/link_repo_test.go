package repository

import (
	"errors"
	"testing"
	"time"

	"linkhub/internal/models"
)

func TestLinkRepository_ListAllAndActive(t *testing.T) {
	bdb := newSQLiteDB(t)
	cats := NewCategoryRepository(bdb)
	repo := NewLinkRepository(bdb)

	c1 := seedCategory(t, cats, "One", 0)
	c2 := seedCategory(t, cats, "Two", 1)

	l3 := seedLink(t, repo, models.Link{Name: "c2-a", URL: "u", CategoryID: c2.ID, IsActive: true})
	l1 := seedLink(t, repo, models.Link{Name: "c1-b", URL: "u", CategoryID: c1.ID, Order: 2, IsActive: true})
	l2 := seedLink(t, repo, models.Link{Name: "c1-a", URL: "u", CategoryID: c1.ID, Order: 1, IsActive: false})

	all, err := repo.ListAll(ctx(t))
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if want := []int64{l2.ID, l1.ID, l3.ID}; !equalIDs(linkIDs(all), want) {
		t.Fatalf("ListAll order = %v, want %v", linkIDs(all), want)
	}
	if all[0].Category == nil || all[0].Category.Name != "One" {
		t.Fatalf("expected category relation, got %+v", all[0].Category)
	}

	active, err := repo.ListActive(ctx(t))
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if want := []int64{l1.ID, l3.ID}; !equalIDs(linkIDs(active), want) {
		t.Fatalf("ListActive = %v, want %v", linkIDs(active), want)
	}

	byCat, err := repo.ListByCategory(ctx(t), c1.ID)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if want := []int64{l2.ID, l1.ID}; !equalIDs(linkIDs(byCat), want) {
		t.Fatalf("ListByCategory = %v, want %v", linkIDs(byCat), want)
	}

	n, err := repo.CountByCategory(ctx(t), c1.ID)
	if err != nil || n != 2 {
		t.Fatalf("CountByCategory = %d, %v", n, err)
	}
}

func TestLinkRepository_ListActiveTagged(t *testing.T) {
	bdb := newSQLiteDB(t)
	cats := NewCategoryRepository(bdb)
	repo := NewLinkRepository(bdb)
	c := seedCategory(t, cats, "Stores", 0)

	older := seedLink(t, repo, models.Link{Name: "shop-old", URL: "u", CategoryID: c.ID, IsActive: true,
		Tag: models.TagShopee, CreatedAt: baseTime})
	newer := seedLink(t, repo, models.Link{Name: "shop-new", URL: "u", CategoryID: c.ID, IsActive: true,
		Tag: models.TagShopee, CreatedAt: baseTime.Add(time.Hour)})
	blibli := seedLink(t, repo, models.Link{Name: "blibli", URL: "u", CategoryID: c.ID, IsActive: true,
		Tag: models.TagBlibli})
	seedLink(t, repo, models.Link{Name: "inactive", URL: "u", CategoryID: c.ID, IsActive: false, Tag: models.TagLazada})
	seedLink(t, repo, models.Link{Name: "untagged", URL: "u", CategoryID: c.ID, IsActive: true})

	got, err := repo.ListActiveTagged(ctx(t), models.LinkTags)
	if err != nil {
		t.Fatalf("ListActiveTagged: %v", err)
	}
	if want := []int64{blibli.ID, newer.ID, older.ID}; !equalIDs(linkIDs(got), want) {
		t.Fatalf("ListActiveTagged = %v, want %v", linkIDs(got), want)
	}

	empty, err := repo.ListActiveTagged(ctx(t), nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty result for no tags, got %v, %v", empty, err)
	}
}

func TestLinkRepository_UpdateAndDelete(t *testing.T) {
	bdb := newSQLiteDB(t)
	cats := NewCategoryRepository(bdb)
	repo := NewLinkRepository(bdb)
	c1 := seedCategory(t, cats, "One", 0)
	c2 := seedCategory(t, cats, "Two", 0)

	l := seedLink(t, repo, models.Link{Name: "a", URL: "https://a", CategoryID: c1.ID, IsActive: true, Tag: models.TagTiktok})

	l.Name = "b"
	l.CategoryID = c2.ID
	l.IsActive = false
	l.Tag = ""
	l.UpdatedAt = baseTime.Add(time.Minute)
	if err := repo.Update(ctx(t), l); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.Get(ctx(t), l.ID)
	if err != nil || got == nil {
		t.Fatalf("Get: %+v, %v", got, err)
	}
	if got.Name != "b" || got.CategoryID != c2.ID || got.IsActive || got.Tag != "" {
		t.Fatalf("update not applied: %+v", got)
	}
	if !got.CreatedAt.Equal(baseTime) {
		t.Fatalf("created_at changed: %v", got.CreatedAt)
	}

	ok, err := repo.Delete(ctx(t), l.ID)
	if err != nil || !ok {
		t.Fatalf("Delete: %v, %v", ok, err)
	}
	ok, err = repo.Delete(ctx(t), l.ID)
	if err != nil || ok {
		t.Fatalf("second Delete should report false, got %v, %v", ok, err)
	}
}

func TestLinkRepository_UnknownCategoryIsForeignKeyError(t *testing.T) {
	repo := NewLinkRepository(newSQLiteDB(t))

	err := repo.Create(ctx(t), &models.Link{Name: "x", URL: "u", CategoryID: 999, CreatedAt: baseTime, UpdatedAt: baseTime})
	if !errors.Is(err, ErrForeignKey) {
		t.Fatalf("expected ErrForeignKey, got %v", err)
	}
}

func TestLinkRepository_GetMissing(t *testing.T) {
	repo := NewLinkRepository(newSQLiteDB(t))
	got, err := repo.Get(ctx(t), 42)
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", got, err)
	}
}
