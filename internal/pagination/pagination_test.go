package pagination

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/anonto42/nano-dating/backend/internal/testutil"
	"gorm.io/gorm"
)

type entry struct {
	ID    uint `gorm:"primaryKey"`
	Score int
	Kind  string
}

func seedEntries(t *testing.T, n int) *gorm.DB {
	t.Helper()
	db := testutil.OpenDB(t, &entry{})
	for i := 1; i <= n; i++ {
		kind := "odd"
		if i%2 == 0 {
			kind = "even"
		}
		if err := db.Create(&entry{Score: i, Kind: kind}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return db
}

func evens(db *gorm.DB) *gorm.DB { return db.Where("kind = ?", "even") }

func TestPaginateSlicesOrderedSequence(t *testing.T) {
	db := seedEntries(t, 23)
	q := Query{Order: []string{"score DESC"}}

	page, err := Paginate[entry](context.Background(), db, 2, 10, q)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if page.TotalCount != 23 || page.TotalPages != 3 {
		t.Fatalf("unexpected totals: count=%d pages=%d", page.TotalCount, page.TotalPages)
	}
	if len(page.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(page.Items))
	}
	if page.Items[0].Score != 13 || page.Items[9].Score != 4 {
		t.Fatalf("unexpected slice bounds: first=%d last=%d", page.Items[0].Score, page.Items[9].Score)
	}

	last, err := Paginate[entry](context.Background(), db, 3, 10, q)
	if err != nil {
		t.Fatalf("paginate last: %v", err)
	}
	if len(last.Items) != 3 {
		t.Fatalf("expected 3 items on last page, got %d", len(last.Items))
	}
}

func TestPaginateCountIsIndependentOfPaging(t *testing.T) {
	db := seedEntries(t, 17)
	q := Query{Filters: []Scope{evens}, Order: []string{"score DESC"}}

	for _, size := range []int{1, 3, 5, 8, 50} {
		for pageNumber := 1; pageNumber <= 4; pageNumber++ {
			page, err := Paginate[entry](context.Background(), db, pageNumber, size, q)
			if err != nil {
				t.Fatalf("paginate(%d,%d): %v", pageNumber, size, err)
			}
			if page.TotalCount != 8 {
				t.Fatalf("paginate(%d,%d): count %d, want 8", pageNumber, size, page.TotalCount)
			}
			for _, e := range page.Items {
				if e.Kind != "even" {
					t.Fatalf("filter not applied to slice: %+v", e)
				}
			}
		}
	}
}

func TestPaginateOutOfRangePage(t *testing.T) {
	db := seedEntries(t, 5)
	q := Query{Order: []string{"score"}}

	first, err := Paginate[entry](context.Background(), db, 1, 2, q)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	beyond, err := Paginate[entry](context.Background(), db, 9, 2, q)
	if err != nil {
		t.Fatalf("beyond page: %v", err)
	}
	if len(beyond.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(beyond.Items))
	}
	if beyond.Items == nil {
		t.Fatalf("expected empty, non-nil items")
	}
	if beyond.TotalCount != first.TotalCount || beyond.TotalPages != first.TotalPages {
		t.Fatalf("totals changed: %+v vs %+v", beyond.Metadata(), first.Metadata())
	}
	if beyond.CurrentPage != 9 {
		t.Fatalf("expected current page 9, got %d", beyond.CurrentPage)
	}
}

func TestPaginateEmptySequence(t *testing.T) {
	db := testutil.OpenDB(t, &entry{})

	page, err := Paginate[entry](context.Background(), db, 1, 10, Query{})
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if page.TotalCount != 0 || page.TotalPages != 0 || len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %+v", page.Metadata())
	}
}

func TestPaginateRejectsInvalidRange(t *testing.T) {
	db := testutil.OpenDB(t, &entry{})

	cases := []struct{ page, size int }{{0, 10}, {1, 0}, {-1, -1}}
	for _, c := range cases {
		_, err := Paginate[entry](context.Background(), db, c.page, c.size, Query{})
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("paginate(%d,%d): expected ErrInvalidRange, got %v", c.page, c.size, err)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 7, 15},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.size); got != c.want {
			t.Fatalf("TotalPages(%d,%d) = %d, want %d", c.total, c.size, got, c.want)
		}
	}
}

func TestMapKeepsMetadata(t *testing.T) {
	src := New([]int{1, 2, 3}, 13, 2, 3)
	dst := Map(src, func(v int) string { return string(rune('a' + v - 1)) })

	if dst.Metadata() != src.Metadata() {
		t.Fatalf("metadata changed: %+v vs %+v", dst.Metadata(), src.Metadata())
	}
	if len(dst.Items) != 3 || dst.Items[0] != "a" || dst.Items[2] != "c" {
		t.Fatalf("unexpected items: %v", dst.Items)
	}
	if src.Items[0] != 1 {
		t.Fatalf("source mutated: %v", src.Items)
	}
	if dst.TotalPages != 5 {
		t.Fatalf("expected 5 pages, got %d", dst.TotalPages)
	}
}

func TestPaginateHugePageNumberIsPastTheEnd(t *testing.T) {
	db := seedEntries(t, 5)

	for _, pageNumber := range []int{math.MaxInt/10 + 2, math.MaxInt} {
		page, err := Paginate[entry](context.Background(), db, pageNumber, 10, Query{Order: []string{"score"}})
		if err != nil {
			t.Fatalf("paginate(%d): %v", pageNumber, err)
		}
		if len(page.Items) != 0 {
			t.Fatalf("paginate(%d): expected no items, got %d", pageNumber, len(page.Items))
		}
		if page.TotalCount != 5 || page.TotalPages != 1 || page.CurrentPage != pageNumber {
			t.Fatalf("paginate(%d): unexpected metadata %+v", pageNumber, page.Metadata())
		}
	}
}
