package repository

import (
	"fmt"
	"testing"

	"tracking-service/internal/model"
)

func seedProductionRows(t *testing.T, r *Repository, userID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		prod := &model.Production{
			JobNumber: fmt.Sprintf("J%03d", i),
			OpNumber:  "10",
			Machine:   "M1",
			MachType:  "Lathe",
			Date:      mustDate(t, fmt.Sprintf("2024-01-%02d", i%28+1)),
			Shift:     "1st",
			Quantity:  i,
		}
		if err := r.CreateProduction(userID, prod); err != nil {
			t.Fatalf("seed production %d: %v", i, err)
		}
	}
}

func TestPagedList_TotalPagesRoundsUp(t *testing.T) {
	r := openTestRepo(t)
	seedProductionRows(t, r, 7, 25)

	page, err := r.GetProductionSet(7, PagingParams{PageNumber: 1, PageSize: 10}, "Lathe")
	if err != nil {
		t.Fatalf("get production set: %v", err)
	}
	if page.TotalCount != 25 {
		t.Errorf("total count = %d, want 25", page.TotalCount)
	}
	if page.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", page.TotalPages)
	}
	if len(page.Items) != 10 {
		t.Errorf("page size = %d, want 10", len(page.Items))
	}
}

func TestPagedList_PagesConcatenateToFullSet(t *testing.T) {
	r := openTestRepo(t)
	seedProductionRows(t, r, 7, 25)

	seen := make(map[uint]bool)
	var collected []model.Production
	for pageNum := 1; pageNum <= 3; pageNum++ {
		page, err := r.GetProductionSet(7, PagingParams{PageNumber: pageNum, PageSize: 10}, "Lathe")
		if err != nil {
			t.Fatalf("page %d: %v", pageNum, err)
		}
		for _, prod := range page.Items {
			if seen[prod.ID] {
				t.Fatalf("row %d appears on more than one page", prod.ID)
			}
			seen[prod.ID] = true
		}
		collected = append(collected, page.Items...)
	}
	if len(collected) != 25 {
		t.Fatalf("collected %d rows across pages, want 25", len(collected))
	}

	// Concatenated pages reproduce the unpaginated ordering
	for i := 1; i < len(collected); i++ {
		prev, cur := collected[i-1], collected[i]
		if cur.Date.After(prev.Date) {
			t.Fatalf("date order broken at index %d: %v before %v", i, prev.Date, cur.Date)
		}
		if cur.Date.Equal(prev.Date) && cur.ID < prev.ID {
			t.Fatalf("id tiebreak broken at index %d", i)
		}
	}
}

func TestPagedList_PagePastEndIsEmpty(t *testing.T) {
	r := openTestRepo(t)
	seedProductionRows(t, r, 7, 5)

	page, err := r.GetProductionSet(7, PagingParams{PageNumber: 4, PageSize: 10}, "Lathe")
	if err != nil {
		t.Fatalf("get production set: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("got %d items past the end, want 0", len(page.Items))
	}
	if page.TotalCount != 5 || page.TotalPages != 1 {
		t.Errorf("count = %d pages = %d, want 5/1", page.TotalCount, page.TotalPages)
	}
}

func TestPagingParams_Normalize(t *testing.T) {
	tests := []struct {
		in       PagingParams
		wantPage int
		wantSize int
	}{
		{PagingParams{}, 1, defaultPageSize},
		{PagingParams{PageNumber: -3, PageSize: 0}, 1, defaultPageSize},
		{PagingParams{PageNumber: 2, PageSize: 100}, 2, maxPageSize},
		{PagingParams{PageNumber: 3, PageSize: 15}, 3, 15},
	}
	for _, tt := range tests {
		p := tt.in
		p.normalize()
		if p.PageNumber != tt.wantPage || p.PageSize != tt.wantSize {
			t.Errorf("normalize(%+v) = %+v, want page %d size %d",
				tt.in, p, tt.wantPage, tt.wantSize)
		}
	}
}

func TestPagedList_EmptySet(t *testing.T) {
	r := openTestRepo(t)

	page, err := r.GetProductionSet(7, PagingParams{PageNumber: 1, PageSize: 10}, "Lathe")
	if err != nil {
		t.Fatalf("get production set: %v", err)
	}
	if page.TotalCount != 0 || page.TotalPages != 0 || len(page.Items) != 0 {
		t.Errorf("empty set returned count=%d pages=%d items=%d",
			page.TotalCount, page.TotalPages, len(page.Items))
	}
}
