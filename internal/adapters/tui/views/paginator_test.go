package views

import "testing"

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if p.TotalPages() != 3 {
		t.Errorf("TotalPages() = %d, want 3", p.TotalPages())
	}

	for range 4 {
		p.CursorDown()
	}
	if p.Cursor() != 4 || p.CurrentPage() != 2 {
		t.Errorf("cursor %d page %d, want 4 and 2", p.Cursor(), p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("VisibleRange() = %d,%d, want 3,6", start, end)
	}

	p.NextPage()
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("last page range = %d,%d, want 6,7", start, end)
	}
	if p.NextPage() {
		t.Error("NextPage past the end should fail")
	}

	p.SetTotal(2)
	if p.Cursor() != 1 || p.CurrentPage() != 1 {
		t.Errorf("after shrink cursor %d page %d", p.Cursor(), p.CurrentPage())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 || p.CursorDown() {
		t.Error("empty list should pin cursor to 0")
	}
}

func TestPaginator_SetPageSize(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(30)
	p.SetCursor(12)

	p.SetPageSize(5)
	if start, _ := p.VisibleRange(); start != 10 {
		t.Errorf("page start = %d, want 10", start)
	}

	p.SetPageSize(0)
	if start, _ := p.VisibleRange(); start != 10 {
		t.Error("non-positive size should be ignored")
	}
}
