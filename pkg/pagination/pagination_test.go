package pagination

import "testing"

func TestNewClamps(t *testing.T) {
	p := New(0, -3)
	if p.Number != 1 {
		t.Errorf("Number = %d, want 1", p.Number)
	}
	if p.Size != DefaultPageSize {
		t.Errorf("Size = %d, want %d", p.Size, DefaultPageSize)
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page int
		want int
	}{
		{1, 0},
		{2, 12},
		{3, 24},
	}

	for _, tt := range tests {
		p := New(tt.page, DefaultPageSize)
		if got := p.Offset(); got != tt.want {
			t.Errorf("Offset(page %d) = %d, want %d", tt.page, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		want  int
	}{
		{0, 0},
		{1, 1},
		{12, 1},
		{13, 2},
		{25, 3},
	}

	for _, tt := range tests {
		p := New(1, 12)
		if got := p.TotalPages(tt.total); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}
