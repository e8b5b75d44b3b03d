package pagination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, DefaultLimit, 0},
		{"negative page", -3, 20, 1, 20, 0},
		{"limit capped", 1, 500, 1, MaxLimit, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"third page custom limit", 3, 25, 3, 25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.page, tt.limit)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("Normalize(%d, %d) = {page:%d limit:%d offset:%d}, want {page:%d limit:%d offset:%d}",
					tt.page, tt.limit, p.Page, p.Limit, p.Offset, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestGetMeta(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int64
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"empty", 1, 10, 0, 0, false, false},
		{"single page", 1, 10, 7, 1, false, false},
		{"exact fit", 1, 10, 20, 2, true, false},
		{"middle page", 2, 10, 35, 4, true, true},
		{"last page", 4, 10, 35, 4, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := GetMeta(Normalize(tt.page, tt.limit), tt.total)
			if m.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", m.TotalPages, tt.wantTotalPages)
			}
			if m.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", m.HasNext, tt.wantHasNext)
			}
			if m.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", m.HasPrev, tt.wantHasPrev)
			}
		})
	}
}
