package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		defLimit   int
		maxLimit   int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", query: "", defLimit: 50, maxLimit: 200, wantLimit: 50, wantOffset: 0},
		{name: "explicit values", query: "limit=10&offset=20", defLimit: 50, maxLimit: 200, wantLimit: 10, wantOffset: 20},
		{name: "limit above max clamps", query: "limit=500", defLimit: 50, maxLimit: 200, wantLimit: 200, wantOffset: 0},
		{name: "limit zero clamps to one", query: "limit=0", defLimit: 50, maxLimit: 200, wantLimit: 1, wantOffset: 0},
		{name: "negative offset clamps", query: "offset=-5", defLimit: 50, maxLimit: 200, wantLimit: 50, wantOffset: 0},
		{name: "non-numeric ignored", query: "limit=abc&offset=xyz", defLimit: 50, maxLimit: 200, wantLimit: 50, wantOffset: 0},
		{name: "degenerate max", query: "limit=10", defLimit: 5, maxLimit: 0, wantLimit: 1, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			limit, offset := ParseLimitOffset(req, tt.defLimit, tt.maxLimit)
			if limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", limit, tt.wantLimit)
			}
			if offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", offset, tt.wantOffset)
			}
		})
	}
}
