package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Pagination
	}{
		{"defaults", "", Pagination{Page: 1, Limit: 20, Offset: 0}},
		{"second page", "?page=2&limit=50", Pagination{Page: 2, Limit: 50, Offset: 50}},
		{"garbage falls back", "?page=abc&limit=xyz", Pagination{Page: 1, Limit: 20, Offset: 0}},
		{"negative values", "?page=-3&limit=-10", Pagination{Page: 1, Limit: 20, Offset: 0}},
		{"limit capped", "?limit=5000", Pagination{Page: 1, Limit: MaxPageSize, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got Pagination
			app.Get("/", func(c *fiber.Ctx) error {
				got = ParsePagination(c)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/"+tt.query, nil)
			if _, err := app.Test(req); err != nil {
				t.Fatalf("app.Test: %v", err)
			}

			if got != tt.want {
				t.Errorf("ParsePagination(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}
