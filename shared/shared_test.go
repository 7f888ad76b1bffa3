package shared_test

import (
	"reflect"
	"testing"
	"time"

	"hallbook/shared"
	"hallbook/shared/constant"
	"hallbook/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil || *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "with remainder", total: 101, limit: 10, expected: 11},
		{name: "single page", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name   string  `db:"name"`
		Amount float64 `db:"amount"`
		Notes  string  `db:"notes"`
		hidden string  //nolint:unused
	}

	fields := shared.TransformFields(update{Name: "Rose Hall", Amount: 1500}, "admin")

	if fields["name"] != "Rose Hall" {
		t.Errorf("expected name field, got %v", fields["name"])
	}

	if fields["amount"] != 1500.0 {
		t.Errorf("expected amount field, got %v", fields["amount"])
	}

	if _, ok := fields["notes"]; ok {
		t.Error("zero-valued fields must be skipped")
	}

	if fields[constant.FieldModifiedBy] != "admin" {
		t.Errorf("expected modified_by to be set, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("b-1", "id", "bookings")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "b-1",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	if !reflect.DeepEqual(group, expected) {
		t.Errorf("expected %+v, got %+v", expected, group)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking", "get", "b-1"); got != "booking:get:b-1" {
		t.Errorf("unexpected cache key: %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	keyA := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 1, Limit: 10}, dto.FilterGroup{})
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, dto.FilterGroup{})

	if keyA == keyB {
		t.Error("expected different pages to produce different cache keys")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
