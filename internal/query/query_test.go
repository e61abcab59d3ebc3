package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Paging struct {
	Limit int `url:"limit,omitempty"`
	Page  int `url:"page,omitempty"`
}

type pagedFilter struct {
	Status string `url:"status,omitempty"`
	Paging
	Hidden string `url:"-"`
}

type listFilter struct {
	PayType string `url:"pay_type,omitempty"`
	Limit   int    `url:"limit,omitempty"`
	Sort    []Sort `url:"sort,omitempty"`
}

func TestEncode(t *testing.T) {
	t.Parallel()

	var nilParams *Params
	var missing *string

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "nil input",
			input: nil,
			want:  "",
		},
		{
			name:  "flat params keep insertion order",
			input: Params{}.Add("b", 2).Add("a", "x"),
			want:  "b=2&a=x",
		},
		{
			name:  "nil leaf is omitted",
			input: Params{}.Add("a", 1).Add("b", nil).Add("c", missing),
			want:  "a=1",
		},
		{
			name:  "sort specification",
			input: Params{}.Add("sort", []Sort{{Field: "created", Order: OrderDesc}}),
			want:  "sort=created%20desc",
		},
		{
			name: "multiple sorts keep order",
			input: Params{}.Add("sort", []Sort{
				{Field: "updated", Order: OrderAsc},
				{Field: "created", Order: OrderDesc},
			}),
			want: "sort=updated%20asc&sort=created%20desc",
		},
		{
			name:  "array repeats key",
			input: Params{}.Add("status", []string{"ACTIVE", "RUNNING"}),
			want:  "status=ACTIVE&status=RUNNING",
		},
		{
			name:  "empty array emits nothing",
			input: Params{}.Add("status", []string{}),
			want:  "",
		},
		{
			name:  "empty object emits nothing",
			input: Params{}.Add("filter", map[string]any{}),
			want:  "",
		},
		{
			name:  "nested object flattens with own keys",
			input: Params{}.Add("outer", Params{}.Add("inner", "v")),
			want:  "inner=v",
		},
		{
			name:  "map entries are sorted",
			input: map[string]any{"z": true, "a": 1.5},
			want:  "a=1.5&z=true",
		},
		{
			name:  "special characters are escaped",
			input: Params{}.Add("q", "a&b=c d"),
			want:  "q=a%26b%3Dc%20d",
		},
		{
			name:  "typed nil pointer params",
			input: nilParams,
			want:  "",
		},
		{
			name: "tagged struct",
			input: listFilter{
				PayType: "Card",
				Limit:   10,
				Sort:    []Sort{{Field: "created", Order: OrderDesc}},
			},
			want: "pay_type=Card&limit=10&sort=created%20desc",
		},
		{
			name:  "struct keeps field order with embedded fields inlined",
			input: pagedFilter{Status: "ACTIVE", Paging: Paging{Limit: 5, Page: 2}, Hidden: "x"},
			want:  "status=ACTIVE&limit=5&page=2",
		},
		{
			name: "sort objects",
			input: map[string]any{"sort": []any{
				map[string]any{"field": "created", "order": "desc"},
				map[string]string{"field": "id", "order": "asc"},
			}},
			want: "sort=created%20desc&sort=id%20asc",
		},
		{
			name:  "object without order is flattened",
			input: Params{}.Add("sort", map[string]any{"field": "created"}),
			want:  "field=created",
		},
		{
			name:  "struct omits empty fields",
			input: &listFilter{PayType: "Konbini"},
			want:  "pay_type=Konbini",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_KeyNotDefined(t *testing.T) {
	t.Parallel()

	for _, input := range []any{"abc", 42, true, Sort{Field: "created", Order: OrderAsc}, []string{"a"}} {
		_, err := Encode(input)
		assert.ErrorIs(t, err, ErrKeyNotDefined, "input %v", input)
	}
}

func TestEncode_UnsupportedType(t *testing.T) {
	t.Parallel()

	_, err := Encode(Params{}.Add("fn", func() {}))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = Encode(map[int]string{1: "a"})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"customer_id": "c_123",
		"limit":       20,
		"page":        uint(2),
		"deleted":     false,
		"name":        "山田 太郎",
	}

	encoded, err := Encode(in)
	require.NoError(t, err)

	parsed, err := url.ParseQuery(encoded)
	require.NoError(t, err)

	assert.Equal(t, "c_123", parsed.Get("customer_id"))
	assert.Equal(t, "20", parsed.Get("limit"))
	assert.Equal(t, "2", parsed.Get("page"))
	assert.Equal(t, "false", parsed.Get("deleted"))
	assert.Equal(t, "山田 太郎", parsed.Get("name"))
	assert.Len(t, parsed, len(in))
}
