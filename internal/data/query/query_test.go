package query

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
)

var boothSpec = Spec{
	Fields: []Field{
		{Param: "assembly_id", Column: "assembly_id", Kind: ID},
		{Param: "is_sensitive", Column: "is_sensitive", Kind: Bool},
		{Param: "from", Column: "created_at", Kind: Time, Op: ">="},
	},
	SearchColumns: []string{"name", "booth_number"},
	DefaultSort:   "name",
	Sortable:      []string{"name", "created_at"},
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse(url.Values{}, boothSpec)
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, c.Page)
	assert.Equal(t, DefaultLimit, c.Limit)
	assert.Equal(t, 0, c.Offset())
	assert.Equal(t, Order{Column: "name"}, c.Order)
	assert.Empty(t, c.Clauses)
}

func TestParseMalformedPagingFallsBack(t *testing.T) {
	c, err := Parse(url.Values{"page": {"abc"}, "limit": {"-4"}}, boothSpec)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 10, c.Limit)

	c, err = Parse(url.Values{"limit": {"5000"}}, boothSpec)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, c.Limit)
}

func TestParseFiltersAndSort(t *testing.T) {
	id := uuid.New()
	c, err := Parse(url.Values{
		"assembly_id":  {id.String()},
		"is_sensitive": {"true"},
		"from":         {"2024-01-02"},
		"search":       {"  School "},
		"sort":         {"-created_at"},
		"page":         {"3"},
		"limit":        {"20"},
	}, boothSpec)
	require.NoError(t, err)
	require.Len(t, c.Clauses, 3)
	assert.Equal(t, Clause{Column: "assembly_id", Op: "=", Value: id}, c.Clauses[0])
	assert.Equal(t, true, c.Clauses[1].Value)
	assert.Equal(t, ">=", c.Clauses[2].Op)
	assert.Equal(t, "School", c.Search)
	assert.Equal(t, Order{Column: "created_at", Desc: true}, c.Order)
	assert.Equal(t, 40, c.Offset())
}

func TestParseRejectsBadFilterAndSort(t *testing.T) {
	_, err := Parse(url.Values{"assembly_id": {"nope"}}, boothSpec)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))

	_, err = Parse(url.Values{"sort": {"password"}}, boothSpec)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))
}

func TestPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Pages(tc.total, tc.limit), "Pages(%d, %d)", tc.total, tc.limit)
	}
}

func TestWhereDoesNotAliasClauses(t *testing.T) {
	base := Criteria{Clauses: make([]Clause, 0, 4)}
	a := base.Where("state_id", "a")
	b := base.Where("state_id", "b")
	assert.Equal(t, "a", a.Clauses[0].Value)
	assert.Equal(t, "b", b.Clauses[0].Value)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "50!% off!_now!!", escapeLike("50% off_now!"))
}
