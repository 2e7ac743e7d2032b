package handler

import (
	"testing"
	"time"

	"github.com/rakhadavedra/blogstack/internal/repository"
	"github.com/rakhadavedra/blogstack/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBlogsRequestToQueryDefaults(t *testing.T) {
	r := &ListBlogsRequest{
		UserID:     "507f1f77bcf86cd799439011",
		CategoryID: "507f1f77bcf86cd799439012",
	}

	q := r.toQuery()

	assert.Equal(t, "507f1f77bcf86cd799439011", q.User.Hex())
	assert.Equal(t, "507f1f77bcf86cd799439012", q.Category.Hex())
	assert.Empty(t, q.Keyword)
	assert.Nil(t, q.Start)
	assert.Nil(t, q.End)
	assert.False(t, q.SortAscending)
	assert.Equal(t, repository.DefaultPage, q.Page)
	assert.Equal(t, repository.DefaultLimit, q.Limit)
}

func TestListBlogsRequestToQueryFull(t *testing.T) {
	r := &ListBlogsRequest{
		UserID:     "507f1f77bcf86cd799439011",
		CategoryID: "507f1f77bcf86cd799439012",
		Keywords:   "golang",
		StartDate:  "2024-01-01",
		EndDate:    "2024-06-30T23:59:59Z",
		SortOrder:  "asc",
		Page:       "3",
		Limit:      "25",
	}

	q := r.toQuery()

	assert.Equal(t, "golang", q.Keyword)
	require.NotNil(t, q.Start)
	require.NotNil(t, q.End)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *q.Start)
	assert.Equal(t, time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC), *q.End)
	assert.True(t, q.SortAscending)
	assert.Equal(t, int64(3), q.Page)
	assert.Equal(t, int64(25), q.Limit)
}

func TestListBlogsRequestSortOrderIsLiteralAsc(t *testing.T) {
	base := ListBlogsRequest{
		UserID:     "507f1f77bcf86cd799439011",
		CategoryID: "507f1f77bcf86cd799439012",
	}

	for order, want := range map[string]bool{
		"asc":        true,
		"desc":       false,
		"":           false,
		"ASC":        false, // not the literal "asc"
		"descending": false,
	} {
		r := base
		r.SortOrder = order
		assert.Equal(t, want, r.toQuery().SortAscending, "sortOrder=%q", order)
	}
}

func TestListBlogsRequestValidateCollectsAllIssues(t *testing.T) {
	r := &ListBlogsRequest{
		UserID:     "507f1f77bcf86cd799439011",
		CategoryID: "507f1f77bcf86cd799439012",
		StartDate:  "yesterday",
		EndDate:    "2024-13-45",
		Page:       "0",
		Limit:      "ten",
	}

	err := r.Validate()

	var custom validation.CustomValidationErrors
	require.ErrorAs(t, err, &custom)
	require.Len(t, custom, 4)

	fields := make([]string, 0, len(custom))
	for _, issue := range custom {
		fields = append(fields, issue.Field)
	}
	assert.Equal(t, []string{"startDate", "endDate", "page", "limit"}, fields)
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("2024-05-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseDate("01/05/2024")
	assert.Error(t, err)
}

func TestParsePositive(t *testing.T) {
	n, err := parsePositive("7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	for _, bad := range []string{"0", "-3", "1.5", "ten", ""} {
		_, err := parsePositive(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
