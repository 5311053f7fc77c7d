package data

import (
	"testing"
	"time"

	"ScoreScreenApi/internal/assert"
)

func TestFiltersSorting(t *testing.T) {
	f := Filters{
		Sort:         "-played_at",
		SortSafeList: []string{"pin", "-pin", "played_at", "-played_at"},
	}

	assert.Equal(t, f.sortColumn(), "played_at")
	assert.Equal(t, f.sortDirection(), "DESC")

	f.Sort = "pin"
	assert.Equal(t, f.sortColumn(), "pin")
	assert.Equal(t, f.sortDirection(), "ASC")
}

func TestFiltersSortColumnPanicsOffSafelist(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for unsafe sort value")
		}
	}()

	f := Filters{Sort: "password_hash; DROP TABLE users", SortSafeList: []string{"pin"}}
	f.sortColumn()
}

func TestFiltersPaging(t *testing.T) {
	f := Filters{Page: 3, PageSize: 20}

	assert.Equal(t, f.limit(), 20)
	assert.Equal(t, f.offset(), 40)
}

func TestCalculateMetadata(t *testing.T) {
	metadata := calculateMetadata(102, 2, 20)

	assert.Equal(t, metadata.CurrentPage, 2)
	assert.Equal(t, metadata.PageSize, 20)
	assert.Equal(t, metadata.FirstPage, 1)
	assert.Equal(t, metadata.LastPage, 6)
	assert.Equal(t, metadata.TotalRecords, 102)

	empty := calculateMetadata(0, 1, 20)
	assert.Equal(t, empty, Metadata{})
}

func TestDateRange(t *testing.T) {
	now := time.Now()

	var empty DateRange
	assert.Equal(t, empty.IsEmpty(), true)
	assert.Equal(t, empty.IsFull(), false)

	half := DateRange{AfterDate: &now}
	assert.Equal(t, half.IsEmpty(), false)
	assert.Equal(t, half.IsFull(), false)

	full := DateRange{AfterDate: &now, BeforeDate: &now}
	assert.Equal(t, full.IsFull(), true)
}
