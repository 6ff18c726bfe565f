package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bondopangaji/bookshelf-api/internal/entities"
)

// bookInputGen draws inputs that pass validation: a non-empty name
// and readPage <= pageCount.
func bookInputGen() *rapid.Generator[entities.BookInput] {
	return rapid.Custom(func(t *rapid.T) entities.BookInput {
		pageCount := rapid.IntRange(0, 500).Draw(t, "pageCount")
		return entities.BookInput{
			Name:      rapid.StringN(1, 20, -1).Draw(t, "name"),
			Year:      rapid.IntRange(1900, 2030).Draw(t, "year"),
			Author:    rapid.String().Draw(t, "author"),
			Summary:   rapid.String().Draw(t, "summary"),
			Publisher: rapid.String().Draw(t, "publisher"),
			PageCount: pageCount,
			ReadPage:  rapid.IntRange(0, pageCount).Draw(t, "readPage"),
			Reading:   rapid.Bool().Draw(t, "reading"),
		}
	})
}

func TestCreateStoresDerivedFields(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := NewRepository()
		input := bookInputGen().Draw(t, "input")

		id, err := repo.Create(input)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		book, err := repo.GetByID(id)
		require.NoError(t, err)

		assert.Equal(t, input.Name, book.Name)
		assert.Equal(t, input.Year, book.Year)
		assert.Equal(t, input.Author, book.Author)
		assert.Equal(t, input.Summary, book.Summary)
		assert.Equal(t, input.Publisher, book.Publisher)
		assert.Equal(t, input.PageCount, book.PageCount)
		assert.Equal(t, input.ReadPage, book.ReadPage)
		assert.Equal(t, input.Reading, book.Reading)
		assert.Equal(t, input.ReadPage == input.PageCount, book.Finished)
		assert.True(t, book.InsertedAt.Equal(book.UpdatedAt))
	})
}

func TestInvalidWritesLeaveCatalogUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := NewRepository()
		existingID, err := repo.Create(bookInputGen().Draw(t, "existing"))
		require.NoError(t, err)
		existing, err := repo.GetByID(existingID)
		require.NoError(t, err)

		invalid := bookInputGen().Draw(t, "invalid")
		if rapid.Bool().Draw(t, "dropName") {
			invalid.Name = ""
		} else {
			invalid.ReadPage = invalid.PageCount + rapid.IntRange(1, 100).Draw(t, "excess")
		}

		_, createErr := repo.Create(invalid)
		assert.Error(t, createErr)
		assert.Equal(t, 1, repo.Count())

		updateErr := repo.UpdateByID(existingID, invalid)
		assert.Error(t, updateErr)

		unchanged, err := repo.GetByID(existingID)
		require.NoError(t, err)
		assert.Equal(t, existing, unchanged)
	})
}

func TestUpdateWithSameFieldsOnlyTouchesUpdatedAt(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := NewRepository()
		input := bookInputGen().Draw(t, "input")

		id, err := repo.Create(input)
		require.NoError(t, err)
		before, err := repo.GetByID(id)
		require.NoError(t, err)

		require.NoError(t, repo.UpdateByID(id, input))

		after, err := repo.GetByID(id)
		require.NoError(t, err)

		assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))

		// Everything but updatedAt must round-trip unchanged.
		after.UpdatedAt = before.UpdatedAt
		assert.Equal(t, before, after)
	})
}

func TestDeleteUnknownIDLeavesSizeUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := NewRepository()
		n := rapid.IntRange(0, 10).Draw(t, "n")
		for i := 0; i < n; i++ {
			_, err := repo.Create(bookInputGen().Draw(t, "input"))
			require.NoError(t, err)
		}

		err := repo.DeleteByID(rapid.StringN(1, 40, -1).Draw(t, "unknownID"))

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, n, repo.Count())
	})
}

func TestListMatchesSequentialModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := NewRepository()

		inputs := rapid.SliceOfN(bookInputGen(), 0, 15).Draw(t, "inputs")
		ids := make([]string, len(inputs))
		for i, input := range inputs {
			id, err := repo.Create(input)
			require.NoError(t, err)
			ids[i] = id
		}

		filter := Filter{Name: rapid.StringN(0, 3, -1).Draw(t, "nameFilter")}
		switch rapid.IntRange(0, 2).Draw(t, "readingFilter") {
		case 1:
			filter.Reading = boolPtr(true)
		case 2:
			filter.Reading = boolPtr(false)
		}
		switch rapid.IntRange(0, 2).Draw(t, "finishedFilter") {
		case 1:
			filter.Finished = boolPtr(true)
		case 2:
			filter.Finished = boolPtr(false)
		}

		expected := []string{}
		for i, input := range inputs {
			if filter.Name != "" && !strings.Contains(strings.ToLower(input.Name), strings.ToLower(filter.Name)) {
				continue
			}
			if filter.Reading != nil && input.Reading != *filter.Reading {
				continue
			}
			finished := input.ReadPage == input.PageCount
			if filter.Finished != nil && finished != *filter.Finished {
				continue
			}
			expected = append(expected, ids[i])
		}

		got := []string{}
		for _, book := range repo.List(filter) {
			got = append(got, book.ID)
		}

		assert.Equal(t, expected, got)
	})
}
