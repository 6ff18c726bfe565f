package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_ToSummary(t *testing.T) {
	book := Book{
		ID:        "book-1",
		Name:      "Laskar Pelangi",
		Year:      2005,
		Author:    "Andrea Hirata",
		Summary:   "A childhood on Belitung island",
		Publisher: "Bentang Pustaka",
		PageCount: 529,
		ReadPage:  86,
		Reading:   true,
	}

	summary := book.ToSummary()

	assert.Equal(t, BookSummary{
		ID:        "book-1",
		Name:      "Laskar Pelangi",
		Publisher: "Bentang Pustaka",
	}, summary)

	// The summary text stays a field on the full record.
	assert.Equal(t, "A childhood on Belitung island", book.Summary)
}

func TestBook_WireFormat(t *testing.T) {
	t.Run("summary text keeps its wire name", func(t *testing.T) {
		payload, err := json.Marshal(Book{Summary: "A childhood on Belitung island"})
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, "A childhood on Belitung island", decoded["summary"])
	})

	t.Run("book summary carries only the list fields", func(t *testing.T) {
		payload, err := json.Marshal(BookSummary{
			ID:        "book-1",
			Name:      "Laskar Pelangi",
			Publisher: "Bentang Pustaka",
		})
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, map[string]interface{}{
			"id":        "book-1",
			"name":      "Laskar Pelangi",
			"publisher": "Bentang Pustaka",
		}, decoded)
	})
}
