//go:build unit

package document_test

import (
	"testing"
	"time"

	"expo-gateway/internal/pkg/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	data := document.Data{
		Token:         "TOK-12345",
		Email:         "petar@example.com",
		Attendees:     2,
		DayIDs:        []int64{1, 2},
		OriginalPrice: 3000,
		FinalPrice:    2400,
		Title:         document.TitleRegistration,
		IssuedAt:      time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC),
	}

	pdf, err := document.Render(data)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	t.Run("update title renders too", func(t *testing.T) {
		data.Title = document.TitleUpdate
		pdf, err := document.Render(data)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Prijava_TOK-12345.pdf", document.FileName("TOK-12345"))
}
