package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localspot/business-directory/internal/domain"
)

func TestAttachMatches(t *testing.T) {
	t.Run("attaches matching reviews by foreign key", func(t *testing.T) {
		users := []domain.Record{
			{"id": int64(7), "name": "Margaery"},
			{"id": int64(8), "name": "Sansa"},
		}
		reviews := []domain.Record{
			{"id": int64(1), "userid": int64(7), "stars": 4.5},
			{"id": int64(2), "userid": int64(9), "stars": 2.0},
		}

		AttachMatches(users, reviews, "userid", "reviews")

		attached, ok := users[0]["reviews"].([]domain.Record)
		require.True(t, ok)
		require.Len(t, attached, 1)
		assert.Equal(t, int64(1), attached[0]["id"])
	})

	t.Run("owners with no matches get an empty slice not an absent field", func(t *testing.T) {
		users := []domain.Record{{"id": int64(8)}}
		reviews := []domain.Record{{"id": int64(2), "userid": int64(9)}}

		AttachMatches(users, reviews, "userid", "reviews")

		attached, ok := users[0]["reviews"].([]domain.Record)
		require.True(t, ok)
		assert.Empty(t, attached)
	})

	t.Run("matches across numeric representations", func(t *testing.T) {
		// The store scans BIGINT as int64, while records built from JSON
		// carry float64.
		users := []domain.Record{{"id": int64(7)}}
		photos := []domain.Record{{"id": int64(3), "userid": float64(7)}}

		AttachMatches(users, photos, "userid", "photos")

		attached, ok := users[0]["photos"].([]domain.Record)
		require.True(t, ok)
		assert.Len(t, attached, 1)
	})

	t.Run("skips nil and keyless related records", func(t *testing.T) {
		users := []domain.Record{{"id": int64(7)}}
		photos := []domain.Record{
			nil,
			{"id": int64(4)},
			{"id": int64(5), "userid": int64(7)},
		}

		AttachMatches(users, photos, "userid", "photos")

		attached, ok := users[0]["photos"].([]domain.Record)
		require.True(t, ok)
		assert.Len(t, attached, 1)
	})

	t.Run("owner without identity still gets an empty slice", func(t *testing.T) {
		users := []domain.Record{{"name": "no id"}}

		AttachMatches(users, nil, "userid", "reviews")

		attached, ok := users[0]["reviews"].([]domain.Record)
		require.True(t, ok)
		assert.Empty(t, attached)
	})
}
