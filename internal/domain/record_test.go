package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToID(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected int64
		ok       bool
	}{
		{name: "int64 from database scan", value: int64(42), expected: 42, ok: true},
		{name: "int32 from database scan", value: int32(7), expected: 7, ok: true},
		{name: "int", value: 19, expected: 19, ok: true},
		{name: "float64 from JSON decode", value: float64(12), expected: 12, ok: true},
		{name: "string is not an identity", value: "12", expected: 0, ok: false},
		{name: "nil is not an identity", value: nil, expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ToID(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestRecordID(t *testing.T) {
	t.Run("returns identity when present", func(t *testing.T) {
		rec := Record{"id": int64(5), "name": "Block 15"}
		id, ok := rec.ID()
		assert.True(t, ok)
		assert.Equal(t, int64(5), id)
	})

	t.Run("reports absence of identity", func(t *testing.T) {
		rec := Record{"name": "Block 15"}
		_, ok := rec.ID()
		assert.False(t, ok)
	})
}

func TestResourceSingular(t *testing.T) {
	assert.Equal(t, "business", ResourceBusiness.Singular())
	assert.Equal(t, "review", ResourceReview.Singular())
	assert.Equal(t, "photo", ResourcePhoto.Singular())
	assert.Equal(t, "user", ResourceUser.Singular())
	assert.Equal(t, "widgets", Resource("widgets").Singular())
}

func TestErrorUnwrapping(t *testing.T) {
	t.Run("not found error unwraps to sentinel", func(t *testing.T) {
		err := NewNotFoundError("business", "12")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, "business not found: 12", err.Error())
	})

	t.Run("validation error unwraps to sentinel", func(t *testing.T) {
		err := NewValidationError("review", "missing required fields")
		assert.True(t, errors.Is(err, ErrInvalidInput))

		var ve *ValidationError
		assert.True(t, errors.As(err, &ve))
		assert.Equal(t, "review", ve.Resource)
	})
}
