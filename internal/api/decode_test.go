package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fruitmall/fruitmall-client/internal/model"
)

func TestDecodeItems_AllKnownShapes(t *testing.T) {
	items := `[{"productId":1,"name":"苹果","quantity":2},{"productId":2,"name":"香蕉","quantity":1}]`

	tests := []struct {
		name string
		body string
	}{
		{"bare array", items},
		{"data array", `{"data":` + items + `}`},
		{"data.items array", `{"data":{"items":` + items + `}}`},
		{"items array", `{"items":` + items + `}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := DecodeItems[model.CartItem]([]byte(test.body))
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, int64(1), got[0].ProductID)
			assert.Equal(t, 2, got[0].Quantity)
			assert.Equal(t, int64(2), got[1].ProductID)
		})
	}
}

func TestDecodeItems_EmptyAndNull(t *testing.T) {
	for _, body := range []string{"", "null", "[]", `{"data":[]}`} {
		got, err := DecodeItems[model.CartItem]([]byte(body))
		require.NoError(t, err, "body %q", body)
		assert.Empty(t, got, "body %q", body)
	}
}

func TestDecodeItems_UnrecognizedShape(t *testing.T) {
	tests := []string{
		`{"rows":[{"productId":1}]}`,
		`{"data":{"list":[]}}`,
		`"just a string"`,
		`42`,
	}

	for _, body := range tests {
		_, err := DecodeItems[model.CartItem]([]byte(body))
		assert.ErrorIs(t, err, ErrUnrecognizedShape, "body %q", body)
	}
}
