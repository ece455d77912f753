package api

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapEnvelope_SuccessObject(t *testing.T) {
	payload, err := unwrapEnvelope([]byte(`{"code":200,"data":{"id":1,"name":"苹果"},"message":"OK"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"苹果"}`, string(payload))
}

func TestUnwrapEnvelope_SuccessArray(t *testing.T) {
	payload, err := unwrapEnvelope([]byte(`{"code":200,"data":[1,2,3],"message":"OK"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(payload))
}

func TestUnwrapEnvelope_BusinessFailure(t *testing.T) {
	_, err := unwrapEnvelope([]byte(`{"code":5001,"data":null,"message":"out of stock"}`))
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindBusiness, apiErr.Kind)
	assert.Equal(t, 5001, apiErr.Code)
	assert.Equal(t, "out of stock", apiErr.Message)
}

func TestUnwrapEnvelope_BusinessFailureDefaultMessage(t *testing.T) {
	_, err := unwrapEnvelope([]byte(`{"code":500}`))
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "operation failed", apiErr.Message)
}

func TestUnwrapEnvelope_PrimitiveDataRewrapped(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"code":200,"data":1,"message":"created"}`, `1`},
		{"bool", `{"code":200,"data":true,"message":"created"}`, `true`},
		{"string", `{"code":200,"data":"ok","message":"created"}`, `"ok"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			payload, err := unwrapEnvelope([]byte(test.body))
			require.NoError(t, err)

			var vr ValueResult
			require.NoError(t, json.Unmarshal(payload, &vr))
			assert.Equal(t, test.want, string(vr.Result))
			assert.Equal(t, "created", vr.Message)
			assert.Equal(t, SuccessCode, vr.Code)
		})
	}
}

func TestUnwrapEnvelope_NoEnvelopePassesThrough(t *testing.T) {
	body := `{"items":[{"productId":1}]}`
	payload, err := unwrapEnvelope([]byte(body))
	require.NoError(t, err)
	assert.JSONEq(t, body, string(payload))
}

func TestUnwrapEnvelope_BareArrayPassesThrough(t *testing.T) {
	body := `[{"productId":1}]`
	payload, err := unwrapEnvelope([]byte(body))
	require.NoError(t, err)
	assert.JSONEq(t, body, string(payload))
}

func TestUnwrapEnvelope_NoDataReturnsWholeBody(t *testing.T) {
	body := `{"code":200,"message":"done"}`
	payload, err := unwrapEnvelope([]byte(body))
	require.NoError(t, err)
	assert.JSONEq(t, body, string(payload))
}
