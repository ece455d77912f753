package api

import (
	"bytes"
	"encoding/json"
)

// SuccessCode is the business status the backend uses for success
const SuccessCode = 200

// envelope is the outer JSON wrapper the backend puts around every payload
type envelope struct {
	Code    *int            `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// ValueResult re-wraps a primitive data payload (a bare number, string, or
// bool) so callers always receive a structured value.
type ValueResult struct {
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
}

// unwrapEnvelope extracts the business payload from a 2xx response body.
//
// A body that is a JSON object carrying a non-success code fails with a
// business error carrying that code and the backend message. Otherwise the
// inner data field is returned; a primitive data value is re-wrapped as
// {result, message, code}. Bodies without a detectable envelope pass
// through unchanged, an explicit fallback for non-conforming endpoints.
func unwrapEnvelope(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		// Not an object we understand; hand the raw body to the caller
		return trimmed, nil
	}

	if env.Code != nil && *env.Code != SuccessCode {
		msg := env.Message
		if msg == "" {
			msg = "operation failed"
		}
		return nil, &Error{Kind: KindBusiness, Code: *env.Code, Message: msg}
	}

	if len(env.Data) > 0 && !bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		data := bytes.TrimSpace(env.Data)
		if data[0] == '{' || data[0] == '[' {
			return data, nil
		}
		code := SuccessCode
		if env.Code != nil {
			code = *env.Code
		}
		msg := env.Message
		if msg == "" {
			msg = "OK"
		}
		wrapped, err := json.Marshal(ValueResult{Result: data, Message: msg, Code: code})
		if err != nil {
			return trimmed, nil
		}
		return wrapped, nil
	}

	// No data field: the whole body is the payload
	return trimmed, nil
}
