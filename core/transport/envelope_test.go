package transport_test

import (
	"encoding/json"
	"testing"

	"storage-sdk/core/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorInfo_Error(t *testing.T) {
	tests := []struct {
		name string
		info transport.ErrorInfo
		want string
	}{
		{"CodeAndStatus", transport.ErrorInfo{Code: "duplicate", Message: "bucket exists", Status: 409}, "duplicate (status 409): bucket exists"},
		{"CodeOnly", transport.ErrorInfo{Code: "not_found", Message: "no such bucket"}, "not_found: no such bucket"},
		{"MessageOnly", transport.ErrorInfo{Message: "boom"}, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Error())
		})
	}
}

func TestEnvelope_HasData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"Object", `{"data":{"id":"b1"},"errors":null}`, true},
		{"EmptyArray", `{"data":[],"errors":null}`, true},
		{"Null", `{"data":null,"errors":{"message":"x"}}`, false},
		{"Missing", `{"errors":{"message":"x"}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env transport.Envelope
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &env))
			assert.Equal(t, tt.want, env.HasData())
		})
	}
}

func TestEnvelope_Err(t *testing.T) {
	t.Run("NoErrors", func(t *testing.T) {
		env, err := transport.NewDataEnvelope(map[string]string{"id": "b1"})
		require.NoError(t, err)
		assert.NoError(t, env.Err())
		assert.JSONEq(t, `{"id":"b1"}`, string(env.Data))
	})

	t.Run("WithErrors", func(t *testing.T) {
		env := transport.NewErrorEnvelope("forbidden", "denied", 403)
		err := env.Err()
		require.Error(t, err)

		var info *transport.ErrorInfo
		require.ErrorAs(t, err, &info)
		assert.Equal(t, "forbidden", info.Code)
		assert.Equal(t, 403, info.Status)
	})

	t.Run("MarshalsNullData", func(t *testing.T) {
		out, err := json.Marshal(transport.NewErrorEnvelope("x", "y", 0))
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":null,"errors":{"code":"x","message":"y"}}`, string(out))
	})
}
