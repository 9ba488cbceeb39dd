package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	t.Run("SetAndGet", func(t *testing.T) {
		ctx := context.Background()
		ctx = SetUserContext(ctx, 100, "user@example.com", "USER")

		id, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, uint(100), id)
		assert.Equal(t, "user@example.com", GetUserEmailFromContext(ctx))
		assert.Equal(t, "USER", GetUserRoleFromContext(ctx))
	})

	t.Run("EmptyContext", func(t *testing.T) {
		ctx := context.Background()
		_, ok := GetUserIDFromContext(ctx)
		assert.False(t, ok)
		assert.Empty(t, GetUserEmailFromContext(ctx))
		assert.Empty(t, GetUserRoleFromContext(ctx))
	})
}

func TestToUint(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  uint
		expectErr bool
	}{
		{name: "Valid number", input: "123", expected: 123},
		{name: "Zero", input: "0", expected: 0},
		{name: "Negative number", input: "-1", expectErr: true},
		{name: "Non-numeric string", input: "abc", expectErr: true},
		{name: "Empty string", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToUint(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestPtrHelpers(t *testing.T) {
	t.Run("StrPtr", func(t *testing.T) {
		ptr := StrPtr("test string")
		assert.NotNil(t, ptr)
		assert.Equal(t, "test string", *ptr)
	})

	t.Run("PtrString", func(t *testing.T) {
		str := "test"
		assert.Equal(t, "test", PtrString(&str))
		assert.Equal(t, "", PtrString(nil))
	})
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "error message", http.StatusBadRequest)

	resp := w.Result()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "error message", body["error"])
}
