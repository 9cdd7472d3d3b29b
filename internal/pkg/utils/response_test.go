package utils

import (
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildErrorResponse_DevMode(t *testing.T) {
	logger := zap.NewNop()
	cause := errors.New("collection is gone")

	decode := func(rr *httptest.ResponseRecorder) map[string]interface{} {
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		return body
	}

	t.Run("dev mode exposes the dev message", func(t *testing.T) {
		SetDevMode(true)
		defer SetDevMode(true)

		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrMongoDBFindDocument(cause))

		body := decode(rr)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body, "dev_message")
	})

	t.Run("production hides the dev message", func(t *testing.T) {
		SetDevMode(false)
		defer SetDevMode(true)

		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrMongoDBFindDocument(cause))

		body := decode(rr)
		assert.Equal(t, false, body["success"])
		assert.NotContains(t, body, "dev_message")
	})
}
