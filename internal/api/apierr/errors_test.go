package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mcmonitor/internal/model"
)

func TestWriteErrorMapsModelErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("lookup: %w", model.ErrServerNotFound), http.StatusNotFound, CodeServerNotFound},
		{model.ErrGuildNotFound, http.StatusNotFound, CodeGuildNotFound},
		{model.ErrInvalidServer, http.StatusBadRequest, CodeInvalidServer},
		{model.ErrNoToken, http.StatusUnauthorized, CodeUnauthorized},
		{NewStoreUnavailableError("try later"), http.StatusServiceUnavailable, CodeStoreUnavailable},
		{NewUpstreamError(), http.StatusBadGateway, CodeUpstreamError},
		{errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestInternalErrorsDoNotLeakDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("dial tcp 10.0.0.7:5432: refused"))
	assert.NotContains(t, rr.Body.String(), "10.0.0.7")
}
