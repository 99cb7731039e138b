package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"outlet-analytics/internal/ingestors"
	"outlet-analytics/internal/ingestors/mocks"
	"outlet-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestEventsHandler_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockIngestionService(ctrl)
	handler := errorHandlingAdapter(NewIngestEventsHandler(service))

	body := `{"events": [{"type": "item_view"}]}`
	service.EXPECT().
		IngestBatch(gomock.Any(), gomock.Any(), "10.0.0.1").
		DoAndReturn(func(_ context.Context, r io.Reader, _ string) (*ingestors.IngestResult, error) {
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, body, string(got))
			return &ingestors.IngestResult{Processed: 1, FoodItems: 1}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("x-forwarded-for", "10.0.0.1, 172.16.0.1")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var result ingestors.IngestResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.FoodItems)
	assert.Equal(t, 0, result.Outlets)
}

func TestIngestEventsHandler_ClientIPFromRemoteAddr(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockIngestionService(ctrl)
	handler := errorHandlingAdapter(NewIngestEventsHandler(service))

	service.EXPECT().
		IngestBatch(gomock.Any(), gomock.Any(), "192.0.2.1").
		Return(&ingestors.IngestResult{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"events": []}`))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestIngestEventsHandler_ValidationErrorReturns400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockIngestionService(ctrl)
	handler := errorHandlingAdapter(NewIngestEventsHandler(service))

	service.EXPECT().
		IngestBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewInvalidArgumentError("ING_1000", "invalid json", nil))

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Equal(t, "ING_1000", errResp.ErrorCode)
	assert.Equal(t, "invalid json", errResp.ErrorDescription)
}
