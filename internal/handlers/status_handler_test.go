package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"valentine_week/internal/handlers"
	"valentine_week/internal/model"
	svc_mocks "valentine_week/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatusHandler_CreateStatusCheck(t *testing.T) {
	created := &model.StatusCheck{ID: "6f1c1f0e-6a4b-4a57-9a35-1f7e0d1e2b3c", ClientName: "web", Timestamp: time.Now().UTC()}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *svc_mocks.StatusService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 作成したレコードを返す",
			body: model.CreateStatusCheckRequest{ClientName: "web"},
			setupMock: func(m *svc_mocks.StatusService) {
				m.On("CreateStatusCheck", mock.Anything, &model.CreateStatusCheckRequest{ClientName: "web"}).Return(created, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: client_name がない",
			body:           `{}`,
			setupMock:      func(m *svc_mocks.StatusService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: ボディが空",
			body:           nil,
			setupMock:      func(m *svc_mocks.StatusService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewStatusService(t)
			tt.setupMock(mockService)
			handler := handlers.NewStatusHandler(mockService, testLogger)

			rr := httptest.NewRecorder()
			handler.CreateStatusCheck(rr, newJSONRequest(t, http.MethodPost, "/api/status", tt.body))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeErrorResponse(t, rr.Body.Bytes()).Code)
				return
			}
			var got model.StatusCheck
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, created.ID, got.ID)
			assert.Equal(t, "web", got.ClientName)
		})
	}
}

func TestStatusHandler_ListStatusChecks(t *testing.T) {
	t.Run("正常系: サービスが nil を返しても空配列", func(t *testing.T) {
		mockService := svc_mocks.NewStatusService(t)
		mockService.On("ListStatusChecks", mock.Anything).Return(nil, nil).Once()
		handler := handlers.NewStatusHandler(mockService, testLogger)

		rr := httptest.NewRecorder()
		handler.ListStatusChecks(rr, newJSONRequest(t, http.MethodGet, "/api/status", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("正常系: 一覧を返す", func(t *testing.T) {
		mockService := svc_mocks.NewStatusService(t)
		mockService.On("ListStatusChecks", mock.Anything).Return([]*model.StatusCheck{
			{ID: "a", ClientName: "one"},
			{ID: "b", ClientName: "two"},
		}, nil).Once()
		handler := handlers.NewStatusHandler(mockService, testLogger)

		rr := httptest.NewRecorder()
		handler.ListStatusChecks(rr, newJSONRequest(t, http.MethodGet, "/api/status", nil))

		var got []model.StatusCheck
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "two", got[1].ClientName)
	})
}
