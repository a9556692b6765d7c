package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "tastybites/internal/api/http"
	"tastybites/internal/domain"
	"tastybites/internal/mocks"
	"tastybites/internal/service"
)

func setupTestRouter(mockSvc *mocks.MenuServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(mockSvc, service.DefaultQRGenerator{BaseURL: "http://localhost"}, testLogger())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_listItems(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		prepareMocks func(mockSvc *mocks.MenuServiceInterface)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "no_filters",
			target: "/api/items",
			prepareMocks: func(mockSvc *mocks.MenuServiceInterface) {
				mockSvc.On("List", mock.Anything, "", "").Return(sampleItems(), nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "filters_forwarded_from_query",
			target: "/api/items?category=Pizza&search=Margherita",
			prepareMocks: func(mockSvc *mocks.MenuServiceInterface) {
				mockSvc.On("List", mock.Anything, "Margherita", "Pizza").Return(sampleItems()[1:], nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "query_failure_is_500",
			target: "/api/items",
			prepareMocks: func(mockSvc *mocks.MenuServiceInterface) {
				mockSvc.On("List", mock.Anything, "", "").Return(nil, assert.AnError).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewMenuServiceInterface(t)
			testCase.prepareMocks(mockSvc)
			router := setupTestRouter(mockSvc)

			req := httptest.NewRequest(http.MethodGet, testCase.target, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedCode == http.StatusOK {
				var items []domain.MenuItem
				assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&items))
				assert.Len(t, items, testCase.expectedLen)
			}
		})
	}
}

func TestHandler_listItems_EmptyResultIsJSONArray(t *testing.T) {
	mockSvc := mocks.NewMenuServiceInterface(t)
	mockSvc.On("List", mock.Anything, "Nothing", "").Return([]domain.MenuItem{}, nil).Once()
	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/items?search=Nothing", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestHandler_getItem(t *testing.T) {
	item := sampleItems()[0]

	tests := []struct {
		name         string
		target       string
		prepareMocks func(mockSvc *mocks.MenuServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "found",
			target: "/api/items/1",
			prepareMocks: func(mockSvc *mocks.MenuServiceInterface) {
				mockSvc.On("Get", mock.Anything, 1).Return(&item, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"Classic Cheeseburger"`,
		},
		{
			name:   "not_found",
			target: "/api/items/99",
			prepareMocks: func(mockSvc *mocks.MenuServiceInterface) {
				mockSvc.On("Get", mock.Anything, 99).Return(nil, nil).Once()
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Item not found"}`,
		},
		{
			name:         "non_numeric_id",
			target:       "/api/items/abc",
			prepareMocks: func(mockSvc *mocks.MenuServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "invalid_id_rejected_by_service",
			target: "/api/items/-1",
			prepareMocks: func(mockSvc *mocks.MenuServiceInterface) {
				mockSvc.On("Get", mock.Anything, -1).Return(nil, service.ErrInvalidItemID).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "query_failure_is_500",
			target: "/api/items/2",
			prepareMocks: func(mockSvc *mocks.MenuServiceInterface) {
				mockSvc.On("Get", mock.Anything, 2).Return(nil, assert.AnError).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewMenuServiceInterface(t)
			testCase.prepareMocks(mockSvc)
			router := setupTestRouter(mockSvc)

			req := httptest.NewRequest(http.MethodGet, testCase.target, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getItemQRCode(t *testing.T) {
	item := sampleItems()[0]

	mockSvc := mocks.NewMenuServiceInterface(t)
	mockSvc.On("Get", mock.Anything, 1).Return(&item, nil).Once()
	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/items/1/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.NotEmpty(t, recorder.Body.Bytes())
}

func TestHandler_getItemQRCode_InvalidIDIsBadRequest(t *testing.T) {
	mockSvc := mocks.NewMenuServiceInterface(t)
	mockSvc.On("Get", mock.Anything, -1).Return(nil, service.ErrInvalidItemID).Once()
	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/items/-1/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_getItemQRCode_NotFound(t *testing.T) {
	mockSvc := mocks.NewMenuServiceInterface(t)
	mockSvc.On("Get", mock.Anything, 99).Return(nil, nil).Once()
	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/items/99/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_healthCheck(t *testing.T) {
	mockSvc := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "storefront-api", body["service"])
}
