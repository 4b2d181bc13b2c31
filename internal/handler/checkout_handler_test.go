package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mini-market/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutResponse), args.Error(1)
}

func (m *MockCheckoutService) GetReceipt(ctx context.Context, id uuid.UUID) (*model.CheckoutResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutResponse), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func TestCheckoutHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	receiptID := uuid.New()
	testResponse := &model.CheckoutResponse{
		ID: receiptID,
		Items: []model.ReceiptItem{
			{ID: uuid.New(), ReceiptID: receiptID, Product: "A", Quantity: 3},
			{ID: uuid.New(), ReceiptID: receiptID, Product: "B", Quantity: 5},
			{ID: uuid.New(), ReceiptID: receiptID, Product: "C", Quantity: 1},
		},
		Total:     240,
		Currency:  "USD",
		CreatedAt: time.Now(),
	}

	emptyResponse := &model.CheckoutResponse{
		ID:        uuid.New(),
		Items:     []model.ReceiptItem{},
		Total:     0,
		Currency:  "USD",
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		method         string
		requestBody    interface{}
		mockReturn     *model.CheckoutResponse
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodPost,
			requestBody:    &model.CheckoutRequest{Items: strPtr("ABBACBBAB")},
			mockReturn:     testResponse,
			mockError:      nil,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Empty items is a valid checkout",
			method:         http.MethodPost,
			requestBody:    &model.CheckoutRequest{Items: strPtr("")},
			mockReturn:     emptyResponse,
			mockError:      nil,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Missing items field",
			method:         http.MethodPost,
			requestBody:    &model.CheckoutRequest{Items: nil},
			mockReturn:     nil,
			mockError:      model.ErrMissingItems,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidArgument,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			requestBody:    "invalid json",
			mockReturn:     nil,
			mockError:      nil,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			requestBody:    nil,
			mockReturn:     nil,
			mockError:      nil,
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
		{
			name:           "Service internal error",
			method:         http.MethodPost,
			requestBody:    &model.CheckoutRequest{Items: strPtr("AB")},
			mockReturn:     nil,
			mockError:      errors.New("database connection failed"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCheckoutService)
			handler := NewCheckoutHandler(mockService, logger)

			var body []byte
			if tt.requestBody != nil {
				if str, ok := tt.requestBody.(string); ok {
					body = []byte(str)
				} else {
					var err error
					body, err = json.Marshal(tt.requestBody)
					require.NoError(t, err)
				}
			}

			if tt.expectService {
				mockService.On("Checkout", mock.Anything, mock.AnythingOfType("*model.CheckoutRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/checkout", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var errResp ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedCode, errResp.Code)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestCheckoutHandler_Create_ResponseBody(t *testing.T) {
	logger := zerolog.Nop()

	receiptID := uuid.New()
	testResponse := &model.CheckoutResponse{
		ID: receiptID,
		Items: []model.ReceiptItem{
			{ID: uuid.New(), ReceiptID: receiptID, Product: "B", Quantity: 5},
		},
		Total:     150,
		Currency:  "USD",
		CreatedAt: time.Now(),
	}

	mockService := new(MockCheckoutService)
	handler := NewCheckoutHandler(mockService, logger)

	mockService.On("Checkout", mock.Anything, mock.AnythingOfType("*model.CheckoutRequest")).
		Return(testResponse, nil)

	body, err := json.Marshal(&model.CheckoutRequest{Items: strPtr("BBBBB")})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp model.CheckoutResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, receiptID, resp.ID)
	assert.Equal(t, int64(150), resp.Total)
	assert.Equal(t, "USD", resp.Currency)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "B", resp.Items[0].Product)
	assert.Equal(t, 5, resp.Items[0].Quantity)
}

func TestCheckoutHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	receiptID := uuid.New()
	testResponse := &model.CheckoutResponse{
		ID: receiptID,
		Items: []model.ReceiptItem{
			{ID: uuid.New(), ReceiptID: receiptID, Product: "A", Quantity: 3},
		},
		Total:     60,
		Currency:  "USD",
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		method         string
		path           string
		mockReturn     *model.CheckoutResponse
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			path:           "/api/receipts/" + receiptID.String(),
			mockReturn:     testResponse,
			mockError:      nil,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Receipt not found - service returns nil",
			method:         http.MethodGet,
			path:           "/api/receipts/" + uuid.New().String(),
			mockReturn:     nil,
			mockError:      nil,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeReceiptNotFound,
			expectService:  true,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			path:           "/api/receipts/" + uuid.New().String(),
			mockReturn:     nil,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Invalid UUID format",
			method:         http.MethodGet,
			path:           "/api/receipts/invalid-uuid",
			mockReturn:     nil,
			mockError:      nil,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Missing receipt ID",
			method:         http.MethodGet,
			path:           "/api/receipts/",
			mockReturn:     nil,
			mockError:      nil,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPut,
			path:           "/api/receipts/" + receiptID.String(),
			mockReturn:     nil,
			mockError:      nil,
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCheckoutService)
			handler := NewCheckoutHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetReceipt", mock.Anything, mock.AnythingOfType("uuid.UUID")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var errResp ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedCode, errResp.Code)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}
