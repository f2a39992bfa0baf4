package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, m Mailer, cfg Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHandler(newTestService(m, cfg), nil).RegisterRoutes(router)
	return router
}

func performRequest(router *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodPost, "/agent_to_customer", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var payload map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &payload)
	return resp, payload
}

const validBody = `{
	"customerEmail": "asha@example.com",
	"orderDetails": {"orderNumber": 1042, "totalAmount": 4999, "advancePaid": "1000", "paymentMethod": "UPI", "agentName": "X"},
	"customerDetails": {"firstName": "Asha", "address": "12 MG Road", "city": "Bengaluru", "pincode": 560001},
	"productName": "Walnut Bookshelf",
	"agentName": "Y"
}`

func TestSendOrderConfirmationHandler_Success(t *testing.T) {
	m := new(MockMailer)
	m.On("Send", mock.Anything, mock.MatchedBy(func(e Email) bool {
		return e.To == "asha@example.com" && e.Subject == "Order Confirmation - #1042"
	})).Return("<abc@example.com>", nil).Once()

	resp, body := performRequest(setupRouter(t, m, testConfig), validBody)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, map[string]any{
		"success":   true,
		"message":   "Email sent successfully",
		"messageId": "<abc@example.com>",
	}, body)

	sent := m.Calls[0].Arguments.Get(1).(Email)
	assert.Contains(t, sent.HTML, "<strong>X</strong>")
	assert.Contains(t, sent.HTML, "Bengaluru, 560001")
	m.AssertExpectations(t)
}

func TestSendOrderConfirmationHandler_MissingEmail(t *testing.T) {
	m := new(MockMailer)
	resp, body := performRequest(setupRouter(t, m, testConfig), `{"orderDetails": {"orderNumber": "1"}}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Customer email is required"}, body)
	m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendOrderConfirmationHandler_InvalidEmail(t *testing.T) {
	m := new(MockMailer)
	resp, body := performRequest(setupRouter(t, m, testConfig), `{"customerEmail": "not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Customer email is invalid"}, body)
	m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendOrderConfirmationHandler_NonStringDisplayFields(t *testing.T) {
	m := new(MockMailer)
	m.On("Send", mock.Anything, mock.Anything).Return("<id@example.com>", nil).Once()

	resp, _ := performRequest(setupRouter(t, m, testConfig), `{
		"customerEmail": "asha@example.com",
		"orderDetails": {"orderNumber": 9, "currencySymbol": 1, "paymentMethod": 2, "agentName": 7},
		"customerDetails": {"firstName": 3, "address": 4, "country": false},
		"agentName": 8
	}`)

	require.Equal(t, http.StatusOK, resp.Code)
	sent := m.Calls[0].Arguments.Get(1).(Email)
	assert.Contains(t, sent.HTML, "<strong>7</strong>")
	assert.Contains(t, sent.HTML, "Hi 3,")
	m.AssertExpectations(t)
}

func TestSendOrderConfirmationHandler_MalformedBody(t *testing.T) {
	m := new(MockMailer)
	resp, body := performRequest(setupRouter(t, m, testConfig), `{"customerEmail": `)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, false, body["success"])
	m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendOrderConfirmationHandler_SendFailure(t *testing.T) {
	m := new(MockMailer)
	m.On("Send", mock.Anything, mock.Anything).Return("", errors.New("connection refused")).Once()

	resp, body := performRequest(setupRouter(t, m, testConfig), validBody)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "connection refused")
}

func TestSendOrderConfirmationHandler_NotConfigured(t *testing.T) {
	resp, body := performRequest(setupRouter(t, nil, testConfig), validBody)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, ErrMailerNotConfigured.Error(), body["message"])
}
