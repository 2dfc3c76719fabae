package requests

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"payhub/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newJSONContext 构造携带 JSON 请求体的测试上下文
func newJSONContext(body string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestValidateCreateOrder(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string // 为空表示期望通过
	}{
		{"合法请求", `{"amount": 5000, "currency": "INR"}`, ""},
		{"金额刚好达到下限", `{"amount": 100}`, ""},
		{"金额低于下限", `{"amount": 99}`, response.CodeBadRequest},
		{"缺少金额", `{"currency": "INR"}`, response.CodeBadRequest},
		{"请求体不是 JSON", `not json`, response.CodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ValidateCreateOrder(newJSONContext(tt.body))
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", err.Code, tt.wantCode)
			}
			if req != nil {
				t.Error("request must be nil on validation failure")
			}
		})
	}
}

func TestValidateCreateOrderDefaultCurrency(t *testing.T) {
	req, err := ValidateCreateOrder(newJSONContext(`{"amount": 5000}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Currency != "INR" {
		t.Errorf("currency = %s, want INR", req.Currency)
	}
}

func TestValidateCreatePayment(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  string
		wantField string
	}{
		{
			"合法的收款账号支付",
			`{"order_id": "order_abc", "method": "bank_handle", "handle": "alice@okbank"}`,
			"", "",
		},
		{
			"合法的银行卡支付",
			`{"order_id": "order_abc", "method": "card", "card": {"number": "4111111111111111", "expiry_month": 12, "expiry_year": 2045, "security_code": "123", "holder_name": "Alice"}}`,
			"", "",
		},
		{
			"缺少订单号",
			`{"method": "card"}`,
			response.CodeBadRequest, "order_id",
		},
		{
			"不支持的支付方式",
			`{"order_id": "order_abc", "method": "upi"}`,
			response.CodeBadRequest, "method",
		},
		{
			"收款账号缺失",
			`{"order_id": "order_abc", "method": "bank_handle"}`,
			response.CodeBadRequest, "handle",
		},
		{
			"收款账号格式错误",
			`{"order_id": "order_abc", "method": "bank_handle", "handle": "no-at-sign"}`,
			response.CodeInvalidHandle, "",
		},
		{
			"银行卡要素缺失",
			`{"order_id": "order_abc", "method": "card"}`,
			response.CodeBadRequest, "card",
		},
		{
			"卡号缺失",
			`{"order_id": "order_abc", "method": "card", "card": {"expiry_month": 12, "expiry_year": 2045, "security_code": "123", "holder_name": "Alice"}}`,
			response.CodeBadRequest, "card.number",
		},
		{
			"卡号校验和错误",
			`{"order_id": "order_abc", "method": "card", "card": {"number": "4111111111111112", "expiry_month": 12, "expiry_year": 2045, "security_code": "123", "holder_name": "Alice"}}`,
			response.CodeInvalidCard, "",
		},
		{
			"银行卡已过期",
			`{"order_id": "order_abc", "method": "card", "card": {"number": "4111111111111111", "expiry_month": 1, "expiry_year": 2020, "security_code": "123", "holder_name": "Alice"}}`,
			response.CodeExpiredCard, "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ValidateCreatePayment(newJSONContext(tt.body))
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if req == nil {
					t.Fatal("request must not be nil on success")
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", err.Code, tt.wantCode)
			}
			if tt.wantField != "" && err.Field != tt.wantField {
				t.Errorf("field = %s, want %s", err.Field, tt.wantField)
			}
		})
	}
}

// 卡号校验和错误时不应泄露到有效期分支，即使有效期同样非法
func TestValidateCreatePaymentChecksumBeforeExpiry(t *testing.T) {
	body := `{"order_id": "order_abc", "method": "card", "card": {"number": "4111111111111112", "expiry_month": 1, "expiry_year": 2020, "security_code": "123", "holder_name": "Alice"}}`
	_, err := ValidateCreatePayment(newJSONContext(body))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if err.Code != response.CodeInvalidCard {
		t.Errorf("code = %s, want %s (checksum checked before expiry)", err.Code, response.CodeInvalidCard)
	}
}
