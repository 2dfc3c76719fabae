package order

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Status 订单状态
type Status string

const (
	StatusCreated Status = "created" // 已创建
)

// 业务常量
const (
	// MinAmount 订单最小金额（最小货币单位）
	MinAmount = 100
	// DefaultCurrency 默认币种
	DefaultCurrency = "INR"
)

// JSON 自定义JSON类型，存放商户自由结构的备注
type JSON map[string]interface{}

// Value 实现 driver.Valuer 接口
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan 实现 sql.Scanner 接口
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("invalid scan source")
	}
	return json.Unmarshal(bytes, j)
}

// Validate 验证订单记录
func (o *Order) Validate() error {
	if o.MerchantID == "" {
		return errors.New("merchant_id is required")
	}
	if o.Amount < MinAmount {
		return errors.New("amount must be at least 100")
	}
	return nil
}

// PublicOrder 对收款方公开的订单投影，不含商户与备注信息
type PublicOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// ToPublic 生成公开投影
func (o *Order) ToPublic() PublicOrder {
	return PublicOrder{
		ID:       o.ID,
		Amount:   o.Amount,
		Currency: o.Currency,
		Status:   o.Status,
	}
}
