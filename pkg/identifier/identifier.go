// Package identifier 生成对外暴露的业务 ID
package identifier

import (
	"crypto/rand"
	"math/big"
)

// 业务前缀
const (
	OrderPrefix   = "order_"
	PaymentPrefix = "pay_"
)

// SuffixLength 随机后缀长度，62^16 的空间下碰撞概率可忽略
const SuffixLength = 16

// alphabet 62 个字符的字母表
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// New 生成「前缀 + 随机字母数字后缀」形式的 ID，如 order_Ab3xK9fQ2mNpR7sT
func New(prefix string) string {
	buf := make([]byte, 0, len(prefix)+SuffixLength)
	buf = append(buf, prefix...)

	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < SuffixLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand 不可用属于环境级故障
			panic(err)
		}
		buf = append(buf, alphabet[n.Int64()])
	}
	return string(buf)
}

// NewOrderID 生成订单 ID
func NewOrderID() string {
	return New(OrderPrefix)
}

// NewPaymentID 生成支付 ID
func NewPaymentID() string {
	return New(PaymentPrefix)
}
