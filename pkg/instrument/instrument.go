// Package instrument 支付要素校验，均为无副作用的纯函数
package instrument

import (
	"regexp"
	"strings"
	"time"
)

// 卡组织网络
const (
	NetworkVisa       = "visa"
	NetworkMastercard = "mastercard"
	NetworkAmex       = "amex"
	NetworkDiscover   = "discover"
	NetworkUnknown    = "unknown"
)

// handleRegex 收款账号格式：local-part@domain-part
// domain-part 只要求字母数字，不强制带点，刻意保持宽松
var handleRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)

// Clean 去除卡号中的空格和连字符
func Clean(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	number = strings.ReplaceAll(number, "-", "")
	return number
}

// LuhnValid 校验卡号是否通过 Luhn 算法
// 清洗后必须是 13~19 位纯数字，否则直接判为无效
func LuhnValid(number string) bool {
	digits := Clean(number)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	// 从右往左，奇数位（0 起始）翻倍，超过 9 则减 9
	for i := 0; i < len(digits); i++ {
		c := digits[len(digits)-1-i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

// HandleValid 校验收款账号格式
func HandleValid(handle string) bool {
	return handleRegex.MatchString(handle)
}

// ExpiryValid 校验卡片有效期是否未过期（以当前时间为准，无宽限期）
func ExpiryValid(month, year int) bool {
	return ExpiryValidAt(month, year, time.Now())
}

// ExpiryValidAt 以给定时间为基准校验有效期
// 两位数年份按 2000 年代处理
func ExpiryValidAt(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 100 {
		year += 2000
	}

	currentYear, currentMonth := now.Year(), int(now.Month())
	if year > currentYear {
		return true
	}
	return year == currentYear && month >= currentMonth
}

// Network 根据卡号前缀识别卡组织，规则按声明顺序匹配，先命中者生效
func Network(number string) string {
	digits := Clean(number)

	switch {
	case strings.HasPrefix(digits, "4"):
		return NetworkVisa
	case inPrefixRange(digits, 51, 55):
		return NetworkMastercard
	case strings.HasPrefix(digits, "34") || strings.HasPrefix(digits, "37"):
		return NetworkAmex
	case strings.HasPrefix(digits, "60") || strings.HasPrefix(digits, "65") || inPrefixRange(digits, 81, 89):
		return NetworkDiscover
	default:
		return NetworkUnknown
	}
}

// LastFour 返回卡号末四位，长度不足时返回原串
func LastFour(number string) string {
	digits := Clean(number)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// inPrefixRange 判断卡号前两位是否落在 [low, high] 区间内
func inPrefixRange(digits string, low, high int) bool {
	if len(digits) < 2 {
		return false
	}
	prefix := int(digits[0]-'0')*10 + int(digits[1]-'0')
	return prefix >= low && prefix <= high
}
