// Package response 提供统一的 HTTP 响应处理
package response

import (
	"net/http"

	"payhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// 错误码常量，收款侧的客户端依赖这些字符串做分支判断
const (
	CodeAuthentication = "AUTHENTICATION_ERROR" // 凭证缺失或无效
	CodeBadRequest     = "BAD_REQUEST_ERROR"    // 参数缺失、格式错误、金额不达标、未知支付方式
	CodeInvalidCard    = "INVALID_CARD"         // 卡号校验失败
	CodeInvalidHandle  = "INVALID_HANDLE"       // 收款账号格式错误
	CodeExpiredCard    = "EXPIRED_CARD"         // 卡片已过期
	CodeNotFound       = "NOT_FOUND_ERROR"      // 订单或支付不存在（或越权访问）
	CodeInternal       = "INTERNAL_ERROR"       // 存储或其他基础设施错误
)

/* 标准错误响应结构
{
    "error": {
        "code": "BAD_REQUEST_ERROR",
        "description": "amount must be at least 100",
        "field": "amount"     // 可选
    }
}
*/

// ErrorBody 统一错误结构体
type ErrorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Field       string `json:"field,omitempty"`
}

// ErrorResponse 错误响应的外层包装
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ------------------ 🎯 成功响应系列 ------------------

// Data 响应 200 和数据
func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 响应 201 和新创建的记录
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

//  ------------------ 错误响应系列 ------------------

// AbortAuth 响应 401，凭证错误统一返回同一描述，
// 避免暴露「key 不存在」还是「secret 错误」
func AbortAuth(c *gin.Context) {
	abortWith(c, http.StatusUnauthorized, CodeAuthentication, "authentication failed")
}

// AbortBadRequest 响应 400 参数错误
func AbortBadRequest(c *gin.Context, description string, field ...string) {
	body := ErrorBody{Code: CodeBadRequest, Description: description}
	if len(field) > 0 {
		body.Field = field[0]
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: body})
}

// AbortInstrument 响应 400，携带指定的支付要素错误码
// code 取值为 CodeInvalidCard、CodeInvalidHandle 或 CodeExpiredCard
func AbortInstrument(c *gin.Context, code string, description string) {
	abortWith(c, http.StatusBadRequest, code, description)
}

// AbortNotFound 响应 404 错误
func AbortNotFound(c *gin.Context, description string) {
	abortWith(c, http.StatusNotFound, CodeNotFound, description)
}

// AbortInternal 响应 500 错误（记录底层错误但不外泄）
func AbortInternal(c *gin.Context, err error) {
	logger.LogIf(err)
	abortWith(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}

// abortWith 终止请求并输出统一的错误结构
func abortWith(c *gin.Context, status int, code, description string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{Code: code, Description: description},
	})
}
