// Package requests 处理请求数据和表单验证
package requests

import (
	"fmt"

	"payhub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// RequestError 请求验证错误，携带错误码用于响应分类
type RequestError struct {
	Code        string // response 包中的错误码常量
	Description string
	Field       string
}

// Error 实现 error 接口
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// badRequest 构造参数错误
func badRequest(description string, field ...string) *RequestError {
	e := &RequestError{Code: response.CodeBadRequest, Description: description}
	if len(field) > 0 {
		e.Field = field[0]
	}
	return e
}

// instrumentError 构造支付要素错误
func instrumentError(code, description string) *RequestError {
	return &RequestError{Code: code, Description: description}
}

// bindAndValidate 解析请求体并执行 govalidator 规则
func bindAndValidate(c *gin.Context, data interface{}, rules govalidator.MapData, messages govalidator.MapData) *RequestError {
	// 1. 解析请求体
	if err := c.ShouldBindJSON(data); err != nil {
		return badRequest("request body is not valid JSON")
	}

	// 2. 验证规则
	opts := govalidator.Options{
		Data:     data,
		Rules:    rules,
		Messages: messages,
	}

	if errs := govalidator.New(opts).ValidateStruct(); len(errs) > 0 {
		// 取第一条验证错误返回
		for field, msgs := range errs {
			if len(msgs) > 0 {
				return badRequest(msgs[0], field)
			}
		}
		return badRequest("validation failed")
	}

	return nil
}
