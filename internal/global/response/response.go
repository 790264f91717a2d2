package response

import (
	"errors"
	"fmt"
	"net/http"

	"campus-activity-system/config"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应体
type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Success 成功响应，data 可省略
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 失败响应；非 *Error 的错误统一按服务器内部错误处理
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrServerInternal.WithOrigin(err)
	}

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	// 原始错误仅在 debug 模式下暴露给前端
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = gin.H{"origin": e.Origin}
	}

	// 错误对象挂到 Context，供日志与 Sentry 中间件取用
	_ = c.Error(e)

	c.JSON(http.StatusOK, body)
}

// Recovery 捕获 handler panic，返回统一错误
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", r)
		}
		Fail(c, ErrServerInternal.WithOrigin(err))
		c.Abort()
	}
}
