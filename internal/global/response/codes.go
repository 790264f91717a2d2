package response

// 错误码按 HTTP 语义分段：2xx 成功，4xx 调用方问题，5xx 服务端问题
var (
	ErrInvalidRequest  = newError(400, "请求参数有误")
	ErrTokenInvalid    = newError(401, "登录状态无效")
	ErrInvalidPassword = newError(401, "用户名或密码错误")
	ErrUnauthorized    = newError(403, "没有操作权限")
	ErrForbidden       = newError(403, "禁止访问")
	ErrNotFound        = newError(404, "资源不存在")
	ErrAlreadyExists   = newError(409, "资源已存在")
	ErrConflict        = newError(409, "操作冲突")
	ErrServerInternal  = newError(500, "服务器内部错误")
	ErrDatabase        = newError(500, "数据库操作失败")
)
