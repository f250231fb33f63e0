package handler

import (
	"errors"
	"net/http"

	"library_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ResponseData 统一响应结构体 (用于 Swagger 文档生成)
type ResponseData struct {
	Code int `json:"code"` // 业务响应状态码
	Msg  any `json:"msg"`  // 提示信息
	Data any `json:"data"` // 数据
}

// HandleSuccess 返回成功响应
func HandleSuccess(c *gin.Context, data any) {
	HandleSuccessMsg(c, "success", data)
}

// HandleSuccessMsg 返回带自定义提示的成功响应
func HandleSuccessMsg(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, ResponseData{
		Code: errorx.CodeSuccess,
		Msg:  msg,
		Data: data,
	})
}

// HandleError 通用错误处理方法
// 业务错误按错误码映射 HTTP 状态；数据库、缓存等内部错误记录日志后统一返回服务繁忙
//
//	if err := svc.DoSomething(); err != nil {
//	    HandleError(c, err)
//	    return
//	}
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) && !isInternal(codeErr.Code) {
		c.JSON(errorx.HTTPStatus(codeErr.Code), ResponseData{
			Code: codeErr.Code,
			Msg:  codeErr.Msg,
		})
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("request_id", c.GetString("request_id")),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ResponseData{
		Code: errorx.ErrServerBusy.Code,
		Msg:  errorx.ErrServerBusy.Msg,
	})
}

// isInternal 不应把细节暴露给调用方的错误码
func isInternal(code int) bool {
	return code == errorx.CodeDBError || code == errorx.CodeCacheError || code == errorx.CodeServerBusy
}

// HandleParamError 处理参数绑定错误（带 validator 翻译支持）
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && Trans != nil {
		// 翻译后去除结构体名前缀
		c.JSON(http.StatusBadRequest, ResponseData{
			Code: errorx.ErrInvalidParam.Code,
			Msg:  RemoveTopStruct(validationErrs.Translate(Trans)),
		})
		return
	}

	// 非 validator 错误（如 JSON 格式错误）
	zap.L().Debug("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, ResponseData{
		Code: errorx.ErrInvalidParam.Code,
		Msg:  errorx.ErrInvalidParam.Msg,
	})
}
