package handler

import (
	"strconv"

	"library_server/internal/dto/request"
	"library_server/internal/infrastructure/middleware"
	"library_server/pkg/errorx"
	"library_server/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// defaultPerPage 由 NewHandlers 根据配置设置
var defaultPerPage = pagination.DefaultPerPage

// pageParams 读取 page / per_page 查询参数
func pageParams(c *gin.Context) pagination.Params {
	return pagination.NewParams(c.Query("page"), c.Query("per_page"), defaultPerPage)
}

// endpoint 当前请求路径（已带路径参数）和其余查询参数，用于生成分页链接
func endpoint(c *gin.Context) pagination.Endpoint {
	return pagination.Endpoint{Path: c.Request.URL.Path, Query: c.Request.URL.Query()}
}

// idParam 解析路径中的正整数 id，非法时按资源不存在处理
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		HandleError(c, errorx.New(errorx.CodeNotFound, "资源不存在"))
		return 0, false
	}
	return uint(id), true
}

// statusQuery 可选的 status 过滤参数
func statusQuery(c *gin.Context) (*int8, bool) {
	raw, ok := c.GetQuery("status")
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 8)
	if err != nil {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "status 必须是整数"))
		return nil, false
	}
	s := int8(v)
	return &s, true
}

// actor 当前请求的身份
func actor(c *gin.Context) request.Actor {
	id, role, _ := middleware.Principal(c)
	return request.Actor{ID: id, Role: role, IP: c.ClientIP()}
}

// bindOptionalJSON 请求体可以为空，为空时保持零值
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.ContentLength == 0 {
		return binding.Validator.ValidateStruct(obj)
	}
	return c.ShouldBindJSON(obj)
}
