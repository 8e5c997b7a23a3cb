package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrResourceNotFound   = errors.New("资源不存在")
	ErrResourceNotPublic  = errors.New("资源未公开")
	ErrActionTypeInvalid  = errors.New("无效的行为类型")
	ErrFollowTypeInvalid  = errors.New("无效的关注类型")
	ErrFollowExist        = errors.New("已关注该目标")
	ErrFollowSelf         = errors.New("不能关注自己")
	ErrFollowNotFound     = errors.New("关注关系不存在")
	ErrCategoryNotFound   = errors.New("分类不存在")
	UnauthorizedError     = errors.New("权限不足")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrResourceNotFound:  NotFound,
	ErrResourceNotPublic: NotFound,
	ErrActionTypeInvalid: BadRequest,
	ErrFollowTypeInvalid: BadRequest,
	ErrFollowExist:       BadRequest,
	ErrFollowSelf:        BadRequest,
	ErrFollowNotFound:    NotFound,
	ErrCategoryNotFound:  NotFound,
	UnauthorizedError:    Unauthorized,
}
