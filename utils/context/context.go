package context

import (
	"context"

	"github.com/muhammadheryan/hoardspace/constant"
	"github.com/muhammadheryan/hoardspace/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetUserRole(ctx context.Context) (constant.Role, bool) {
	v := ctx.Value(constant.UserRoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(constant.Role)
	return role, ok
}

// GetCaller returns the authenticated caller, or nil for anonymous requests.
func GetCaller(ctx context.Context) *model.Caller {
	id, ok := GetUserID(ctx)
	if !ok {
		return nil
	}
	role, _ := GetUserRole(ctx)
	return &model.Caller{ID: id, Role: role}
}

func WithCaller(ctx context.Context, id uint64, role constant.Role) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, id)
	return context.WithValue(ctx, constant.UserRoleKey, role)
}
