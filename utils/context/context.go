package context

import (
	"context"

	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
)

func GetAdminSession(ctx context.Context) (*model.AdminSession, bool) {
	v := ctx.Value(constant.AdminSessionKey)
	if v == nil {
		return nil, false
	}
	session, ok := v.(*model.AdminSession)
	return session, ok
}

func WithAdminSession(ctx context.Context, session *model.AdminSession) context.Context {
	return context.WithValue(ctx, constant.AdminSessionKey, session)
}
