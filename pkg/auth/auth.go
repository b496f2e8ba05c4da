package auth

import (
	"context"

	"github.com/pkg/errors"
)

// XUserNameHeader carries the identity the upstream provider attached to the
// request as a trusted header.
const XUserNameHeader = "X-User-Name"

type ctxKey uint8

const userNameKey ctxKey = iota

var ErrNoIdentity = errors.New("no identity in context")

func SetAuthContext(ctx context.Context, userName string) context.Context {
	return context.WithValue(ctx, userNameKey, userName)
}

func UserName(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || name == "" {
		return "", ErrNoIdentity
	}
	return name, nil
}
