// internal/reqctx/reqctx.go
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyIdentity
)

// Identity: bearer token'dan çözülen çağıran kullanıcı.
type Identity struct {
	UserID   int64
	Username string
	Role     string
}

func (i Identity) IsAdmin() bool { return i.Role == "admin" }

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, id)
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(keyIdentity).(Identity)
	return v, ok
}

func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := GetIdentity(ctx)
	return id.UserID, ok
}
