package domain

type ctxKey int

const (
	// RequesterIDCtxKey carries the authenticated user's id.
	RequesterIDCtxKey ctxKey = iota
	// TokenCtxKey carries the raw bearer token, forwarded to the router
	// service on export.
	TokenCtxKey
)
