package common

// Header names shared by the client interceptor and the server middleware.
const (
	AuthorizationHeaderName = "Authorization"
	HashHeaderName          = "hash"
	TimeoutHeaderName       = "timeout"
	TotalCountHeaderName    = "X-Total-Count"
)

// AuthorizationScheme prefixes the session token in the Authorization header.
const AuthorizationScheme = "Token"

// TokenStorageKey is the single local storage key holding the sealed session token.
const TokenStorageKey = "token"
