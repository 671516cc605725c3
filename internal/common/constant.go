package common

// TokenHeaderName is the HTTP header that carries the session token on
// authenticated requests.
const TokenHeaderName = "token"
