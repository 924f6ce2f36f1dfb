package gateway

import "os"

const (
	DefaultOutlineTokenEnv = "OUTLINE_ACCESS_TOKEN"
	DefaultSlidesTokenEnv  = "PPT_ACCESS_TOKEN"
)

// Credential provides the bearer token attached to a request. It is read
// every time a request is built.
type Credential interface {
	Token() string
}

// StaticToken is a credential with a fixed value.
type StaticToken string

func (t StaticToken) Token() string {
	return string(t)
}

// EnvToken is a credential read from the named environment variable at
// call time. An unset variable yields an empty token, which the remote
// service will reject.
type EnvToken string

func (t EnvToken) Token() string {
	return os.Getenv(string(t))
}
