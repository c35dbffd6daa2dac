package probe

import "errors"

var (
	// ErrNoBaseURL is returned by Target for a relative URL when no base
	// URL is configured.
	ErrNoBaseURL = errors.New("relative URL and no base URL configured")

	// ErrInvalidProxyAddress is returned when the proxy is not
	// "host:port" or "socks5://[user:pass@]host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address: expected host:port or socks5://host:port")
)
