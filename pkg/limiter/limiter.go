// Package limiter wraps providers behind a client-side rate limit.
package limiter

type Limiter interface {
	limiterSetup()
}
