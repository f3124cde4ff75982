// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request logging, CORS, tracing, rate limiting,
// panic recovery and the translation of errors into responses
package middleware
