// Package handler is the first layer after the router.
//
// It binds requests, validates them through the validation
// package and calls the service layer. Successful results are
// wrapped in the response envelope; errors are returned as is
// for the global error handler.
package handler
