// Package api provides the HTTP handlers for the API.
//
// Handlers translate between the transport layer and the services: they
// parse and validate requests, resolve the authenticated user from the
// request context, call exactly one service operation, and render the
// result. All error-to-status mapping is centralized in errors.go so the
// services stay transport-agnostic.
package api
