// Package http implements the HTTP handlers of the dealer dashboard.
// Handlers stay thin: they parse query parameters, delegate to the
// service layer, and render JSON (or an xlsx download) with RFC 7807
// problem responses on failure.
package http
