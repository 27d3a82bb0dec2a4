// Package app wires the dealer dashboard together: configuration,
// logging, telemetry, the CSV dataset load, the service layer and the
// chi router, plus the HTTP server lifecycle.
package app
