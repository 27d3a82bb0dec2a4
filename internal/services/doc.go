// Package services contains the application service layer sitting
// between the HTTP transport and the analytics package. Services hold
// the loaded contract dataset, validate incoming query parameters, and
// translate analytic results into response-ready values.
package services
