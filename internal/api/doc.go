// Package api handles incoming HTTP requests for study-material generation:
// request decoding, credential extraction, mapping classified generation
// errors to HTTP status codes, and response formatting. It is an adapter
// between HTTP clients and the generation service.
package api
