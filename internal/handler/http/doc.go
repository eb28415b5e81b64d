// Package http implements the REST API of the server.
//
// It exposes route wiring, request handlers and middleware. Tracing, request
// ids, access logging, compression and bearer authentication are handled in
// this package before requests are delegated to the service layer. Every
// rejection is rendered as a typed JSON body, see [models.ErrorResponse].
package http
