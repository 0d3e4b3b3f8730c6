// Package http provides HTTP transport middleware shared by the outbound clients.
// It includes round trippers for injecting a User-Agent header into requests
// and for logging request/response cycles at debug level.
package http
