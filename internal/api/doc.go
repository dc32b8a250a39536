// Package api provides the HTTP client used to communicate with the Hunter
// API. It handles authentication, request construction, response reading and
// envelope unwrapping.
//
// # Requests
//
// Every call is described by a [Request] and goes through [Client.Do], the
// single dispatch chokepoint: the API key is merged into a fresh copy of the
// request's query values, the optional body is JSON-encoded, and the response
// body is read in full. [Client.Data] additionally decodes the body and
// extracts the payload under its data field.
//
// # Error Handling
//
// Responses with status 400 or above become an [HTTPError] carrying the
// status, the service-reported message and the raw body. Success responses
// whose body has no data field become an [APIError] carrying the decoded
// body. Transport failures become a [NetworkError] wrapping the underlying
// error. The URL recorded on an error never includes the api_key parameter.
//
// Requests are never retried; every failure propagates immediately to the
// caller.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
