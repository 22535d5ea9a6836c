// Package client talks to the solarplan REST API.
//
// HTTPClient implements Client over net/http with JSON bodies. Failures
// come back in two shapes:
//
//   - ErrUnavailable when the server could not be reached at all;
//   - *APIError when it answered with a non-2xx status. APIError unwraps to
//     the matching common sentinel, so errors.Is(err, common.ErrorNotFound)
//     works on both sides of the wire.
//
// Nothing is retried.
package client
