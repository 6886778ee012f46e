// Package api is the single point of outbound HTTP communication with the
// SME Mentor REST backend.
//
// # Overview
//
// A Client is configured with a base URL, an optional TokenStore and an
// optional Navigator. Every request:
//
//  1. carries Content-Type: application/json;
//  2. carries Authorization: Bearer <token> when the store holds a token;
//  3. on a 401 response clears the stored token and navigates to LoginRoute,
//     once per response, before the error is handed back to the caller.
//
// Operations are grouped by resource: Client.Auth, Client.Courses and
// Client.Mentor. Each is a thin pass-through to one method/path/payload; there
// are no retries, no caching and no batching.
//
// # Error Handling
//
// Non-2xx responses are returned as *Error. Match them with errors.Is against
// ErrUnauthorized (401) or ErrNotFound (404), or errors.As to read the
// backend's detail message. Transport failures wrap ErrUnavailable.
package api
