// Package httputil provides the HTTP plumbing shared by the gridwork driver
// server and its client.
//
// # Responses
//
// [WriteJSON] and [WriteError] produce the driver's JSON bodies. Errors are
// written as
//
//	{"error": {"code": "INVALID_INPUT", "message": "..."}}
//
// with the HTTP status derived from the error code by [StatusOf].
// [DecodeJSON] reads a bounded request body and rejects unknown fields.
//
// # Client
//
// [Client] talks to a running driver. Requests that fail with a network
// error or a 5xx status are retried by [Retry]; 4xx responses are decoded
// back into *errors.Error so callers can test codes with errors.Is.
package httputil
