// Package devapi is a small REST server that answers every request the
// sixcities client makes, backed by embedded fixture data.
//
// It exists for offline development and for end-to-end tests of the client,
// the flows and the state store. Routes:
//
//	GET    /offers
//	GET    /offers/{id}
//	GET    /offers/{id}/nearby     up to three other offers in the same city
//	GET    /comments/{id}
//	POST   /comments/{id}          requires X-Token
//	GET    /login                  current session, 401 without one
//	POST   /login                  {email, password}, returns a token
//	DELETE /logout                 requires X-Token
//
// Failures are JSON objects with "error" and "message" fields. Each response
// carries an X-Request-ID header, reusing the caller's id when it sent a
// valid uuid.
package devapi
