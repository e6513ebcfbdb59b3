// Package sixcities provides the domain records and HTTP client for the
// rentals REST API.
//
// # Overview
//
// The package defines the passive records exchanged between the network layer
// and the client state (offers, comments, cities, users) and a small JSON
// client for the endpoints the fetch flows call.
//
// # Files
//
//   - types.go: Offer, Comment, City, Location, Host, User, AuthorizedUser
//   - cities.go: the fixed set of destinations, never fetched from the network
//   - client.go: API interface and the *Client implementation
//   - errors.go: StatusError, ErrNotFound, ErrUnauthorized, ValidationError
//   - validate.go: JSON Schema validation of comment posts
//
// # Client Usage
//
//	client, err := sixcities.NewClient("http://127.0.0.1:8089", 5*time.Second)
//	if err != nil {
//		return err
//	}
//	offers, err := client.FetchOffers(ctx)
//
// # API Endpoints
//
// Paths are relative to the configured base URL, which may carry a path
// prefix of its own:
//
//   - GET /offers: every offer across all cities
//   - GET /offers/{id}: a single offer
//   - GET /offers/{id}/nearby: offers shown next to an offer
//   - GET /comments/{id}: reviews of an offer
//   - POST /comments/{id}: new review, body {comment, rating}
//   - GET /login: account bound to the current token
//   - POST /login: credentials for a token
//   - DELETE /logout: end the session
//
// # Request Handling
//
// Every request carries Accept: application/json, a User-Agent of
// sixcities/<version>, a fresh X-Request-ID and, once signed in, the X-Token
// session header. Timeouts come from the http.Client; cancellation from the
// context.
//
// # Error Handling
//
// Non-2xx responses become *StatusError. The "message" field of the error body
// is kept when present. StatusError matches ErrNotFound and ErrUnauthorized
// through errors.Is, so callers never compare status codes directly:
//
//	offer, err := client.FetchOffer(ctx, id)
//	if errors.Is(err, sixcities.ErrNotFound) {
//		// render the not-found view
//	}
//
// Transport and decode failures are wrapped with fmt.Errorf and %w.
//
// # Validation
//
// ValidateComment checks a CommentPost against the embedded payload schema
// (some text, integer rating 1..5) and reports every problem in a
// *ValidationError. ValidateCommentForm adds the review form limits of 50 to
// 300 characters. The client itself does not validate; the post-comment flow
// runs ValidateComment and the review form runs ValidateCommentForm.
package sixcities
