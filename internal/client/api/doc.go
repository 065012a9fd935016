// Package api implements the HTTP client for the FreshKeep backend.
//
// All calls go through a single pipeline (Client.Do) that attaches the
// stored access token as a bearer credential and transparently recovers from
// exactly one expired-token rejection per logical request: on the first 401
// it exchanges the stored refresh token for a new pair, persists it, and
// re-dispatches the original request once. A second 401, or a failed
// exchange, is terminal. Concurrent requests hitting 401 at the same time
// share one in-flight refresh exchange.
//
// Transport failures and every other HTTP status are handed back to the
// caller uninterpreted; domain error bodies are the caller's business.
package api
