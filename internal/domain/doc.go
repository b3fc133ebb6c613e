// Package domain holds the shared error taxonomy for the tracker client.
// Entities live in the subpackages project, ticket, comment, and board.
//
// Three failure classes cover every operation: client-side validation
// (*ValidationError, caught before a request is sent), transport failures
// (ErrTransport, no response received), and server rejections (the
// status-mapped sentinels). Callers treat all three the same at the boundary:
// abandon the mutation, keep the last-known-good snapshot, log.
package domain
