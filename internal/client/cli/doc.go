// Package cli implements the interactive REPL of the support-list
// client. Commands are thin: they gather input, call the list service
// with a bounded context, and print the refreshed state. All state that
// matters lives in the service and the session.
package cli
