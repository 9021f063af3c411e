// Package convert turns decimal numbers, text and raw file bytes into their
// base-2 representations.
//
// Every function here is pure with respect to display state: it returns a
// result or an error and leaves it to the caller (see package session) to
// decide what the user sees. Validation failures are *errors.ValidationError
// values and read failures are *errors.IOError values; both carry the exact
// message meant for the user.
package convert
