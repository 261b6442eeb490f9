// Package token extracts timing claims from server-issued session tokens.
//
// The device holds no verification key, so parsing is deliberately
// unverified: the claims are used only for local expiry hygiene (discarding
// a stored session the server would reject anyway), never as proof of
// anything. The server remains the authority on every request.
package token
