// Package common contains constants, sentinel errors and small helpers shared
// by the client and the reference server.
package common

// AuthorizationHeader carries the bearer token on outbound requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix precedes the token in AuthorizationHeader.
const BearerPrefix = "Bearer "

// SessionStorageKey is the metadata key under which the client keeps the
// serialized session.
const SessionStorageKey = "session"
