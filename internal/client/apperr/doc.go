// Package apperr classifies every failure of the client core into exactly one
// user-facing category with a display message.
//
// The API layer reports non-2xx answers as *ResponseError; form validation
// reports *ValidationError; anything else is a transport failure or unknown.
// Classify folds all of them into *Error, which screens print verbatim.
//
// Order of inspection:
//
//  1. an already classified *Error is returned unchanged;
//  2. *ValidationError becomes CategoryValidation with its own message;
//  3. *ResponseError: the category comes from the status code, the message is
//     the server's "message" field when present, else a fixed text;
//  4. transport failures (see netx.IsConnectivityError) become
//     CategoryConnectivity;
//  5. everything else, including nil, is CategoryUnknown with the
//     per-operation fallback text.
package apperr
