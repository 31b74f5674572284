// Package api is the transport layer of the BRGY KONEK client: one method per
// REST endpoint, nothing else.
//
// # Endpoints
//
//	POST /auth/login            {email, password} -> {token, user}
//	POST /auth/register         multipart form    -> {user}
//	POST /auth/forgot-password  {email}           -> {}
//	POST /auth/verify-otp       {otp}             -> {}
//	POST /auth/resend-otp       {}                -> {}
//	GET  /complaints/resident/:id                 -> Complaint[]
//	GET  /announcements                           -> Announcement[]
//
// # Errors
//
// Non-2xx responses come back as *apperr.ResponseError carrying the status and
// the server's "message" field. Transport failures are returned wrapped so
// apperr.Classify can recognise them. No request is retried.
//
// # Authentication
//
// Once SetToken is called every request carries "Authorization: Bearer".
package api
