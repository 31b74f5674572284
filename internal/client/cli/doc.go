// Package cli provides the interactive BRGY KONEK terminal client.
//
// It wires configuration, the local session database, the API client and the
// application services into a small REPL. On start it resolves the initial
// route from the stored session: a resident who signed in earlier lands on the
// home prompt directly, everyone else is asked to sign in first.
//
// Commands:
//   - login / register / logout
//   - forgot / resend: password reset link with a 60 second resend cooldown
//   - verify / resendotp: one-time code flows
//   - announcements / complaints / whoami
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
