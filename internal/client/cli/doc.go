// Package cli provides the interactive InternHub command-line client.
//
// It wires configuration, local credential storage, API services, and an
// interactive prompt loop. Typical flow: restore the stored session on
// startup, then execute user commands until exit.
//
// Key features:
//   - Login / Register / Logout with a locally persisted token pair
//   - Browse and search internship postings
//   - Students: apply with a cover letter and optional CV, track applications
//   - Companies: post, edit, close and remove internships, review applicants
//
// Every command is a route with an optional guard. Guards are evaluated
// against the current session snapshot on each navigation and either
// render the view or redirect (login for anonymous users, the dashboard
// for a role outside the allow-set).
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
package cli
