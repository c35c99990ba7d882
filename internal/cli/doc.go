// Package cli provides the interactive EduBlog command-line client.
//
// It drives a services.BlogAPI from a read-eval-print loop. The commands
// offered at any moment follow navigation.Routes for the logged-in
// identity; the API itself still enforces every permission.
//
// Key features:
//   - Login / Logout / WhoAmI
//   - Posts: list and search, show, write, edit (with a change preview),
//     delete, comment
//   - Rosters: list, add, edit and remove teachers and students
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or the input ends. See runREPL for the command table.
package cli
