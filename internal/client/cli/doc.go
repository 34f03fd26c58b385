// Package cli provides the interactive StaffView terminal client.
//
// It wires configuration, the local store, the backend API client and the
// router, then runs a REPL. Startup navigates to "/", which lands on the
// employee list when a session is stored and on the login view otherwise.
//
// Commands:
//   - help          show available commands
//   - login         open the login view
//   - list          show the employee list
//   - page N [S]    show page N, optionally with page size S
//   - go URL        navigate to any client URL
//   - logout        end the session
//   - exit | quit   leave the program
package cli
