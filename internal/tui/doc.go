// Package tui implements the terminal client on Bubble Tea.
//
// Two programs make up a session: the auth flow (welcome, login, register)
// and the vault loop (master key gate, record list, detail view, create/edit
// form, delete confirm). The master key never leaves this package; it is held
// in a session that is wiped on logout and on program exit.
package tui
