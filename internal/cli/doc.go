// Package cli provides the interactive operator console for the
// visual-news credential vault.
//
// It is the thin caller layer the vault core was designed for: account
// registration, login with a held session token, preference updates, and
// an account listing for operators. It wires configuration, the vault, and
// a small REPL; all security decisions stay inside the vault package.
package cli
