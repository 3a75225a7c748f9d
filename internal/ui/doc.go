// Package ui renders wslgit's own messages: errors and hints on stderr from
// the shim, and the report tables of wslgit-doctor.
//
// git's output never passes through this package. Styling is only applied
// when the target writer is a terminal that supports color, so editors and
// scripts that capture stderr see plain text:
//
//	p := ui.NewPrinter(os.Stderr)
//	p.Error(err)   // ✗ message / cause / suggestion
//	p.Warn("...")  // ! message
package ui
