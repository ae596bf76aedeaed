// Package prompt asks the wizard's questions as numbered, line-oriented
// menus on a reader/writer pair.
package prompt
