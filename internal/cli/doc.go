// Package cli defines the Cobra command tree for the initwiz CLI. The root
// command runs the wizard; the remaining files each register one
// supporting command. Command implementations delegate to internal packages
// and only handle flag parsing and output formatting.
package cli
