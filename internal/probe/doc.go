// Package probe answers the yes/no environment questions the wizard asks
// before scaffolding: is the target directory empty, which package manager
// is already in use, and is the installed Node.js new enough.
package probe
