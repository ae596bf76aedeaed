// Package pkgmanager knows the JavaScript package managers the wizard can
// hand off to: how to recognise which one a directory already uses and which
// command installs a project's dependencies with each of them.
package pkgmanager
