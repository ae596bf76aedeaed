// Package platform hides the file-mode differences between Unix and Windows
// for the files the wizard writes.
package platform
