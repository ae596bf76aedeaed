// Package scaffold renders a starter project from a template tree. Files
// ending in .tmpl are executed as Go text/templates against Data; all other
// files are copied byte for byte. A leading underscore in a file name is
// turned into a dot so dotfiles (.gitignore, .npmrc) can be stored in an
// embedded filesystem.
package scaffold
