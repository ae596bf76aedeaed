// Package runtime runs external processes on behalf of the wizard and
// answers questions about the installed Node.js runtime. Everything that
// shells out (git, package managers, framework generators, node itself)
// goes through the Runner interface so it can be replaced in tests.
package runtime
