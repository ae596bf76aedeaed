// Package wizard drives one project initialization: it asks the user for a
// project name, framework and package manager, checks the Node.js runtime,
// scaffolds the project, commits it to a new git repository and installs
// its dependencies. Every step gates the next and no step is retried.
package wizard
