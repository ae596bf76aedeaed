// Package framework holds the closed registry of supported frameworks and
// the handlers that materialize each one's starter project. Frameworks are
// declared by the embedded descriptors/*.yaml manifests; template
// frameworks render templates/<name>/, generator frameworks run the
// framework's own CLI.
package framework
