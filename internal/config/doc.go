// Package config manages user-level settings stored at ~/.initwiz/config.yaml.
// Every key can also be supplied through an INITWIZ_<KEY> environment
// variable, which takes precedence over the file.
package config
