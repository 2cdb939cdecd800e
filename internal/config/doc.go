// Package config defines the format-agnostic settings model read from an
// optional settings file, along with the Loader interface that format
// specific packages implement.
//
// Every field of Model is a pointer: nil means the file did not set it and
// the value from the built-in defaults or the command line stands.
package config
