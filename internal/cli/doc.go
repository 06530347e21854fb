// Package cli wires the bem-translator commands: configuration, logging and
// the translation runs behind each subcommand.
package cli
