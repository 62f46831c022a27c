// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, configures logging and builds the
// console and services, exposing them via the Wire struct for commands to use.
package app
