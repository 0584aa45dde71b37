// Package application wires the configuration holder, the reloader and the
// inspection API into an HTTP server, keeping the main package focused on
// flag parsing and process lifecycle.
package application
