// Package server holds the configuration partial for the HTTP server.
//
// The actual Fiber application is assembled in the start command; this package
// only owns the settings (listen port, API key) so that core/config can bind
// them from the environment alongside the other partials.
package server
