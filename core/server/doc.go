// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only defines the
// listen port and the API key that protects the review endpoints.
//
// # Usage
//
//	if err := cfg.Server.Validate(); err != nil {
//	    return err
//	}
//	app.Listen(cfg.Server.Address())
package server
