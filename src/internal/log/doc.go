// Package log provides simple leveled logging for the produtos service.
//
// Messages are printf-formatted and prefixed with a coloured level tag.
// Debug output is only shown in verbose mode; errors always go to stderr.
//
// # Example Usage
//
//	log.Infof("Listening on %s", addr)
//	log.Warnf("PORT=%q is not a number, using %d", raw, def)
//	log.Errorf("Failed to save products: %v", err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Loaded %d products from %s", n, path)
//
// Commands that print data to stdout send their logs to stderr instead:
//
//	log.SetForceStdErr(true)
//
// Tests can capture output with SetOutput.
package log
