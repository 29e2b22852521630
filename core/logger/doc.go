// Package logger provides a structured logging facility based on Zap.
//
// Debug level selects zap's development configuration, every other level the
// production one. Output is either colored console text or JSON, always with the
// level, time and message keys.
//
// # Run Correlation
//
// Every invocation of the cleaner gets a random run id. WithRunID attaches it to a
// logger so that all lines written during one run can be correlated, e.g. when the
// job is scheduled by cron and its output collected into a single stream.
//
// # Configuration
//
//   - LOG_LEVEL: debug, info, warn, error (default info)
//   - LOG_FORMAT: console or json (default console)
//
// # Usage
//
//	log, err := logger.New(&cfg.Log)
//	if err != nil {
//	    return err
//	}
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Processing started", zap.String("target", "Overseerr"))
package logger
