// Package log provides a wrapped zap logger for binaries to use,
// and a simple Wrapper type to be used by other packages in this module.
//
// The global logger is a nop logger until one of the Init functions is
// called:
//
//	log.InitFromConfig(cfg.Log)
//	defer log.Sync()
//
//	log.Warnw("Entropy device unavailable", "path", path, "err", err)
package log
