package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagMode      = flag.String("mode", "", "View mode override (sidescroll, topdown, isometric, sat_on, sat_off)")
	flagExactSqrt = flag.Bool("exact-sqrt", false, "Use an exact square root instead of the legacy approximation")
	flagPlanar    = flag.Bool("planar", false, "Ignore the excluded axis entirely in 2D view modes")
	flagStage     = flag.String("stage", "", "Stage name to test")
	flagLogFile   = flag.String("log-file", "", "Also write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMode != "" {
		cfg.Collision.ViewMode = *flagMode
	}
	if *flagExactSqrt {
		cfg.Collision.Sqrt = "exact"
	}
	if *flagPlanar {
		cfg.Collision.PlanarDelta = true
	}
	if *flagStage != "" {
		cfg.Scene.Stage = *flagStage
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
