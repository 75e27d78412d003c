package config

const (
	defaultInputPath     = "input.csv"
	defaultOutputPath    = "output_wordSim.csv"
	defaultEncoding      = "utf-8"
	defaultDelimiter     = ","
	defaultFormat        = "csv"
	defaultPrecision     = -1
	defaultWindow        = 256
	defaultErrorPolicy   = "yield"
	defaultCacheSize     = 4096
	defaultServerPort    = 8080
	defaultReadTimeout   = 30
	defaultWriteTimeout  = 30
	defaultMaxBodyBytes  = 10 * 1024 * 1024
	defaultMaxBatchPairs = 10000
	defaultLogFormat     = "text"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: Input{
			Path:      defaultInputPath,
			Encoding:  defaultEncoding,
			Delimiter: defaultDelimiter,
		},
		Output: Output{
			Path:      defaultOutputPath,
			Format:    defaultFormat,
			Precision: defaultPrecision,
		},
		Scoring: Scoring{
			Workers:           0,
			Window:            defaultWindow,
			ErrorPolicy:       defaultErrorPolicy,
			BaselineCacheSize: defaultCacheSize,
		},
		Server: Server{
			Port:                defaultServerPort,
			ReadTimeoutSeconds:  defaultReadTimeout,
			WriteTimeoutSeconds: defaultWriteTimeout,
			MaxRequestBytes:     defaultMaxBodyBytes,
			MaxBatchPairs:       defaultMaxBatchPairs,
			WarmUp:              true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Async:  true,
		},
	}
}
