package config

const (
	defaultConfigPath        = "~/.config/statbook/config.toml"
	projectConfigName        = "statbook.toml"
	defaultDataDirFallback   = "~/.local/share/statbook"
	defaultResultsFile       = "election_results.txt"
	defaultCandidateColumn   = 2
	defaultFilePattern       = "*.csv"
	defaultSentenceDelimiter = ". "
	defaultHistoryListLimit  = 20
	defaultLogFormat         = "console"
	defaultLogLevel          = "warn"
	defaultLogOutput         = "stderr"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir(),
		},
		Poll: Poll{
			ResultsFile:     defaultResultsFile,
			CandidateColumn: defaultCandidateColumn,
			FilePattern:     defaultFilePattern,
		},
		Paragraph: Paragraph{
			SentenceDelimiter: defaultSentenceDelimiter,
		},
		History: History{
			ListLimit: defaultHistoryListLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
