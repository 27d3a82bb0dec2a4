package config

// Application constants for the dealer dashboard
const (
	// Application Info
	AppName    = "Dealer & Financial Dashboard"
	AppVersion = "1.0.0"

	// EnvPrefix is the prefix for environment variable configuration
	EnvPrefix = "DEALER"

	// Contract CSV exports. The two file names are fixed by the upstream
	// export job and are deliberately not configurable.
	ContractFileFrance = "data_desudo_france.csv"
	ContractFileItaly  = "data_desudo_italy.csv"

	// Variance table size served to the dashboard
	TopVarianceRows = 10
)
