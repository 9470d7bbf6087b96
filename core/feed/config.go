package feed

// Config holds configuration for the upstream inventory feed.
type Config struct {
	// Endpoint is the URL of the feed export service.
	Endpoint string `mapstructure:"endpoint" default:""`
	// Sheet is the worksheet/tab name requested from the feed.
	Sheet string `mapstructure:"sheet" default:"Bibit"`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// CacheTTLMinutes bounds the age of the cached payload before a live
	// fetch. Default is six hours.
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes" default:"360"`
	// PollIntervalSeconds is the background reconciliation interval.
	// Zero disables polling.
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds" default:"30"`
	// WatchSpecies is the species term tracked with a dedicated live view.
	// Empty disables the view.
	WatchSpecies string `mapstructure:"watch_species" default:"sengon"`
}
