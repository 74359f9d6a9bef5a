package sdk

// Config holds settings shared by all SDK installers.
type Config struct {
	// Dir overrides the SDK root. Empty means <workspace>/fips-sdks/<platform>.
	Dir string `mapstructure:"dir" default:""`
	// DownloadTimeoutSeconds bounds connection setup and the wait for response
	// headers. The body transfer itself is bounded only by cancellation.
	DownloadTimeoutSeconds int `mapstructure:"download_timeout_seconds" default:"60"`
}
