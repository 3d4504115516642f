package cli

// Options are the global flags shared by every command.
type Options struct {
	Config    string `short:"c" long:"config" description:"yaml config file"`
	URL       string `short:"u" long:"url" description:"pybo server url, overrides PYBO_SERVER_URL"`
	Storage   string `short:"s" long:"storage" description:"session storage url, overrides PYBO_STORAGE_URL"`
	LogLevel  string `short:"l" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	LogFormat string `long:"log-format" description:"log format" choice:"text" choice:"json"`
}
