package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akorchak/patentgrab/internal/model"
)

// addHTTPFlags registers the fetch-client flags shared by the fetch and
// batch commands.
func addHTTPFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("timeout", 30*time.Second, "HTTP request timeout")
	cmd.Flags().String("ua", "", "override the User-Agent header")
	cmd.Flags().Int64("max-bytes", 0, "truncate response bodies beyond this size (0 = config default)")
	cmd.Flags().Bool("no-cache", false, "disable the fetched-page cache")
	cmd.Flags().Bool("no-robots", false, "skip robots.txt checks")
	cmd.Flags().Bool("insecure", false, "skip TLS certificate verification")
	cmd.Flags().String("http-proxy", "", "proxy for HTTP requests")
	cmd.Flags().String("https-proxy", "", "proxy for HTTPS requests")
}

// buildConfig layers defaults, the config file/environment and explicit
// flags, in that order. Only flags the user actually set override the file.
func buildConfig(cmd *cobra.Command) *model.Config {
	cfg := model.DefaultConfig()
	_ = viper.Unmarshal(cfg)

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.HTTP.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("ua") {
		cfg.HTTP.UserAgent, _ = flags.GetString("ua")
	}
	if flags.Changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes, _ = flags.GetInt64("max-bytes")
	}
	if noCache, _ := flags.GetBool("no-cache"); noCache {
		cfg.Cache.Enabled = false
	}
	if noRobots, _ := flags.GetBool("no-robots"); noRobots {
		cfg.Robots.Respect = false
	}
	if insecure, _ := flags.GetBool("insecure"); insecure {
		cfg.HTTP.InsecureTLS = true
	}
	if flags.Changed("http-proxy") {
		cfg.HTTP.HTTPProxy, _ = flags.GetString("http-proxy")
	}
	if flags.Changed("https-proxy") {
		cfg.HTTP.HTTPSProxy, _ = flags.GetString("https-proxy")
	}
	return cfg
}
