package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"meeting-room-booking/pkg/apiclient"
	"meeting-room-booking/pkg/datemath"
	"meeting-room-booking/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "booker",
	Short: "Book Google Workspace meeting rooms",
	Long: `booker finds free conference rooms and books them in your Google Calendar
through the meeting room booking API.

Sign in once with "booker login", then search with "booker rooms" and
book with "booker book".`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("api-url", "http://localhost:8080", "booking API base URL")
	pf.String("env", "production", "client environment sent to the API (development uses a longer timeout)")
	pf.String("token-file", defaultTokenFile(), "where the session is stored")
	pf.String("timezone", "", "IANA timezone for times (default: system timezone)")
	pf.Bool("verbose", false, "log requests and failures")

	for _, name := range []string{"api-url", "env", "token-file", "timezone", "verbose"} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newRoomsCmd(),
		newBookCmd(),
		newEventsCmd(),
		newCancelCmd(),
		newFloorsCmd(),
	)
}

// initConfig reads ~/.config/booker/config.yaml and BOOKER_* env vars.
// Flags given on the command line win.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "booker"))
	}
	viper.SetEnvPrefix("booker")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".booker-tokens.json"
	}
	return filepath.Join(dir, "booker", "tokens.json")
}

func newLogger() log.Logger {
	level := "error"
	if viper.GetBool("verbose") {
		level = "debug"
	}
	return log.Init(log.ZapConfig{
		Level:    level,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})
}

func newParser() (*datemath.Parser, error) {
	tz := viper.GetString("timezone")
	if tz == "" {
		return datemath.NewLocalParser(), nil
	}
	return datemath.NewParser(tz)
}

// newClient builds the API client. out receives navigation notices.
func newClient(cmd *cobra.Command) *apiclient.Client {
	out := cmd.OutOrStdout()
	nav := apiclient.NavigatorFunc(func(target string) {
		switch target {
		case apiclient.RouteSignIn:
			fmt.Fprintln(out, `Your session has ended. Run "booker login" to sign in again.`)
		case apiclient.RouteError:
			fmt.Fprintln(out, "The booking service could not complete the request.")
		default:
			fmt.Fprintf(out, "Open this URL in your browser:\n\n  %s\n\n", target)
		}
	})

	return apiclient.New(apiclient.Config{
		BaseURL:     viper.GetString("api-url"),
		Environment: viper.GetString("env"),
	}, &fileTokenStore{path: viper.GetString("token-file")}, nav, newLogger())
}

// envelopeErr turns a failed envelope into a command error.
func envelopeErr[T any](env apiclient.Envelope[T]) error {
	switch {
	case env.OK():
		return nil
	case env.Ignored():
		return errors.New("request cancelled")
	default:
		return errors.New(env.Message)
	}
}
