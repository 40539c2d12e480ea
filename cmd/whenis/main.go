// Command whenis parses a date whose format and timezone are not known in
// advance and prints the resolved instant.
//
// Flags can also be set through WHENIS_* environment variables or a local
// .env file, e.g. WHENIS_COUNTRY=US.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"simpledate"
	"simpledate/tzdb"
	"simpledate/tzsearch"
)

func main() {
	_ = godotenv.Load()
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "whenis <date>",
		Short:        "Parse an ambiguous date and resolve its timezone",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	cmd.Flags().StringSlice("tz", nil, "timezone constraint (name or identifier, repeatable)")
	cmd.Flags().StringSlice("country", nil, "restrict zones to these ISO country codes")
	cmd.Flags().StringSlice("format", nil, "format templates to try, in order")
	cmd.Flags().Bool("first", false, "accept the first candidate zone instead of failing on ambiguity")
	cmd.Flags().Bool("dst", false, "prefer the daylight side of ambiguous readings")
	cmd.Flags().Bool("verbose", false, "trace format and zone resolution")

	viper.SetEnvPrefix("WHENIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlags(cmd.Flags()))

	return cmd
}

func run(cmd *cobra.Command, input string) error {
	db, err := tzdb.Open()
	if err != nil {
		return err
	}

	opts := simpledate.Options{
		Database: db,
		Formats:  viper.GetStringSlice("format"),
	}
	if viper.GetBool("verbose") {
		opts.Trace = func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		}
	}
	p, err := simpledate.NewParser(opts)
	if err != nil {
		return err
	}

	var zones []tzsearch.Specifier
	for _, name := range viper.GetStringSlice("tz") {
		zones = append(zones, tzsearch.Name(name))
	}
	hint := tzsearch.PreferStandard
	if viper.GetBool("dst") {
		hint = tzsearch.PreferDaylight
	}

	d, err := p.Parse(input, simpledate.ParseOptions{
		Zones:     zones,
		Countries: viper.GetStringSlice("country"),
		Hint:      hint,
		TakeFirst: viper.GetBool("first"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "local:  %s\nzone:   %s\nformat: %s\nutc:    %s\n",
		d.String(), d.Rule(), d.Format(),
		d.Time().UTC().Format(time.RFC3339Nano))
	return nil
}
