package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"CapIot.timestream/internal/apiclient"
	"CapIot.timestream/internal/config"
	"CapIot.timestream/internal/logger"
	"github.com/spf13/cobra"
)

type options struct {
	apiURL  string
	window  string
	verbose bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "telemetryctl",
		Short:         "Query device telemetry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("api-url") {
				opts.apiURL = cfg.APIURL
			}
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(logger.New(cmd.ErrOrStderr(), "text", level))
			return nil
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "http://localhost:8000", "base URL of the telemetry API (defaults to API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newRecentCmd(opts),
		newDeviceCmd(opts),
		newDevicesCmd(opts),
	)
	return rootCmd
}

func newRecentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Raw rows of the last hour, all devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiclient.New(opts.apiURL).Recent(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func newDeviceCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device <deviceId>",
		Short: "Readings of one device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiclient.New(opts.apiURL).Device(cmd.Context(), args[0], opts.window)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	addWindowFlag(cmd, opts)
	return cmd
}

func newDevicesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices <id,id,...>",
		Short: "Readings of several devices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ids []string
			for _, arg := range args {
				ids = append(ids, strings.Split(arg, ",")...)
			}
			resp, err := apiclient.New(opts.apiURL).Devices(cmd.Context(), ids, opts.window)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	addWindowFlag(cmd, opts)
	return cmd
}

func addWindowFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.window, "window", "w", "", "time window such as 30m, 2h or 7d (server default 1m)")
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
