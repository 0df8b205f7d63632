package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	eventdesk "github.com/derWhity/eventdesk/internal"
	"github.com/derWhity/eventdesk/internal/ctxhelper"
	"github.com/derWhity/eventdesk/internal/log"
	"github.com/derWhity/eventdesk/internal/slug"
)

// newRootCmd creates the root command which runs the server
func newRootCmd(defaultConfig string) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Manage events in the browser",
		Long: `eventdesk serves a small event management front-end.
Events live in memory and belong to the browser session they have been created in.`,
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configFile)
		},
	}
	cmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		defaultConfig,
		"The configuration file to load the application's configuration from",
	)
	cmd.AddCommand(newSlugCmd(), newConfigCmd(&configFile))
	return cmd
}

// newSlugCmd creates the command printing the slug an event name results in
func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug NAME...",
		Short: "Print the slug used for the image paths of an event with the given name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), slug.Make(strings.Join(args, " ")))
			return err
		},
	}
}

// newConfigCmd creates the commands for managing the configuration file
func newConfigCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration - with environment overrides applied - to the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.WithField(log.FldVersion, appVersion)
			ctx := ctxhelper.WithLogger(context.Background(), logger)
			cs := eventdesk.NewConfigService(*configFile)
			if err := cs.ApplyEnv(ctx); err != nil {
				return err
			}
			return cs.Write(ctx)
		},
	})
	return cmd
}
