package cmd

import (
	"fmt"
	"os"

	"github.com/brb-sh/brb/pkg/config"
	"github.com/brb-sh/brb/pkg/countdown"
	"github.com/brb-sh/brb/pkg/logger"
	"github.com/brb-sh/brb/pkg/tui"
	"github.com/brb-sh/brb/pkg/tui/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	printDir bool
)

var rootCmd = &cobra.Command{
	Use:   "brb [TIME...]",
	Short: "Full-screen away overlay with countdown and Twitch chat",
	Long: `brb puts a full-screen "be right back" overlay in your terminal:
a countdown, your status text and, optionally, the live Twitch chat of
your channel. Time arguments like "1h 2m 30s" are summed into the
countdown. Press q to come back.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		if printDir {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if err := logger.Init(); err != nil {
			return err
		}
		defer logger.Close()

		accent, err := theme.ParseColor(cfg.Color)
		if err != nil {
			return err
		}

		total, err := countdown.ParseTokens(args)
		if err != nil {
			return err
		}

		return tui.StartApp(cfg, accent, total)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/brb/brb.yaml)")

	rootCmd.Flags().StringP("text", "t", "Be right back", "the text to display below the time")
	viper.BindPFlag("text", rootCmd.Flags().Lookup("text"))

	rootCmd.Flags().Bool("chat", false, "show the chat pane")
	viper.BindPFlag("chat", rootCmd.Flags().Lookup("chat"))

	rootCmd.Flags().String("channel", "", "the Twitch channel for chat integration")
	viper.BindPFlag("channel", rootCmd.Flags().Lookup("channel"))

	rootCmd.Flags().String("color", "white", "the accent color, either NAME like 'red' or RGB like '255,0,0'")
	viper.BindPFlag("color", rootCmd.Flags().Lookup("color"))

	rootCmd.Flags().Bool("hide-timer", false, "hide the timer when it is finished")
	viper.BindPFlag("hide_timer", rootCmd.Flags().Lookup("hide-timer"))

	rootCmd.Flags().Bool("progress-bar", true, "display a progress bar of the timer's progress")
	viper.BindPFlag("progress_bar", rootCmd.Flags().Lookup("progress-bar"))

	rootCmd.Flags().Int("padding", 1, "set the outer padding")
	viper.BindPFlag("padding", rootCmd.Flags().Lookup("padding"))

	rootCmd.Flags().Bool("song-display", false, "show the currently playing song")
	viper.BindPFlag("song_display", rootCmd.Flags().Lookup("song-display"))

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.Flags().BoolVar(&printDir, "dir", false, "display where the config file should be located")
}
