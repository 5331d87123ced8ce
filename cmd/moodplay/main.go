// Package main provides the moodplay CLI entry point.
// moodplay turns moods into music search queries and hands them to a playback queue,
// either as a Discord bot or from a local interactive shell.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"moodplay/internal/discord"
	"moodplay/internal/logger"
	"moodplay/internal/render"
	"moodplay/internal/shell"
	"moodplay/internal/version"
)

var (
	logLevel    string
	logFile     string
	configFile  string
	testMode    bool
	renderStyle string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "moodplay",
	Short: "moodplay - play music by mood",
	Long: `moodplay resolves a mood such as "chill" or "party" into a music search query
and hands a playback request to a queue service. It runs as a Discord bot
or as a local interactive shell.`,
	SilenceUsage: true,
}

// serveCmd runs the Discord bot
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Discord bot",
	Long:  `Connect to Discord, register the mood and random slash commands, and serve interactions until interrupted.`,
	RunE:  runServe,
}

// shellCmd runs the interactive shell
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Long:  `Start a local shell that runs the same commands as the bot, with tab completion of mood names.`,
	RunE:  runShell,
}

// moodsCmd lists the preset table
var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List available moods",
	RunE:  runMoods,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		if logLevel == "debug" {
			fmt.Println(version.GetDetailedVersion())
			return
		}
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./moodplay.yaml or <user config dir>/moodplay/moodplay.yaml)")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	rootCmd.PersistentFlags().String("moods-file", "", "YAML preset table replacing the built-in moods")
	rootCmd.PersistentFlags().String("queue-url", "", "Queue service endpoint; requests are only logged when empty")

	serveCmd.Flags().String("guild", "", "Register commands for a single guild instead of globally")
	moodsCmd.Flags().StringVar(&renderStyle, "style", "auto", "Render style (auto|dark|light|notty|ascii)")

	mustBind("moods.file", rootCmd.PersistentFlags().Lookup("moods-file"))
	mustBind("queue.url", rootCmd.PersistentFlags().Lookup("queue-url"))
	mustBind("discord.guild_id", serveCmd.Flags().Lookup("guild"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(moodsCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initLogger)
}

// mustBind binds a flag to a viper key, exiting on failure.
func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", key, err)
		os.Exit(1)
	}
}

func initLogger() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	logger.Info("Starting moodplay bot", "version", version.GetVersion())

	cfg, err := loadConfig(viper.GetViper(), configFile)
	if err != nil {
		return err
	}
	if err := cfg.ValidateDiscord(); err != nil {
		return err
	}

	bot, err := discord.NewBot(cfg.Discord.Token, cfg.Discord.GuildID)
	if err != nil {
		return err
	}

	base, err := buildEnqueuer(cfg)
	if err != nil {
		return err
	}

	app, err := buildApp(cfg, discord.NewNotifyingEnqueuer(base, bot.Session()))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return bot.Run(ctx, app.commands)
}

func runShell(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(viper.GetViper(), configFile)
	if err != nil {
		return err
	}

	base, err := buildEnqueuer(cfg)
	if err != nil {
		return err
	}

	app, err := buildApp(cfg, shell.NewEchoEnqueuer(base, os.Stdout))
	if err != nil {
		return err
	}

	listing := render.PresetMarkdown(app.moods.Presets())
	if rendered, err := render.Markdown(listing, "auto"); err == nil {
		listing = rendered
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	shell.New(app.commands, testMode, listing).Run(ctx)
	return nil
}

func runMoods(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(viper.GetViper(), configFile)
	if err != nil {
		return err
	}

	registry, err := loadMoods(cfg)
	if err != nil {
		return err
	}

	out, err := render.Presets(registry.Presets(), renderStyle)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
