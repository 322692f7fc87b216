// jumper is a side-scrolling obstacle runner for the terminal.
//
// Usage:
//
//	jumper play              - Play a run in the current terminal
//	jumper list              - List available games
//	jumper scores            - Print the top scores
//	jumper board             - Browse high scores interactively
//	jumper menu              - Title menu with difficulty picker
//	jumper serve             - Start SSH server for remote play
//	jumper config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.jumper/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <preset> - easy, normal or hard
//	--debug               - Start with the debug overlay
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/games/jumper"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "jumper",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - jump over obstacles in your terminal",
	Long: `Jumper is a side-scrolling runner: obstacles scroll in from the right
and the run ends on the first hit. The longer you survive the higher your
level and the faster new obstacles appear.

Available commands:
  play     - Play a run
  list     - Show all available games
  scores   - Print high scores
  board    - Interactive high score table
  menu     - Title menu: difficulty, play, scores
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  jumper play
  jumper play --seed 42 --debug
  jumper play --difficulty hard
  jumper serve --ssh :2222
  jumper scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
			return err
		}
		jumper.SetConfigPath(flagConfig)
		jumper.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay enabled")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// gameArg returns the game named on the command line, or the runner itself.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return jumper.ID
}
