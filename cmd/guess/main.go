// guess plays Mastermind and Wheel of Fortune in the terminal, against
// yourself or by watching computer players.
//
// Usage:
//
//	guess list              - List available games
//	guess play [game]       - Play a game (menu when no game is given)
//	guess ai                - Let the computer players run every phrase
//	guess config            - Print the default configuration
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible games
//	--config <path>  - Path to a YAML config file
//	--store <kind>   - Statistics store: memory or sqlite
//	--plain          - Use the line console instead of the TUI
//	--verbose        - Log every turn
//	--top <n>        - Number of records on the leaderboard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/guess-arcade/internal/games/mastermind"
	_ "github.com/vovakirdan/guess-arcade/internal/games/wheel"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagStore   string
	flagPlain   bool
	flagVerbose bool
	flagTop     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess Arcade - Mastermind and Wheel of Fortune in your terminal",
	Long: `Guess Arcade hosts turn-based guessing games for human and
computer players and keeps score across every game of a run.

Available commands:
  list     - Show all available games
  play     - Play a game yourself
  ai       - Watch the computer players guess every phrase
  config   - Print the default configuration

Examples:
  guess list
  guess play mastermind
  guess play wheel --seed 42
  guess ai --human`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Statistics store: memory or sqlite (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Use the plain line console instead of the TUI")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&flagTop, "top", 0, "Leaderboard length (default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(aiCmd)
	rootCmd.AddCommand(configCmd)
}
