package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Genius token:    %s\n", appCfg.MaskedToken())
		fmt.Printf("Cache dir:       %s\n", appCfg.CacheDir)
		fmt.Printf("Cache TTL:       %dh\n", appCfg.CacheTTLHours)
		fmt.Printf("Max songs:       %d\n", appCfg.DefaultMaxSongs)
		fmt.Printf("Top words:       %d\n", appCfg.DefaultTopWords)
		if !appCfg.IsConfigured() {
			fmt.Println("\nSet LYRICLENS_GENIUS_ACCESS_TOKEN to enable fetching.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
