package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lyriclens/cache"
)

var cacheFlags struct {
	expiredOnly bool
	force       bool
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the lyrics cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache entry counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		defer c.Close()

		total, expired, bytes := c.Stats()
		fmt.Printf("Cache: %s\n", appCfg.CachePath())
		fmt.Printf("Entries: %d (%d expired)\n", total, expired)
		fmt.Printf("Lyrics stored: %d bytes\n", bytes)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached lyrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		defer c.Close()

		if !cacheFlags.force && !cacheFlags.expiredOnly {
			if !confirm("Remove all cached lyrics?") {
				fmt.Println("aborted")
				return nil
			}
		}

		var removed int
		if cacheFlags.expiredOnly {
			removed, err = c.ClearExpired()
		} else {
			removed, err = c.Clear()
		}
		if err != nil {
			return err
		}
		fmt.Printf("removed %d entries\n", removed)
		return nil
	},
}

func init() {
	cacheClearCmd.Flags().BoolVar(&cacheFlags.expiredOnly, "expired-only", false, "remove only expired entries")
	cacheClearCmd.Flags().BoolVar(&cacheFlags.force, "force", false, "skip the confirmation prompt")

	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func openCache() (*cache.LyricsCache, error) {
	return cache.New(appCfg.CachePath(), appCfg.CacheTTLHours)
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
