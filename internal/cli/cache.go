package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphscape/graphscape/pkg/cache"
)

// cacheCommand creates the cache command for managing the layout result cache.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout result cache",
		Long: `Manage the layout result cache.

Layout results are cached under the XDG cache directory and reused when the
same graph is laid out again with the same algorithm and parameters.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all cached layout results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			defer fc.Close()
			if err := fc.(*cache.FileCache).Clear(); err != nil {
				return err
			}
			printSuccess("Cache cleared")
			printFile(dir)
			return nil
		},
	})

	return cmd
}
