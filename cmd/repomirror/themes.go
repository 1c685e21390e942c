package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"repo-mirror/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := theme.List(cfg.ThemesDir)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var themesFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Resolve a theme name to its file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := theme.Lookup(cfg.ThemesDir, args[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	themesCmd.AddCommand(themesFindCmd)
	rootCmd.AddCommand(themesCmd)
}
