package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"repo-mirror/archive"
	"repo-mirror/gh"
	"repo-mirror/helpers"
)

var (
	archiveDest string
	archiveRef  string
)

var archiveCmd = &cobra.Command{
	Use:   "archive <owner/repo>",
	Short: "Download a repository zipball and unpack it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, repository, err := helpers.ParseRepoIdentifier(args[0])
		if err != nil {
			return err
		}

		token, err := githubToken()
		if err != nil {
			return err
		}
		client := gh.NewClient(token)

		dest := archiveDest
		if dest == "" {
			dest = repository
		}

		logger.Debug("fetching archive",
			zap.String("repo", args[0]),
			zap.String("ref", archiveRef))

		data, err := client.FetchArchive(context.Background(), owner, repository, archiveRef)
		if err != nil {
			return err
		}

		if err := archive.ExtractZip(data, dest); err != nil {
			return err
		}

		fmt.Printf("[-] Unpacked %s (%s) into %s\n", args[0], helpers.FormatBytes(int64(len(data))), dest)
		return nil
	},
}

func init() {
	archiveCmd.Flags().StringVarP(&archiveDest, "dest", "d", "", "destination directory (default: repository name)")
	archiveCmd.Flags().StringVarP(&archiveRef, "ref", "r", "", "branch, tag, or commit (default: repository default branch)")
	rootCmd.AddCommand(archiveCmd)
}
