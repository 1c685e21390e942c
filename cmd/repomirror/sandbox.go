package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repo-mirror/config"
	"repo-mirror/render"
	"repo-mirror/sandbox"
)

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Manage remote sandboxes",
}

var sandboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sandboxes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := sandboxClient()
		if err != nil {
			return err
		}
		sandboxes, err := client.List(context.Background())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(sandboxes))
		for _, sb := range sandboxes {
			rows = append(rows, []string{sb.ID, sb.Template, sb.Status, sb.CreatedAt})
		}
		fmt.Print(render.Table([]string{"ID", "TEMPLATE", "STATUS", "CREATED"}, rows))
		return nil
	},
}

var sandboxCreateCmd = &cobra.Command{
	Use:   "create <template>",
	Short: "Create a sandbox from a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := sandboxClient()
		if err != nil {
			return err
		}
		sb, err := client.Create(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("[-] Created sandbox %s (%s)\n", sb.ID, sb.Status)
		return nil
	},
}

var sandboxDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sandbox",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := sandboxClient()
		if err != nil {
			return err
		}
		if err := client.Delete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("[-] Deleted sandbox %s\n", args[0])
		return nil
	},
}

func sandboxClient() (*sandbox.Client, error) {
	token := os.Getenv("SANDBOX_TOKEN")
	if token == "" {
		var err error
		token, err = config.ReadTokenFile(cfg.SandboxTokenPath)
		if err != nil {
			return nil, err
		}
	}
	return &sandbox.Client{BaseURL: cfg.SandboxBaseURL, Token: token}, nil
}

func init() {
	sandboxCmd.AddCommand(sandboxListCmd, sandboxCreateCmd, sandboxDeleteCmd)
	rootCmd.AddCommand(sandboxCmd)
}
