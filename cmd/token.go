package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// tokenCmd groups access-token operations
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage image access tokens",
	Long: `Access tokens gate the public data URL of an image. Regenerating a token
invalidates the old one; revoking disables public access entirely.`,
}

var tokenRegenerateCmd = &cobra.Command{
	Use:     "regenerate <image-id>",
	Short:   "Regenerate an image's access token",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runTokenRegenerate,
}

var tokenRevokeCmd = &cobra.Command{
	Use:     "revoke <image-id>",
	Short:   "Revoke an image's access token",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runTokenRevoke,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenRegenerateCmd)
	tokenCmd.AddCommand(tokenRevokeCmd)
}

func runTokenRegenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	id := args[0]

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would regenerate access token for image %s\n", id)
		return nil
	}

	token, err := client.RegenerateAccessToken(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("New access token: %s\n", token.AccessToken)
	fmt.Printf("Data URL: %s\n", client.ImageDataURL(id, token.AccessToken))
	return nil
}

func runTokenRevoke(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	id := args[0]

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would revoke access token for image %s\n", id)
		return nil
	}

	confirmation, err := client.RevokeAccess(ctx, id)
	if err != nil {
		return err
	}

	if confirmation.Message != "" {
		fmt.Println(confirmation.Message)
	} else {
		fmt.Println("Access revoked.")
	}
	return nil
}
