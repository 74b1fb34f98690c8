package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixhaven/pixctl/auth"
)

var loginUsername string

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the PixHaven server and store the session token",
	Long: `Log in with username and password. The session token is written to the
credentials file and used as the bearer credential on subsequent commands.`,
	PreRunE: initializeApp,
	RunE:    runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if cfg.Auth.Token != "" {
		return fmt.Errorf("a token is configured in auth.token; remove it to use login")
	}

	reader := bufio.NewReader(os.Stdin)

	username := loginUsername
	if username == "" {
		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
		username = strings.TrimSpace(line)
	}

	fmt.Print("Password: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimSpace(line)

	session, err := client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := credFile.Set(auth.TokenKey, session.Token); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}

	fmt.Println("Logged in.")
	if !session.ExpiresAt.IsZero() {
		fmt.Printf("Session expires at %s\n", session.ExpiresAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
