package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Obtain an access token interactively",
	Long: "Prints the login URL, reads the request token obtained after the " +
		"login redirect, exchanges it for a session and prints the account " +
		"profile and margins.",
	Example: "kite login --api-key KEY --api-secret SECRET",
	Args:    cobra.NoArgs,
	RunE:    executeLogin,
}

func executeLogin(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	fmt.Printf("Please login using this URL: %s\n", client.LoginURL())
	fmt.Print("Enter the request_token obtained after login: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return scanner.Err()
	}
	requestToken := strings.TrimSpace(scanner.Text())

	ctx := cmd.Context()
	session, err := client.GenerateSession(ctx, requestToken, "")
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", session.UserName, session.UserID)

	profile, err := client.Profile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Profile: %s <%s>, broker %s\n", profile.UserName, profile.Email, profile.Broker)

	margins, err := client.Margins(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Equity margin: net %.2f, cash %.2f\n",
		margins.Equity.Net, margins.Equity.Available.Cash)
	fmt.Printf("Commodity margin: net %.2f, cash %.2f\n",
		margins.Commodity.Net, margins.Commodity.Available.Cash)

	return nil
}
