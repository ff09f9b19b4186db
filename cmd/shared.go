package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmaraujo/agendo/auth"
	"github.com/dmaraujo/agendo/client"
	"github.com/dmaraujo/agendo/db"
	"github.com/dmaraujo/agendo/guard"
	"github.com/dmaraujo/agendo/pkg/clierr"
	"golang.org/x/term"
)

// newSessionAndClient wires the session service and the API client together.
// The client implements the session's token renewer, and the session supplies
// the client's tokens.
func newSessionAndClient() (*auth.Service, *client.Client) {
	api := client.NewClient(apiBaseURL())
	session := auth.NewService(db.NewCredentialRepository(db.GetDB()), api)
	api.AttachSession(session)
	return session, api
}

// apiBaseURL returns the remote authority's base URL, overridable via the
// AGENDO_API_URL environment variable.
func apiBaseURL() string {
	if v := os.Getenv("AGENDO_API_URL"); v != "" {
		return v
	}
	return client.DefaultBaseURL
}

// requireRegion gates a command group on the route guard's decision for a
// protected region. It returns a structured error naming where the user
// belongs instead.
func requireRegion(ctx context.Context, session *auth.Service, region guard.Region) error {
	decision := guard.Evaluate(session.Authenticated(ctx), session.Role(ctx), region)
	if decision.Allowed {
		return nil
	}
	if decision.RedirectTo == guard.LoginRoute {
		return clierr.New(clierr.Unauthorized, "You are not logged in. Please run 'agendo login' first.", nil)
	}
	return clierr.New(clierr.Unauthorized,
		fmt.Sprintf("This area is not available for your account. Your area is: %s", decision.RedirectTo), nil)
}

// promptForInput prompts the user for input and returns the trimmed string.
func promptForInput(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(prompt)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println("Error: Failed to read input.")
		os.Exit(1)
	}
	return strings.TrimSpace(input)
}

// promptForPassword prompts the user for a password securely and returns the trimmed string.
func promptForPassword(prompt string) string {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Println("Error: Failed to read password.")
		os.Exit(1)
	}
	fmt.Println() // Print a newline for better formatting
	return strings.TrimSpace(string(password))
}
