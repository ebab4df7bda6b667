package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/amonks/daytask/api"
	"github.com/amonks/daytask/internal/credentials"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Sign in and store the session token",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup <username>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(1),
	RunE:  runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

var (
	loginPassword  string
	signupPassword string
	signupEmail    string
	signupName     string
)

func init() {
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)

	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (prompted when omitted)")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Password (prompted when omitted)")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Email address")
	signupCmd.Flags().StringVar(&signupName, "name", "", "Display name")
}

func runLogin(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	password, err := resolvePassword(loginPassword)
	if err != nil {
		return err
	}

	session, err := client.SignIn(cmd.Context(), args[0], password)
	if err != nil {
		return err
	}

	if err := credentials.Save(session.Token); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s\n", session.User.Username)
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	password, err := resolvePassword(signupPassword)
	if err != nil {
		return err
	}

	session, err := client.SignUp(cmd.Context(), api.SignUpOptions{
		Username: args[0],
		Email:    signupEmail,
		Name:     signupName,
		Password: password,
	})
	if err != nil {
		return err
	}

	if err := credentials.Save(session.Token); err != nil {
		return err
	}
	fmt.Printf("Created account %s\n", session.User.Username)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := credentials.Clear(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.Verify(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println(user.Username)
	if user.Email != "" {
		fmt.Println(user.Email)
	}
	return nil
}

// resolvePassword returns the flag value, or prompts on a terminal.
func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no password given: pass --password or run interactively")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}
