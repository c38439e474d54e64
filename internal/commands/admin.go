package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omerdav/coursereg/internal/config"
	"github.com/omerdav/coursereg/internal/console"
	"github.com/omerdav/coursereg/internal/tui"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Log in as the administrator",
	Long:  "Log in with the admin password and manage course, lecturer and student records interactively.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, catalog, _, err := openStores()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		for {
			login, err := tui.RunAdminLogin()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if login.Cancelled {
				return
			}
			if login.Password != cfg.AdminPassword {
				fmt.Fprintln(os.Stderr, "Error: invalid password. Please try again.")
				continue
			}

			offerPasswordChange(cfg)
			if console.New(catalog, os.Stdout, os.Stderr).RunAdmin(os.Stdin) == console.Exit {
				break
			}
		}

		// Failure to persist at shutdown loses the session's changes;
		// report it and move on.
		if err := catalog.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving records: %v\n", err)
		}
	},
}

// offerPasswordChange lets the admin replace the password right after
// login. A new password is persisted to the config file immediately.
func offerPasswordChange(cfg *config.Config) {
	fmt.Println("Do you want to change the password? (yes or no)")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
		return
	}
	fmt.Println("Enter the new password:")
	if !scanner.Scan() {
		return
	}
	password := strings.TrimSpace(scanner.Text())
	if password == "" {
		fmt.Fprintln(os.Stderr, "Error: password cannot be empty.")
		return
	}
	cfg.AdminPassword = password
	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
	}
}
