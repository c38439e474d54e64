package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/omerdav/coursereg/internal/console"
	"github.com/omerdav/coursereg/internal/tui"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Log in as a student",
	Long:  "Log in with a student id and password and manage personal weekly schedules interactively.",
	Run: func(cmd *cobra.Command, args []string) {
		_, catalog, rows, err := openStores()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		for {
			login, err := tui.RunStudentLogin()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if login.Cancelled {
				break
			}
			student, err := catalog.Authenticate(login.StudentID, login.Password)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error authenticating student: %v\n", err)
				fmt.Fprintln(os.Stderr, "Invalid username or password. Please try again.")
				continue
			}

			session := console.NewStudentSession(console.New(catalog, os.Stdout, os.Stderr), student, rows)
			if session.Run(os.Stdin) == console.Exit {
				break
			}
		}

		if err := catalog.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving records: %v\n", err)
		}
	},
}
