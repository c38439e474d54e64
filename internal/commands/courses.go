package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the course catalog",
	Long:  "Print every course record with its registered sessions, without logging in.",
	Run: func(cmd *cobra.Command, args []string) {
		_, catalog, _, err := openStores()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		courses := catalog.Courses()
		if len(courses) == 0 {
			fmt.Println("No courses found.")
			return
		}
		for _, course := range courses {
			fmt.Println(course)
		}
	},
}
