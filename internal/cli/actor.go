package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/linyuchen/gantry/internal/auth"
	"github.com/linyuchen/gantry/internal/domain"
	"github.com/spf13/cobra"
)

// resolveActor resolves the --as flag to a user profile. Every dataset
// command runs as a concrete user so department and role gates apply.
func resolveActor(cmd *cobra.Command) (*domain.UserProfile, error) {
	username, err := cmd.Flags().GetString("as")
	if err != nil {
		return nil, err
	}
	return auth.Authenticate(username)
}

// requireDepartment enforces the work-area gate before a dataset command
// runs. ADMIN passes everywhere.
func requireDepartment(actor *domain.UserProfile, dept domain.Department) error {
	if !actor.CanEnter(dept) {
		return fmt.Errorf("user %s (department %s) may not enter the %s area",
			actor.Username, actor.Department, dept)
	}
	return nil
}

// confirm prompts for a yes/no answer on stdin unless --yes was given.
// Destructive commands call this before mutating; there is no undo.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return false, err
	}
	if yes {
		return true, nil
	}
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
