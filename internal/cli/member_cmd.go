package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamflowhq/teamflow/internal/domain"
)

// resolveMember accepts a member id, an id prefix, or a
// case-insensitive name and returns the matching member.
func resolveMember(app *App, input string) (domain.Member, error) {
	if input == "" {
		return domain.Member{}, fmt.Errorf("member is required")
	}
	members := app.Store.Members()

	if m, ok := app.Store.Member(input); ok {
		return m, nil
	}
	for _, m := range members {
		if strings.EqualFold(m.Name, input) {
			return m, nil
		}
	}

	var matches []domain.Member
	for _, m := range members {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Member{}, fmt.Errorf("member not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return domain.Member{}, fmt.Errorf("member %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage team members",
	}

	cmd.AddCommand(
		newMemberAddCmd(app),
		newMemberListCmd(app),
		newMemberRenameCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newMemberAddCmd(app *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Store.AddMember(args[0], role)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", m.Name, m.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role label (Partner, Manager, Senior, Staff, Intern); defaults to Staff")

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members := app.Store.Members()
			if len(members) == 0 {
				fmt.Println("No members.")
				return nil
			}
			fmt.Print(FormatMemberList(members, app.Store.Tasks()))
			return nil
		},
	}
}

func newMemberRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <member> <name>",
		Short: "Rename a team member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMember(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.RenameMember(m.ID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed %s to %s\n", m.Name, args[1])
			return nil
		},
	}
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <member>",
		Short: "Remove a member and all their scheduled tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMember(app, args[0])
			if err != nil {
				return err
			}
			removed := len(app.Store.Tasks())
			app.Store.DeleteMember(m.ID)
			removed -= len(app.Store.Tasks())
			fmt.Printf("Removed %s and %d task(s)\n", m.Name, removed)
			return nil
		},
	}
}
