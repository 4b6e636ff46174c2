package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamflowhq/teamflow/internal/domain"
)

func newTodoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the to-do list",
	}

	cmd.AddCommand(
		newTodoAddCmd(app),
		newTodoListCmd(app),
		newTodoDoneCmd(app),
		newTodoRemoveCmd(app),
	)

	return cmd
}

func newTodoAddCmd(app *App) *cobra.Command {
	var member string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a to-do item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID := ""
			if member != "" {
				m, err := resolveMember(app, member)
				if err != nil {
					return err
				}
				memberID = m.ID
			}
			td, err := app.Store.AddTodo(args[0], memberID)
			if err != nil {
				return err
			}
			fmt.Printf("Added todo: %s\n", td.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "Assign to a member (default: everyone)")

	return cmd
}

func newTodoListCmd(app *App) *cobra.Command {
	var member string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List to-do items",
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID := ""
			if member != "" {
				m, err := resolveMember(app, member)
				if err != nil {
					return err
				}
				memberID = m.ID
			}
			todos := app.Store.TodosFor(memberID)
			if len(todos) == 0 {
				fmt.Println("No todos.")
				return nil
			}
			fmt.Print(FormatTodoList(todos, app.Store.Members()))
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "Filter by member")

	return cmd
}

func resolveTodo(app *App, input string) (domain.Todo, error) {
	var matches []domain.Todo
	for _, td := range app.Store.Todos() {
		if td.ID == input {
			return td, nil
		}
		if strings.HasPrefix(td.ID, input) {
			matches = append(matches, td)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return domain.Todo{}, fmt.Errorf("todo not found: %q", input)
	default:
		return domain.Todo{}, fmt.Errorf("todo id %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTodoDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <todo-id>",
		Short: "Toggle a to-do item's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			td, err := resolveTodo(app, args[0])
			if err != nil {
				return err
			}
			app.Store.ToggleTodo(td.ID)
			state := "done"
			if td.Completed {
				state = "open"
			}
			fmt.Printf("Marked %q %s\n", td.Text, state)
			return nil
		},
	}
}

func newTodoRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <todo-id>",
		Short: "Delete a to-do item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			td, err := resolveTodo(app, args[0])
			if err != nil {
				return err
			}
			app.Store.DeleteTodo(td.ID)
			fmt.Printf("Deleted todo: %s\n", td.Text)
			return nil
		},
	}
}
