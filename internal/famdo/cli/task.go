package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/famdoapp/famdo/internal/famdo/app"
	"github.com/famdoapp/famdo/internal/famdo/domain"
	"github.com/famdoapp/famdo/internal/famdo/service"
)

func taskCmd(application *app.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage personal and family tasks",
	}
	cmd.AddCommand(
		taskAddCmd(application),
		taskListCmd(application),
		taskEditCmd(application),
		taskDoneCmd(application),
		taskRemoveCmd(application),
	)
	return cmd
}

func taskAddCmd(application *app.Application) *cobra.Command {
	var (
		description string
		priority    string
		family      bool
		assignee    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task (personal by default, --family for a shared one)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}

			in := service.TaskInput{
				Title:       args[0],
				Description: description,
			}
			if priority != "" {
				p, err := domain.ParsePriority(priority)
				if err != nil {
					return err
				}
				in.Priority = p
			}
			if family {
				fam, _, err := application.Membership.Info(ctx, sess.Identity.ID)
				if err != nil {
					return err
				}
				in.FamilyID = fam.ID
				in.AssignedTo = assignee
			}

			task, err := application.Tasks.Create(ctx, sess.Identity, in)
			if err != nil {
				return err
			}
			application.PushTask(ctx, sess, app.TaskOpCreate, task)

			fmt.Printf("added %s (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (low, medium, high)")
	cmd.Flags().BoolVar(&family, "family", false, "Create the task in your family (leader only)")
	cmd.Flags().StringVarP(&assignee, "assign", "a", "", "User ID to assign a family task to")
	return cmd
}

func taskListCmd(application *app.Application) *cobra.Command {
	var family bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks, pending first, by priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}

			var tasks []domain.Task
			if family {
				tasks, err = application.Tasks.ListFamily(ctx, sess.Identity)
			} else {
				tasks, err = application.Tasks.ListPersonal(ctx, sess.Identity)
			}
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("no tasks")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS\tASSIGNED")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Title, t.Priority, t.Status, t.AssignedTo)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&family, "family", false, "Show the whole family's tasks")
	return cmd
}

func taskEditCmd(application *app.Application) *cobra.Command {
	var (
		title       string
		description string
		priority    string
		assignee    string
	)

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Edit a task's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}

			var changes service.TaskUpdate
			if cmd.Flags().Changed("title") {
				changes.Title = &title
			}
			if cmd.Flags().Changed("description") {
				changes.Description = &description
			}
			if cmd.Flags().Changed("priority") {
				p, err := domain.ParsePriority(priority)
				if err != nil {
					return err
				}
				changes.Priority = &p
			}
			if cmd.Flags().Changed("assign") {
				changes.AssignedTo = &assignee
			}

			task, err := application.Tasks.Update(ctx, sess.Identity, args[0], changes)
			if err != nil {
				return err
			}
			application.PushTask(ctx, sess, app.TaskOpUpdate, task)

			fmt.Printf("updated %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority (low, medium, high)")
	cmd.Flags().StringVarP(&assignee, "assign", "a", "", "Reassign to this user ID (leader only)")
	return cmd
}

func taskDoneCmd(application *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a task between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}

			task, err := application.Tasks.ToggleStatus(ctx, sess.Identity, args[0])
			if err != nil {
				return err
			}
			application.PushTask(ctx, sess, app.TaskOpUpdate, task)

			fmt.Printf("%s is now %s\n", task.Title, task.Status)
			return nil
		},
	}
}

func taskRemoveCmd(application *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}

			// Load first so the push after the local delete still knows the
			// task's scope.
			task, err := application.Tasks.Get(ctx, sess.Identity, args[0])
			if err != nil {
				return err
			}
			if err := application.Tasks.Delete(ctx, sess.Identity, args[0]); err != nil {
				return err
			}
			application.PushTask(ctx, sess, app.TaskOpDelete, task)

			fmt.Printf("removed %s\n", task.Title)
			return nil
		},
	}
}
