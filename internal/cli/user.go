package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User registration commands",
	}

	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserGetCmd())
	cmd.AddCommand(newUserRegisterCmd())
	cmd.AddCommand(newUserDeleteCmd())

	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var users []User
			if err := client.Get("/user", &users); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(users)
			return nil
		},
	}
}

func newUserGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user User
			if err := client.Get("/user/"+url.PathEscape(args[0]), &user); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(user)
			return nil
		},
	}
}

func newUserRegisterCmd() *cobra.Command {
	var (
		username   string
		password   string
		club       string
		newsLetter bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Long: `Register a new user.

The server validates the fields and reports the first problem it finds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"username":     username,
				"password":     password,
				"favoriteClub": club,
			}
			if cmd.Flags().Changed("newsletter") {
				body["newsLetter"] = newsLetter
			}

			var user User
			if _, err := client.Post("/user", body, &user); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(user)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (6-20 characters)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (8-36 letters and digits, at least one of each)")
	cmd.Flags().StringVarP(&club, "club", "c", "", "Favorite club")
	cmd.Flags().BoolVar(&newsLetter, "newsletter", false, "Subscribe to the newsletter")

	return cmd
}

func newUserDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/user/" + url.PathEscape(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Deleted user " + args[0])
			return nil
		},
	}
}
