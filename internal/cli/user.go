package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"medimanager/internal/adapters/storage/snapshotrepo"
	"medimanager/internal/domain/users"
)

type userAddResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func NewUserCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(newUserAddCommand(rootOpts))
	return cmd
}

func newUserAddCommand(rootOpts *RootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user with a bcrypt-hashed password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return errors.New("--username and --password are required")
			}

			store, err := rootOpts.OpenStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			svc := users.NewService(snapshotrepo.NewUserRepo(store))
			u, err := svc.Add(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(userAddResult{ID: u.ID, Username: u.Username})
			}
			_, err = fmt.Fprintf(out, "created user %s (%s)\n", u.Username, u.ID)
			return err
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (required)")

	return cmd
}

func NewHashPasswordCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash of a password",
		Long:  "Imprime el hash bcrypt para pegar a mano en users.json.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := users.HashPassword(args[0], 0)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}
