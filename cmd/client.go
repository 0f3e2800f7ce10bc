package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/client"
	pb "github.com/afoley587/coding-challenges-2025/grpc-user-service/proto"
)

var (
	// server address
	clientServerAddr string

	// user fields
	userID   string
	newName  string
	newEmail string
	limit    uint32
)

// Wrapper to build a high-level client
func getClient() (*client.GRPCClient, error) {
	return client.NewClient(client.DialConfig{Address: clientServerAddr})
}

func printUser(u *pb.User) {
	fmt.Printf("id=%s name=%s mail=%s\n", u.GetId().GetId(), u.GetName(), u.GetMail())
}

func requireFlags(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("--%s must be specified", pairs[i])
		}
	}
	return nil
}

// Root client command
var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Interact with the gRPC server",
	Long:  "Commands for reading, creating, updating and deleting users via the gRPC client.",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Stream users",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}
		defer c.Close()
		logger.Debug().Str("addr", clientServerAddr).Uint32("limit", limit).Msg("listing users")
		return c.ListUsers(cmd.Context(), limit, func(u *pb.User) error {
			printUser(u)
			return nil
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a user by ID",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags("id", userID); err != nil {
			return err
		}
		c, err := getClient()
		if err != nil {
			return err
		}
		defer c.Close()

		user, err := c.GetUser(cmd.Context(), userID)
		if err != nil {
			return err
		}
		printUser(user)
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if userID == "" || newName == "" || newEmail == "" {
			return errors.New("--id, --name and --email must be specified")
		}
		c, err := getClient()
		if err != nil {
			return err
		}
		defer c.Close()
		if err := c.CreateUser(cmd.Context(), userID, newName, newEmail); err != nil {
			return err
		}
		fmt.Printf("Created user %s\n", userID)
		return nil
	},
}

var updateNameCmd = &cobra.Command{
	Use:   "update-name",
	Short: "Change a user's name",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags("id", userID, "name", newName); err != nil {
			return err
		}
		c, err := getClient()
		if err != nil {
			return err
		}
		defer c.Close()
		if err := c.UpdateUserName(cmd.Context(), userID, newName); err != nil {
			return err
		}
		fmt.Printf("Updated name of user %s\n", userID)
		return nil
	},
}

var updateMailCmd = &cobra.Command{
	Use:   "update-mail",
	Short: "Change a user's mail",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags("id", userID, "email", newEmail); err != nil {
			return err
		}
		c, err := getClient()
		if err != nil {
			return err
		}
		defer c.Close()
		if err := c.UpdateUserMail(cmd.Context(), userID, newEmail); err != nil {
			return err
		}
		fmt.Printf("Updated mail of user %s\n", userID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a user by ID",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags("id", userID); err != nil {
			return err
		}
		c, err := getClient()
		if err != nil {
			return err
		}
		defer c.Close()
		if err := c.DeleteUser(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Printf("Deleted user %s\n", userID)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop and recreate the users table",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}
		defer c.Close()
		if err := c.ResetStore(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Store reset")
		return nil
	},
}

func init() {

	clientCmd.PersistentFlags().StringVarP(&clientServerAddr,
		"addr", "a", "127.0.0.1:9090", "Server address")

	clientCmd.PersistentFlags().StringVarP(&userID, "id", "i", "", "ID of the user")

	listCmd.Flags().Uint32VarP(&limit, "limit", "l", 1024, "Maximum number of users to list")

	for _, c := range []*cobra.Command{createCmd, updateNameCmd} {
		c.Flags().StringVarP(&newName, "name", "n", "", "Name of the user")
	}
	for _, c := range []*cobra.Command{createCmd, updateMailCmd} {
		c.Flags().StringVarP(&newEmail, "email", "e", "", "Email of the user")
	}

	clientCmd.AddCommand(listCmd, getCmd, createCmd, updateNameCmd, updateMailCmd, deleteCmd, resetCmd)
	rootCmd.AddCommand(clientCmd)
}
