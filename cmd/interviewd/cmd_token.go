package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/interview-coach/internal/auth"
	"github.com/saulo-duarte/interview-coach/internal/config"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development token for a user id",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Init()
		auth.Init()

		user, _ := cmd.Flags().GetString("user")
		if user == "" {
			user = uuid.NewString()
		} else if _, err := uuid.Parse(user); err != nil {
			return fmt.Errorf("--user must be a UUID: %w", err)
		}
		ttl, _ := cmd.Flags().GetDuration("ttl")

		token, err := auth.GenerateJWT(user, "user", ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("user", "", "User id (UUID); a random one when empty")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
}
