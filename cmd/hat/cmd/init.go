/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ssargent/hatdecoder/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the packed/unpacked folders",
	Long: `Write a default configuration, with a generated API key for the decode
server, and create the folders hats are read from and written to.

Examples:
  hat init
  hat init --packed-dir=/games/hats --force`,
	// No config to load yet
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}
		packedDir, _ := cmd.Flags().GetString("packed-dir")
		force, _ := cmd.Flags().GetBool("force")

		cfg, err := initializeWorkspace(configPath, packedDir, force)
		if err != nil {
			return err
		}

		cmd.Printf("Config written to %s\n", configPath)
		cmd.Printf("Put .hat files in %s\n", cfg.PackedDir)
		cmd.Printf("Server API key: %s\n", cfg.Server.APIKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("packed-dir", "./packed", "Folder holding .hat files")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

// initializeWorkspace bootstraps the config file and creates the packed
// folder and its sibling unpacked folder.
func initializeWorkspace(configPath, packedDir string, force bool) (*config.Config, error) {
	if config.ConfigExists(configPath) && !force {
		return nil, fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath)
	}

	cfg, err := config.BootstrapConfig(configPath, packedDir)
	if err != nil {
		return nil, err
	}

	unpacked := filepath.Join(filepath.Dir(filepath.Clean(cfg.PackedDir)), "unpacked")
	for _, dir := range []string{cfg.PackedDir, unpacked} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return cfg, nil
}
