/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/


package commands

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	CLIName = "orca"
)

var (
	rootCmd = &cobra.Command{
		Use:   CLIName,
		Short: "Orca processor tooling",
		Long: "Orca processor tooling: emit windows to orca core, check the health of a processor " +
			"and print the version of this binary.",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}
)

func init() {
	rootCmd.AddCommand(NewEmitWindowCommand())
	rootCmd.AddCommand(NewHealthCommand())
	rootCmd.AddCommand(NewVersionCommand())
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
