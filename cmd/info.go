/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
package cmd

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/andrsd/exodusII-utils/info"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info file...",
	Short: "Summarize the contents of exodusII files",
	Long: `Summarize the contents of exodusII files.

Prints the title, global counts, element blocks and side sets of each
file. With --yaml the summary is emitted as a YAML document instead,
with --bounds the coordinate bounding box is included:

exotools info --bounds mesh.e`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		asYaml, _ := cmd.Flags().GetBool("yaml")
		withBounds, _ := cmd.Flags().GetBool("bounds")
		for i, path := range args {
			if err := printFileInfo(path, asYaml, withBounds, i > 0); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}
		}
	},
}

func printFileInfo(path string, asYaml, withBounds, separator bool) error {
	if asYaml {
		s, err := info.Read(path, withBounds)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		if separator {
			fmt.Print("---\n")
		}
		fmt.Print(string(data))
		return nil
	}
	fmt.Printf("Reading file: %s...", path)
	s, err := info.Read(path, withBounds)
	if err != nil {
		fmt.Print("\n")
		return err
	}
	fmt.Print(" done\n")
	s.Print(os.Stdout)
	return nil
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	InfoCmd.Flags().Bool("yaml", false, "emit the summary as YAML")
	InfoCmd.Flags().Bool("bounds", false, "include the coordinate bounding box")
}
