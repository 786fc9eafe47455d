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
	"io/ioutil"
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrsd/exodusII-utils/join"
)

// JoinParameters are obtained from the YAML parameter file (-I)
type JoinParameters struct {
	Title     string  `yaml:"Title"`
	Tolerance float64 `yaml:"Tolerance"`
	Verbose   bool    `yaml:"Verbose"`
}

func (jp *JoinParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, jp)
}

func (jp *JoinParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", jp.Title)
	fmt.Printf("%8.2e\t\t= Tolerance\n", jp.Tolerance)
}

// JoinCmd represents the join command
var JoinCmd = &cobra.Command{
	Use:   "join file1 file2 ... output",
	Short: "Join multiple exodusII files into one mesh",
	Long: `Join multiple exodusII files into one mesh.

Nodes that coincide within the snap tolerance are merged, element
blocks sharing an id are concatenated, and nodal variables are carried
over into the merged node numbering. The last argument names the
output file:

exotools join part1.e part2.e joined.e`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 3 {
			cmd.Help()
			return
		}
		opts := processJoinInput(cmd)
		if prof, _ := cmd.Flags().GetBool("cpuprofile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if err := join.Join(args[:len(args)-1], args[len(args)-1], opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
	},
}

// processJoinInput resolves the join options from flags, the viper
// config and the optional parameter file. An explicit flag wins over
// the parameter file, which wins over config file defaults.
func processJoinInput(cmd *cobra.Command) (opts join.Options) {
	var (
		err error
	)
	opts.Tolerance = viper.GetFloat64("tolerance")
	verbose := viper.GetBool("verbose")
	paramFile, _ := cmd.Flags().GetString("parametersFile")
	if len(paramFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(paramFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		jp := &JoinParameters{}
		if err = jp.Parse(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		opts.Title = jp.Title
		if jp.Tolerance != 0 && !cmd.Flags().Changed("tolerance") {
			opts.Tolerance = jp.Tolerance
		}
		if jp.Verbose {
			verbose = true
		}
	}
	if verbose {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
	return
}

func init() {
	rootCmd.AddCommand(JoinCmd)
	JoinCmd.Flags().Float64P("tolerance", "t", join.DefaultTolerance, "absolute snap tolerance for matching nodes between files")
	JoinCmd.Flags().BoolP("verbose", "v", false, "log progress while joining")
	JoinCmd.Flags().StringP("parametersFile", "I", "", "YAML file for join parameters like:\n\t- Title\n\t- Tolerance")
	JoinCmd.Flags().Bool("cpuprofile", false, "write a CPU profile to the current directory")
	viper.BindPFlag("tolerance", JoinCmd.Flags().Lookup("tolerance"))
	viper.BindPFlag("verbose", JoinCmd.Flags().Lookup("verbose"))
}
