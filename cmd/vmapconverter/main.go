package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/config"
	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/processor"
)

func main() {
	conf := config.Default()

	rootCmd := &cobra.Command{
		Use:   "vmapconverter",
		Short: "convert Quake .map geometry into Source .vmf documents",
	}

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "convert every .map file under the input folder",
		Long: "converts every .map file found recursively under the input folder " +
			"into a .vmf document placed in the addon maps folder, and compiles " +
			"each document with resourcecompiler when a compiler path is given",
		Args: cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			runConvert(&conf)
		},
	}

	convertCmd.Flags().StringVar(&conf.InputDir, "input", "",
		"folder scanned recursively for .map files")
	convertCmd.Flags().StringVar(&conf.OutputDir, "output", "",
		"addon content base folder")
	convertCmd.Flags().StringVar(&conf.CompilerPath, "compiler", "",
		"path to resourcecompiler; empty skips compilation")
	convertCmd.Flags().StringVar(&conf.AddonName, "addon", conf.AddonName,
		"addon folder name created under the output folder")
	convertCmd.Flags().StringVar(&conf.LoggingLevel, "logging-level", conf.LoggingLevel,
		"logging level, one of: "+config.AvailableLoggingLevelsString)

	rootCmd.AddCommand(convertCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(conf *config.Config) {
	if err := conf.Validate(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	initLogger(*conf)
	log.Debugf("Config: %#v", *conf)

	summary, err := processor.New(conf).ConvertFolder()
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	log.Infof("converted %d of %d maps, compiled %d, failed %d",
		summary.Converted, summary.Found, summary.Compiled, summary.Failed)
	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func initLogger(conf config.Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(conf.LoggingLevel)
	if err != nil {
		panic(err)
	}
	log.SetLevel(level)
}
