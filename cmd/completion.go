package cmd

import (
	"flag"

	"github.com/etnz/cashcook"
	"github.com/etnz/cashcook/docs"
	"github.com/etnz/cashcook/renderer"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete runs the shell completion of name if the shell asked for it, and
// exits. It returns otherwise.
//
// Install with: COMP_INSTALL=1 cashcook
func Complete(name string) {
	Completion(flag.CommandLine).Complete(name)
}

// Completion describes the command line: global flags from top, and every
// subcommand with its flags.
func Completion(top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(top),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{
			Flags: flagPredictors(fs),
			Args:  argsPredictor(c.Name()),
		}
	}
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		flags[f.Name] = flagPredictor(f)
	})
	return flags
}

func flagPredictor(f *flag.Flag) complete.Predictor {
	switch f.Name {
	case "o", "i", "config":
		return predict.Files("*")
	case "store-path":
		return predict.Dirs("*")
	case "store":
		return predict.Set{cashcook.DriverFile, cashcook.DriverSQLite, cashcook.DriverPostgres, cashcook.DriverMemory}
	case "format":
		var formats predict.Set
		for _, format := range renderer.Formats() {
			formats = append(formats, string(format))
		}
		return formats
	case "t":
		var types predict.Set
		for _, t := range cashcook.Types() {
			types = append(types, string(t))
		}
		return types
	case "c":
		var categories predict.Set
		for _, c := range cashcook.Categories() {
			categories = append(categories, string(c))
		}
		return categories
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}

func argsPredictor(name string) complete.Predictor {
	switch name {
	case "sort":
		var keys predict.Set
		for _, k := range cashcook.SortKeys() {
			keys = append(keys, string(k))
		}
		return keys
	case "topic":
		topics, _ := docs.GetAllTopics()
		return predict.Set(topics)
	default:
		return predict.Nothing
	}
}
