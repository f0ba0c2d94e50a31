package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors for the flags shared by several subcommands, by flag name.
var flagPredictors = map[string]complete.Predictor{
	"c":    predict.Set(categoryNames()),
	"t":    predict.Set{string(fintrack.Income), string(fintrack.Expense)},
	"p":    predict.Set{"day", "week", "month", "quarter", "year"},
	"o":    predict.Files("*.json"),
	"days": predict.Set{"7", "30", "90", "365"},
}

// argPredictors completes the positional arguments of subcommands, by name.
var argPredictors = map[string]complete.Predictor{
	"theme": predict.Set{string(fintrack.Light), string(fintrack.Dark), "toggle"},
	"topic": complete.PredictFunc(func(string) []string {
		topics, _ := docs.GetAllTopics()
		return topics
	}),
}

func categoryNames() []string {
	var names []string
	for _, c := range fintrack.Categories() {
		names = append(names, c.String())
	}
	return names
}

// Completion returns the shell completion of the CLI, for the global flags in
// global and all the subcommands.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagsOf(global),
	}
	for _, g := range groups {
		for _, c := range g.commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: flagsOf(fs), Args: predict.Nothing}
			if p, ok := argPredictors[c.Name()]; ok {
				sub.Args = p
			}
			root.Sub[c.Name()] = sub
		}
	}
	return root
}

// flagsOf returns a predictor for each flag in fs. Boolean flags take no value.
func flagsOf(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case isBool(f):
			flags[f.Name] = predict.Nothing
		case flagPredictors[f.Name] != nil:
			flags[f.Name] = flagPredictors[f.Name]
		case strings.HasSuffix(f.Name, "dir"):
			flags[f.Name] = predict.Dirs("*")
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
