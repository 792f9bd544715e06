// Command barber keeps the records of a barbershop.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/barbershop/cmd"
	"github.com/etnz/barbershop/date"
	"github.com/etnz/barbershop/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	if err := cmd.Setup(flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// Only returns when the shell is not asking for a completion.
	complete.Complete("barber", completion(commander))

	flag.Parse()
	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a command of the commander.
func registered(commander *subcommands.Commander, name string) (found bool) {
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the commands and their flags for the shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags(flag.CommandLine),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flags(f)}
	})
	if topics, err := docs.GetAllTopics(); err == nil {
		if topic, ok := root.Sub["topic"]; ok {
			topic.Args = predict.Set(topics)
		}
	}
	return root
}

func flags(f *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) { m[fl.Name] = predictor(fl) })
	return m
}

func predictor(fl *flag.Flag) complete.Predictor {
	switch fl.Name {
	case "month":
		return predict.Set(date.Labels())
	case "ledger-file":
		return predict.Files("*.json")
	}
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}
