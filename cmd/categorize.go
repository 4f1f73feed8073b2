package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashcook/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type categorizeCmd struct {
	model string
}

func (*categorizeCmd) Name() string     { return "categorize" }
func (*categorizeCmd) Synopsis() string { return "suggest categories with a Gemini model" }
func (*categorizeCmd) Usage() string {
	return `cashcook categorize [-model <name>]

  Asks the model for the category of every transaction that has none.
  The API key is read from GEMINI_API_KEY.

`
}

func (c *categorizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Gemini model (default agent.model)")
}

func (c *categorizeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(func(s *session) subcommands.ExitStatus {
		model := c.model
		if model == "" {
			model = s.Config.Agent.Model
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating Gemini client: %v\n", err)
			return subcommands.ExitFailure
		}
		categorizer, err := agent.NewCategorizer(ctx, client, model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}

		n, err := agent.Categorize(ctx, s.Ledger, categorizer, s.Logger)
		fmt.Fprintf(out, "Categorized %d transactions\n", n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}
