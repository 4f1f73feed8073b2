package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/cashcook"
	"google.golang.org/genai"
)

const categorizerInstruction = `You classify personal expense tracker entries.
Each message describes one transaction. Answer with exactly one of the allowed
categories, the one that best matches the description and notes.`

// Categorizer is a Suggester backed by a Gemini chat constrained to answer
// with one of the known categories.
type Categorizer struct {
	expert *Expert
}

// NewCategorizer starts a chat with model.
func NewCategorizer(ctx context.Context, client *genai.Client, model string) (*Categorizer, error) {
	var enum []string
	for _, c := range cashcook.Categories() {
		enum = append(enum, string(c))
	}
	e := &Expert{
		Name:      "categorizer",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(categorizerInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0),
			ResponseMIMEType:  "text/x.enum",
			ResponseSchema: &genai.Schema{
				Type: genai.TypeString,
				Enum: enum,
			},
		},
	}
	if err := e.Start(ctx, client); err != nil {
		return nil, err
	}
	return &Categorizer{expert: e}, nil
}

// Suggest asks the model for the category of tx. Answers outside of the known
// categories are ignored and yield Unset.
func (c *Categorizer) Suggest(ctx context.Context, tx cashcook.Transaction) (cashcook.Category, error) {
	answer, err := c.expert.Ask(ctx, &genai.Part{Text: Prompt(tx)})
	if err != nil {
		return cashcook.Unset, err
	}
	return ParseAnswer(answer), nil
}

// Prompt describes tx for the model.
func Prompt(tx cashcook.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Type: %s\n", tx.Type)
	fmt.Fprintf(&b, "Description: %s\n", tx.Description)
	fmt.Fprintf(&b, "Amount: %s\n", tx.Amount)
	if tx.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", tx.Notes)
	}
	return b.String()
}

// ParseAnswer reads a category out of a model answer, or Unset.
func ParseAnswer(answer string) cashcook.Category {
	answer = strings.Trim(strings.TrimSpace(answer), `"'.`)
	c, err := cashcook.ParseCategory(answer)
	if errors.Is(err, cashcook.ErrUnknownCategory) {
		return cashcook.Unset
	}
	return c
}
