package cmd

import (
	"flag"

	"github.com/etnz/cashcook"
)

// draftFlags are the transaction fields shared by add and edit.
type draftFlags struct {
	description string
	amount      string
	typ         string
	category    string
	notes       string
}

func (d *draftFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.description, "d", "", "Description of the transaction")
	f.StringVar(&d.amount, "a", "", "Amount, in the ledger currency")
	f.StringVar(&d.typ, "t", "", "Type: give or take (default give)")
	f.StringVar(&d.category, "c", "", "Category: Food, Rent, Travel or Miscellaneous")
	f.StringVar(&d.notes, "n", "", "Notes")
}

// apply sets the fields of draft whose flag was given on f.
func (d *draftFlags) apply(f *flag.FlagSet, draft *cashcook.Draft) error {
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "d":
			draft.Description = d.description
		case "a":
			draft.Amount = cashcook.Amount(d.amount)
		case "t":
			draft.Type, err = cashcook.ParseType(d.typ)
		case "c":
			draft.Category, err = cashcook.ParseCategory(d.category)
		case "n":
			draft.Notes = d.notes
		}
	})
	return err
}
