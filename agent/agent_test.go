package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/cashcook"
	"github.com/google/go-cmp/cmp"
)

// fakeSuggester answers from a map of description to category.
type fakeSuggester struct {
	answers map[string]cashcook.Category
	fail    string // description that triggers an error
	asked   []string
}

func (f *fakeSuggester) Suggest(_ context.Context, tx cashcook.Transaction) (cashcook.Category, error) {
	f.asked = append(f.asked, tx.Description)
	if tx.Description == f.fail {
		return cashcook.Unset, errors.New("quota exceeded")
	}
	return f.answers[tx.Description], nil
}

func newLedger(t *testing.T, drafts ...cashcook.Draft) *cashcook.Ledger {
	t.Helper()
	l, err := cashcook.Open(cashcook.NewMemoryStore())
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range drafts {
		if _, ok := l.Add(d); !ok {
			t.Fatalf("Add(%+v) rejected", d)
		}
	}
	return l
}

func categories(l *cashcook.Ledger) []cashcook.Category {
	var res []cashcook.Category
	for _, tx := range l.Transactions() {
		res = append(res, tx.Category)
	}
	return res
}

func TestCategorize(t *testing.T) {
	l := newLedger(t,
		cashcook.Draft{Description: "pizza", Amount: "12"},
		cashcook.Draft{Description: "flat", Amount: "800", Category: cashcook.Rent},
		cashcook.Draft{Description: "train", Amount: "40"},
		cashcook.Draft{Description: "mystery", Amount: "1"},
	)
	s := &fakeSuggester{answers: map[string]cashcook.Category{
		"pizza": cashcook.Food,
		"flat":  cashcook.Miscellaneous,
		"train": cashcook.Travel,
	}}

	n, err := Categorize(context.Background(), l, s, nil)
	if err != nil {
		t.Fatalf("Categorize() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Categorize() = %d, want 2", n)
	}
	want := []cashcook.Category{cashcook.Food, cashcook.Rent, cashcook.Travel, cashcook.Unset}
	if diff := cmp.Diff(want, categories(l)); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"pizza", "train", "mystery"}, s.asked); diff != "" {
		t.Errorf("asked (-want +got):\n%s", diff)
	}
}

func TestCategorize_StopsOnError(t *testing.T) {
	l := newLedger(t,
		cashcook.Draft{Description: "pizza", Amount: "12"},
		cashcook.Draft{Description: "boom", Amount: "1"},
		cashcook.Draft{Description: "train", Amount: "40"},
	)
	s := &fakeSuggester{
		answers: map[string]cashcook.Category{"pizza": cashcook.Food, "train": cashcook.Travel},
		fail:    "boom",
	}
	n, err := Categorize(context.Background(), l, s, nil)
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Categorize() error = %v, want the suggester error", err)
	}
	if n != 1 {
		t.Errorf("Categorize() = %d, want 1", n)
	}
	want := []cashcook.Category{cashcook.Food, cashcook.Unset, cashcook.Unset}
	if diff := cmp.Diff(want, categories(l)); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAnswer(t *testing.T) {
	for answer, want := range map[string]cashcook.Category{
		"Food":           cashcook.Food,
		" travel\n":      cashcook.Travel,
		`"Rent"`:         cashcook.Rent,
		"Miscellaneous.": cashcook.Miscellaneous,
		"Groceries":      cashcook.Unset,
		"":               cashcook.Unset,
	} {
		if got := ParseAnswer(answer); got != want {
			t.Errorf("ParseAnswer(%q) = %q, want %q", answer, got, want)
		}
	}
}

func TestPrompt(t *testing.T) {
	got := Prompt(cashcook.Transaction{Description: "bus", Amount: "2", Type: cashcook.Give, Notes: "to work"})
	want := "Type: give\nDescription: bus\nAmount: 2\nNotes: to work\n"
	if got != want {
		t.Errorf("Prompt() = %q, want %q", got, want)
	}
}
