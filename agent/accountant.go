package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/docs"
	"github.com/etnz/fintrack/renderer"
	"github.com/goccy/go-json"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert leading the conversation with the user.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user keeps track of their daily income and expenses. They come to you to understand
			where their money goes, to record new transactions, or to get advice on their budget.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			Never record a transaction the user did not explicitly ask for.
			Answer in markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns an expert in personal finance, grounded with Google Search.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is an expert in personal finance and budgeting.
		Ask the Advisor for advice on saving, budgeting, or for recent information on prices,
		taxes and financial products.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance. You give practical budgeting advice based on
			figures you are given. Leverage Google Search to ground your assertions.
			`}}},
		},
	}
}

// NewAccountant returns the expert in charge of the ledger in store. Amounts are
// reported in currency.
func NewAccountant(store *fintrack.Store, currency string) *Expert {
	lib := accountantFunctions(store, currency, time.Now)
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. They are in charge of reading and editing the user's ledger
		of income and expenses. They can compute totals, list transactions by category or type, compute
		spending statistics and record new transactions.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's ledger of income and expenses.
				You know how to use the Tools to extract relevant information about the user's spending.
				You are part of a team of experts, yours is everything about the user's ledger. They might ask
				you questions in approximate language, figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func accountantFunctions(store *fintrack.Store, currency string, now func() time.Time) []Function {
	return []Function{
		summaryFunc(store, currency),
		transactionsFunc(store, currency, now),
		statisticsFunc(store, currency, now),
		queryFunc(store),
		addTransactionFunc(store, currency),
	}
}

func summaryFunc(store *fintrack.Store, currency string) *Func {
	const name = "Summary"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Summary computes the total income, total expenses and balance of the whole ledger.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the totals, and whether the user is in surplus or deficit.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s := renderer.NewSummary("Summary", store.Summarize(), currency)
			return respond(id, name, renderer.RenderSummary(s), nil)
		},
	}
}

func transactionsFunc(store *fintrack.Store, currency string, now func() time.Time) *Func {
	const name = "Transactions"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Transactions lists the recorded transactions, newest first, optionally filtered.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {
						Type:        genai.TypeString,
						Description: "Only list transactions of this category. " + must(docs.GetTopic("categories")),
					},
					"type": {
						Type:        genai.TypeString,
						Description: `Only list transactions of this type, "income" or "expense".`,
						Enum:        []string{string(fintrack.Income), string(fintrack.Expense)},
					},
					"since": {
						Type:        genai.TypeString,
						Description: "Only list transactions recorded on or after this day. " + must(docs.GetTopic("dates")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the transactions with their id, description, category, date and amount.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			c, filters, err := parseCriteria(args, now())
			if err != nil {
				return respond(id, name, nil, err)
			}
			var txs []fintrack.Transaction
			for _, tx := range store.Transactions(filters...) {
				txs = append(txs, tx)
			}
			l := renderer.NewTransactionList("Transactions", c, txs, currency, now().Location())
			return respond(id, name, renderer.RenderTransactions(l), nil)
		},
	}
}

// parseCriteria reads the optional category, type and since arguments.
func parseCriteria(args map[string]any, now time.Time) (fintrack.Criteria, []fintrack.Filter, error) {
	var c fintrack.Criteria

	category, err := stringArg(args, "category")
	if err != nil {
		return c, nil, err
	}
	c.Category = fintrack.ParseCategory(category)

	kind, err := stringArg(args, "type")
	if err != nil {
		return c, nil, err
	}
	if kind != "" {
		if c.Kind, err = fintrack.ParseKind(kind); err != nil {
			return c, nil, err
		}
	}

	filters := c.Filters()
	since, err := stringArg(args, "since")
	if err != nil {
		return c, nil, err
	}
	if since != "" {
		day, err := date.ParseOn(since, date.Of(now))
		if err != nil {
			return c, nil, fmt.Errorf("argument 'since' must be a valid date, got %q: %w", since, err)
		}
		filters = append(filters, fintrack.Between(date.Range{From: day, To: date.Of(now)}, now.Location()))
	}
	return c, filters, nil
}

func statisticsFunc(store *fintrack.Store, currency string, now func() time.Time) *Func {
	const name = "Statistics"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Statistics computes the expenses per month, the expenses per category with
			their share of all expenses, and the daily income and expenses over the last days.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"days": {
						Type:        genai.TypeInteger,
						Description: "Number of days of the daily trend, including today. Defaults to 7.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "Markdown tables of the statistics.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			days, err := intArg(args, "days", 7)
			if err != nil {
				return respond(id, name, nil, err)
			}
			if days < 1 || days > 366 {
				return respond(id, name, nil, fmt.Errorf("argument 'days' must be between 1 and 366, got %d", days))
			}
			s := renderer.NewStats("Statistics", store.All(), currency, days, now())
			return respond(id, name, renderer.RenderStats(s), nil)
		},
	}
}

func queryFunc(store *fintrack.Store) *Func {
	const name = "Query"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Query evaluates a JSONPath expression on the ledger. " + must(docs.GetTopic("queries")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"path": {
						Type:        genai.TypeString,
						Description: `The JSONPath expression, e.g. $[?(@.category == "Food")].amount`,
					},
				},
				Required: []string{"path"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The JSON encoded result.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			path, err := stringArg(args, "path")
			if err != nil {
				return respond(id, name, nil, err)
			}
			result, err := fintrack.Query(ctx, store.All(), path)
			if err != nil {
				return respond(id, name, nil, err)
			}
			data, err := json.Marshal(result)
			if err != nil {
				return respond(id, name, nil, err)
			}
			return respond(id, name, string(data), nil)
		},
	}
}

func addTransactionFunc(store *fintrack.Store, currency string) *Func {
	const name = "AddTransaction"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "AddTransaction records a new income or expense, timestamped now.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"description": {Type: genai.TypeString, Description: "What the transaction is about."},
					"amount":      {Type: genai.TypeString, Description: "The positive amount as a decimal number, e.g. 4.50."},
					"category":    {Type: genai.TypeString, Description: must(docs.GetTopic("categories"))},
					"type": {
						Type:        genai.TypeString,
						Description: `"income" or "expense".`,
						Enum:        []string{string(fintrack.Income), string(fintrack.Expense)},
					},
				},
				Required: []string{"description", "amount", "category", "type"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The recorded transaction.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var in fintrack.Input
			var errs []error
			for field, dst := range map[string]*string{
				"description": &in.Description,
				"amount":      &in.Amount,
				"category":    &in.Category,
				"type":        &in.Kind,
			} {
				v, err := stringArg(args, field)
				errs = append(errs, err)
				*dst = v
			}
			if err := errors.Join(errs...); err != nil {
				return respond(id, name, nil, err)
			}

			tx, err := store.Add(in)
			var serr *fintrack.StorageError
			switch {
			case errors.As(err, &serr):
				return respond(id, name, fmt.Sprintf("Recorded %s, but it could not be saved: %v", renderer.Transaction(tx, currency), serr), nil)
			case err != nil:
				return respond(id, name, nil, err)
			}
			return respond(id, name, "Recorded "+renderer.Transaction(tx, currency), nil)
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
