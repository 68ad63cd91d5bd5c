package agent

import (
	"context"
	"fmt"

	"github.com/macrolens/macrolens"
	"github.com/macrolens/macrolens/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
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

			The user is looking at a dataset of monthly market and macro series: equity and
			commodity 6-month returns, Treasury yields, the 10Y-2Y spread, and the NBER
			recession flag. Learn about the experts' skills from the Tools and ask them
			questions; they are at your service and keep the context of your previous questions.

			Ground every figure you quote in the Economist's reports, and use the Analyst
			for recent market context. Answer with a short markdown summary.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert with access to recent market news and context.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		very well aware of financial markets, central bank policy,
		and the latest news about the economy.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find about anything related
			to markets, yields, commodities and the economy. You leverage Google Search to
			ground your assertions, and you know how to relate the latest news to the
			user's request.
				`}}},
		},
	}
}

// NewEconomist returns the expert in charge of reading the loaded dataset.
func NewEconomist(ds *macrolens.Dataset) *Expert {
	functions := []Function{
		&datasetSummary{ds},
		&datasetIntervals{ds},
		&datasetCorrelation{ds},
	}
	return &Expert{
		Name: "Economist",
		Description: `This is the Economist. He is in charge of reading the user's dataset of
		monthly market and macro series. He can compute summaries, recession and inversion
		periods, and rolling correlation statistics.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(functions)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an economist with function access to the user's dataset. Always call the
			functions to get the actual numbers, and quote them exactly in your answers.
				`}}},
		},
		Library: NewLibrary(functions),
	}
}

// datasetSummary exposes the summary report.
type datasetSummary struct{ ds *macrolens.Dataset }

func (f *datasetSummary) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "dataset_summary",
		Description: "Returns a markdown summary of the dataset: latest observations, yield curve state, latest rolling correlation and overlay counts.",
		Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
	}
}

func (f *datasetSummary) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	return respond(id, "dataset_summary", func() (string, error) {
		report, err := f.ds.NewSummary(0)
		if err != nil {
			return "", err
		}
		return renderer.SummaryMarkdown(report), nil
	})
}

// datasetIntervals exposes the recession and inversion periods.
type datasetIntervals struct{ ds *macrolens.Dataset }

func (f *datasetIntervals) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "dataset_intervals",
		Description: "Returns the NBER recession periods and the yield-curve inversion periods of the dataset, as markdown tables.",
		Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
	}
}

func (f *datasetIntervals) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	return respond(id, "dataset_intervals", func() (string, error) {
		report, err := f.ds.NewIntervals()
		if err != nil {
			return "", err
		}
		return renderer.IntervalsMarkdown(report), nil
	})
}

// datasetCorrelation exposes the rolling correlation report.
type datasetCorrelation struct{ ds *macrolens.Dataset }

func (f *datasetCorrelation) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "dataset_correlation",
		Description: "Returns rolling correlation statistics between an asset's 6-month returns and the 10Y-2Y yield spread.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"asset": {
					Type:        genai.TypeString,
					Description: "The percent-change column to correlate, e.g. \"NASDAQ 6M %\". Defaults to the NASDAQ one.",
				},
			},
		},
	}
}

func (f *datasetCorrelation) Call(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return respond(id, "dataset_correlation", func() (string, error) {
		asset, _ := args["asset"].(string)
		report, err := f.ds.NewCorrelation(asset, 0)
		if err != nil {
			return "", err
		}
		return renderer.CorrelationMarkdown(report), nil
	})
}

// respond wraps a report computation into a function response.
func respond(id, name string, compute func() (string, error)) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	out, err := compute()
	if err != nil {
		fresp.Response["error"] = fmt.Sprintf("could not compute %s: %v", name, err)
		return fresp
	}
	fresp.Response["output"] = out
	return fresp
}
