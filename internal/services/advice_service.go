package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"

	"billwise/internal/config"
	apperrors "billwise/internal/errors"
	"billwise/internal/logger"
	"billwise/internal/models"
)

// adviceSchema is the contract the model's output must satisfy before any of
// it is returned to the caller.
const adviceSchema = `{
  "type": "object",
  "required": ["summary", "recommendations"],
  "additionalProperties": false,
  "properties": {
    "summary": {"type": "string", "minLength": 1},
    "recommendations": {
      "type": "array",
      "minItems": 1,
      "maxItems": 5,
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

// adviceService generates saving advice from the user's current-month
// income and spending figures.
type adviceService struct {
	cfg     *config.Config
	reports ReportServicer
	schema  *gojsonschema.Schema
}

// NewAdviceService creates a new AdviceServicer.
func NewAdviceService(cfg *config.Config, reports ReportServicer) AdviceServicer {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(adviceSchema))
	if err != nil {
		// The schema is a compile-time constant; failing to parse it is a bug.
		panic(fmt.Sprintf("invalid advice schema: %v", err))
	}
	return &adviceService{cfg: cfg, reports: reports, schema: schema}
}

// rupees renders a paise amount as a plain rupee string, e.g. "1234.50".
func rupees(paise int64) string {
	return decimal.NewFromInt(paise).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// GetAdvice prompts the model with the user's current-month figures and
// returns its advice once the response validates against adviceSchema.
// It never returns a partially-parsed response.
func (s *adviceService) GetAdvice(ctx context.Context, userID string, now time.Time) (*Advice, error) {
	if s.cfg.GeminiAPIKey == "" {
		return nil, apperrors.WithMessage(apperrors.ErrAdviceUnavailable, "advice generation is not configured")
	}

	dash, err := s.reports.GetDashboard(userID, now)
	if err != nil {
		return nil, err
	}

	prompt := s.buildPrompt(dash)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAdviceUnavailable, err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, s.cfg.GeminiModel, contents, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAdviceUnavailable, err)
	}

	raw := cleanModelJSON(resp.Text())
	if raw == "" {
		return nil, apperrors.WithMessage(apperrors.ErrAdviceUnavailable, "empty response from model")
	}

	result, err := s.schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAdviceUnavailable, err)
	}
	if !result.Valid() {
		logger.Get().Warnw("advice response failed schema validation", "errors", result.Errors())
		return nil, apperrors.WithMessage(apperrors.ErrAdviceUnavailable, "model returned a malformed response")
	}

	var advice Advice
	if err := json.Unmarshal([]byte(raw), &advice); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAdviceUnavailable, err)
	}
	return &advice, nil
}

func (s *adviceService) buildPrompt(dash *Dashboard) string {
	categories := make([]models.Category, 0, len(dash.SpendingByCategory))
	for c := range dash.SpendingByCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	var spending strings.Builder
	for _, c := range categories {
		fmt.Fprintf(&spending, "  - %s: ₹%s\n", c, rupees(dash.SpendingByCategory[c]))
	}

	return "You are a personal finance advisor for a user in India. Analyze the " +
		"user's income and spending habits to provide personalized recommendations " +
		"for saving money. All monetary values are in Indian Rupees (INR).\n\n" +
		"Your response must be crisp, straightforward, and encouraging.\n\n" +
		"Income this month: ₹" + rupees(dash.MonthlyIncome) + "\n" +
		"Spending by category:\n" + spending.String() + "\n" +
		"Respond with STRICT JSON only (no comments, no extra text, no Markdown " +
		"fences) matching:\n" +
		"{\"summary\": \"<one-sentence summary of the user's financial health>\", " +
		"\"recommendations\": [\"<3-5 specific, actionable steps as strings>\"]}\n"
}

// cleanModelJSON strips Markdown code fences and surrounding noise that the
// model sometimes adds despite instructions.
func cleanModelJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```json")
		clean = strings.TrimPrefix(clean, "```")
		if i := strings.LastIndex(clean, "```"); i >= 0 {
			clean = clean[:i]
		}
	}
	return strings.TrimSpace(clean)
}
