package waste

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingFields   = errors.New("food type and quantity are required")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrInvalidEnum     = errors.New("unknown source, disposal method or meal period")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// LogInput is the entry form; Date defaults to today when empty.
type LogInput struct {
	Date           string         `json:"date"`
	Source         Source         `json:"source"`
	FoodType       string         `json:"food_type"`
	Quantity       float64        `json:"quantity"`
	DisposalMethod DisposalMethod `json:"disposal_method"`
	MealPeriod     MealPeriod     `json:"meal_period"`
	Notes          string         `json:"notes"`
}

// Log validates and appends one entry.
func (s *Service) Log(ctx context.Context, in LogInput) (*Entry, error) {
	if in.FoodType == "" || in.Quantity == 0 {
		return nil, ErrMissingFields
	}
	if in.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if !validSource(in.Source) || !validDisposal(in.DisposalMethod) || !validMealPeriod(in.MealPeriod) {
		return nil, ErrInvalidEnum
	}

	date := in.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	entry := Entry{
		ID:             uuid.New().String(),
		Date:           date,
		Source:         in.Source,
		FoodType:       in.FoodType,
		Quantity:       in.Quantity,
		DisposalMethod: in.DisposalMethod,
		MealPeriod:     in.MealPeriod,
		Notes:          in.Notes,
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the log newest first.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.ListAll(ctx)
}

// Analytics is the full dashboard payload: aggregation, top types,
// the weekly series and the historical trend.
type Analytics struct {
	Aggregation
	TopTypes []TypeTotal `json:"top_types"`
	Weekly   []DayTotal  `json:"weekly"`
	Trend    Trend       `json:"trend"`
}

const topTypesShown = 5

func (s *Service) Analytics(ctx context.Context) (*Analytics, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	agg := Aggregate(entries)
	now := s.now()

	return &Analytics{
		Aggregation: agg,
		TopTypes:    agg.TopTypes(topTypesShown),
		Weekly:      DailySeries(entries, now, 7),
		Trend:       WeeklyTrend(entries, now),
	}, nil
}

// Suggest builds reduction suggestions from the current log.
func (s *Service) Suggest(ctx context.Context) (*Suggestions, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildSuggestions(Aggregate(entries)), nil
}
