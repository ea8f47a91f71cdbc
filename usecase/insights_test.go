package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"math"
	"reflect"
	"testing"
	"time"
)

type todoCounterStub struct {
	completed func(from, to time.Time) (int, error)
	created   func(from, to time.Time) (int, error)
}

func (s todoCounterStub) CountCompletedInRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	return s.completed(from, to)
}

func (s todoCounterStub) CountCreatedInRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	return s.created(from, to)
}

type workoutCounterStub struct {
	count func(from, to time.Time) (int, error)
}

func (s workoutCounterStub) CountInRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	return s.count(from, to)
}

type mealAggregatorStub struct {
	count func(from, to time.Time) (int, error)
	sums  func(from, to time.Time) (model.DietTotals, error)
}

func (s mealAggregatorStub) CountInRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	return s.count(from, to)
}

func (s mealAggregatorStub) SumNutritionInRange(ctx context.Context, userID string, from, to time.Time) (model.DietTotals, error) {
	return s.sums(from, to)
}

type expenseSummerStub struct {
	flows func(from, to time.Time) ([]repository.CategoryFlow, error)
}

func (s expenseSummerStub) SumByCategoryInRange(ctx context.Context, userID string, from, to time.Time) ([]repository.CategoryFlow, error) {
	return s.flows(from, to)
}

func zeroCount(from, to time.Time) (int, error) { return 0, nil }

func TestMonthRange(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.Local)

	tests := []struct {
		name      string
		monthKey  string
		wantStart time.Time
		wantEnd   time.Time
		wantKey   string
		wantErr   bool
	}{
		{
			name:      "explicit month",
			monthKey:  "2026-03",
			wantStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local),
			wantKey:   "2026-03",
		},
		{
			name:      "empty key defaults to current month",
			monthKey:  "",
			wantStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
			wantKey:   "2026-08",
		},
		{
			name:      "leap year february",
			monthKey:  "2024-02",
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local),
			wantKey:   "2024-02",
		},
		{
			name:      "december rolls into next year",
			monthKey:  "2025-12",
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
			wantKey:   "2025-12",
		},
		{
			name:     "month out of range",
			monthKey: "2026-13",
			wantErr:  true,
		},
		{
			name:     "garbage input",
			monthKey: "not-a-month",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, key, err := MonthRange(tt.monthKey, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q, got none", tt.monthKey)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("End = %v, want %v", end, tt.wantEnd)
			}
			if key != tt.wantKey {
				t.Errorf("Key = %q, want %q", key, tt.wantKey)
			}
		})
	}
}

func TestComputeStreak(t *testing.T) {
	day := func(active bool) model.DayActivity {
		return model.DayActivity{Active: active}
	}

	tests := []struct {
		name string
		days []model.DayActivity
		want int
	}{
		{
			name: "empty window",
			days: nil,
			want: 0,
		},
		{
			name: "today inactive breaks streak immediately",
			days: []model.DayActivity{day(true), day(true), day(true), day(false)},
			want: 0,
		},
		{
			name: "all active",
			days: []model.DayActivity{day(true), day(true), day(true), day(true), day(true), day(true), day(true)},
			want: 7,
		},
		{
			name: "streak stops at first gap scanning backwards",
			days: []model.DayActivity{day(true), day(false), day(true), day(true), day(true)},
			want: 3,
		},
		{
			name: "only today active",
			days: []model.DayActivity{day(false), day(false), day(true)},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStreak(tt.days); got != tt.want {
				t.Errorf("ComputeStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLast7Window(t *testing.T) {
	now := time.Date(2026, 8, 15, 18, 45, 0, 0, time.Local)

	window := last7Window(now)
	if len(window) != 7 {
		t.Fatalf("Expected 7 day buckets, got %d", len(window))
	}

	// Oldest-first ordering, last entry is today
	wantFirst := time.Date(2026, 8, 9, 0, 0, 0, 0, time.Local)
	if !window[0].start.Equal(wantFirst) {
		t.Errorf("First bucket start = %v, want %v", window[0].start, wantFirst)
	}
	wantLast := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)
	if !window[6].start.Equal(wantLast) {
		t.Errorf("Last bucket start = %v, want %v", window[6].start, wantLast)
	}

	for i, bucket := range window {
		if !bucket.end.Equal(bucket.start.AddDate(0, 0, 1)) {
			t.Errorf("Bucket %d end = %v, want start+1d", i, bucket.end)
		}
		if bucket.date != bucket.start.Format("2006-01-02") {
			t.Errorf("Bucket %d date = %q, want %q", i, bucket.date, bucket.start.Format("2006-01-02"))
		}
	}
}

func TestRankExpenses(t *testing.T) {
	flow := func(name string, txType model.TransactionType, total float64) repository.CategoryFlow {
		return repository.CategoryFlow{CategoryName: name, Type: txType, Total: total}
	}

	t.Run("no flows", func(t *testing.T) {
		spent, top := RankExpenses(nil)
		if spent != 0 {
			t.Errorf("Spent = %v, want 0", spent)
		}
		if len(top) != 0 {
			t.Errorf("Expected empty ranking, got %v", top)
		}
	})

	t.Run("income excluded from spending", func(t *testing.T) {
		spent, top := RankExpenses([]repository.CategoryFlow{
			flow("Food", model.TransactionExpense, 50),
			flow("Salary", model.TransactionIncome, 3000),
		})
		if spent != 50 {
			t.Errorf("Spent = %v, want 50", spent)
		}
		if len(top) != 1 || top[0].Name != "Food" {
			t.Fatalf("Ranking = %v, want only Food", top)
		}
		if top[0].Amount != 50 || top[0].Pct != 100 {
			t.Errorf("Food = %+v, want amount 50 pct 100", top[0])
		}
	})

	t.Run("empty name bucketed as Uncategorized", func(t *testing.T) {
		_, top := RankExpenses([]repository.CategoryFlow{
			flow("", model.TransactionExpense, 25),
		})
		if len(top) != 1 || top[0].Name != UncategorizedLabel {
			t.Fatalf("Ranking = %v, want single %q entry", top, UncategorizedLabel)
		}
	})

	t.Run("tie on amount breaks by name ascending", func(t *testing.T) {
		_, top := RankExpenses([]repository.CategoryFlow{
			flow("Transport", model.TransactionExpense, 40),
			flow("Food", model.TransactionExpense, 40),
		})
		if top[0].Name != "Food" || top[1].Name != "Transport" {
			t.Errorf("Tie order = [%s, %s], want [Food, Transport]", top[0].Name, top[1].Name)
		}
	})

	t.Run("truncates to top five but spent covers all", func(t *testing.T) {
		flows := []repository.CategoryFlow{
			flow("A", model.TransactionExpense, 70),
			flow("B", model.TransactionExpense, 60),
			flow("C", model.TransactionExpense, 50),
			flow("D", model.TransactionExpense, 40),
			flow("E", model.TransactionExpense, 30),
			flow("F", model.TransactionExpense, 20),
			flow("G", model.TransactionExpense, 10),
		}

		spent, top := RankExpenses(flows)
		if spent != 280 {
			t.Errorf("Spent = %v, want 280 (sum of all groups)", spent)
		}
		if len(top) != 5 {
			t.Fatalf("Expected top 5, got %d", len(top))
		}

		var topSum, pctSum float64
		for i, ce := range top {
			topSum += ce.Amount
			pctSum += ce.Pct
			wantPct := ce.Amount / spent * 100
			if math.Abs(ce.Pct-wantPct) > 1e-9 {
				t.Errorf("Entry %d pct = %v, want %v", i, ce.Pct, wantPct)
			}
		}
		if topSum > spent {
			t.Errorf("Top-5 sum %v exceeds total spent %v", topSum, spent)
		}
		if pctSum > 100+1e-9 {
			t.Errorf("Percentages sum to %v, should not exceed 100", pctSum)
		}
	})

	t.Run("zero spend yields zero percentages", func(t *testing.T) {
		spent, top := RankExpenses([]repository.CategoryFlow{
			flow("Salary", model.TransactionIncome, 1000),
		})
		if spent != 0 {
			t.Errorf("Spent = %v, want 0", spent)
		}
		if len(top) != 0 {
			t.Errorf("Expected no expense entries, got %v", top)
		}
	})
}

func TestMonthlyInsights(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)
	isDayBucket := func(from, to time.Time) bool {
		return to.Sub(from) == 24*time.Hour
	}

	// Todos completed on Aug 13-15 only; 9 completed and 4 created over the month
	svc := NewInsightsService(
		todoCounterStub{
			completed: func(from, to time.Time) (int, error) {
				if isDayBucket(from, to) {
					if from.Day() >= 13 {
						return 1, nil
					}
					return 0, nil
				}
				return 9, nil
			},
			created: func(from, to time.Time) (int, error) { return 4, nil },
		},
		workoutCounterStub{
			count: func(from, to time.Time) (int, error) {
				if isDayBucket(from, to) {
					return 0, nil
				}
				return 6, nil
			},
		},
		mealAggregatorStub{
			count: zeroCount,
			sums: func(from, to time.Time) (model.DietTotals, error) {
				return model.DietTotals{Calories: 42000, Protein: 1800, Carbs: 5000, Fat: 1400}, nil
			},
		},
		expenseSummerStub{
			flows: func(from, to time.Time) ([]repository.CategoryFlow, error) {
				return []repository.CategoryFlow{
					{CategoryName: "Food", Type: model.TransactionExpense, Total: 300},
					{CategoryName: "Rent", Type: model.TransactionExpense, Total: 900},
					{CategoryName: "Salary", Type: model.TransactionIncome, Total: 4000},
				}, nil
			},
		},
	)

	report, err := svc.MonthlyInsights(context.Background(), "user-123", "2026-08", now)
	if err != nil {
		t.Fatalf("Failed to build report: %v", err)
	}

	if report.Month != "2026-08" {
		t.Errorf("Month = %q, want 2026-08", report.Month)
	}

	if len(report.Last7) != 7 {
		t.Fatalf("Expected 7 activity days, got %d", len(report.Last7))
	}
	for i, day := range report.Last7 {
		wantDate := now.AddDate(0, 0, i-6).Format("2006-01-02")
		if day.Date != wantDate {
			t.Errorf("Last7[%d].Date = %q, want %q (oldest first)", i, day.Date, wantDate)
		}
		wantActive := i >= 4 // Aug 13-15 occupy the last three slots
		if day.Active != wantActive {
			t.Errorf("Last7[%d].Active = %v, want %v", i, day.Active, wantActive)
		}
	}

	if report.Streak != 3 {
		t.Errorf("Streak = %d, want 3", report.Streak)
	}
	if report.Todos.Completed != 9 || report.Todos.Created != 4 {
		t.Errorf("Todos = %+v, want completed 9 created 4", report.Todos)
	}
	if report.Workouts.Count != 6 {
		t.Errorf("Workouts.Count = %d, want 6", report.Workouts.Count)
	}
	if report.Diet.Calories != 42000 {
		t.Errorf("Diet.Calories = %v, want 42000", report.Diet.Calories)
	}
	if report.Finance.Spent != 1200 {
		t.Errorf("Finance.Spent = %v, want 1200", report.Finance.Spent)
	}
	if len(report.Finance.TopCategories) != 2 || report.Finance.TopCategories[0].Name != "Rent" {
		t.Errorf("TopCategories = %v, want Rent ranked first", report.Finance.TopCategories)
	}

	// Same inputs, same report
	again, err := svc.MonthlyInsights(context.Background(), "user-123", "2026-08", now)
	if err != nil {
		t.Fatalf("Failed to rebuild report: %v", err)
	}
	if !reflect.DeepEqual(report, again) {
		t.Error("Expected identical reports for identical inputs")
	}
}

func TestMonthlyInsightsBranchFailure(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)
	storeErr := errors.New("aggregation failed")

	svc := NewInsightsService(
		todoCounterStub{completed: zeroCount, created: zeroCount},
		workoutCounterStub{count: zeroCount},
		mealAggregatorStub{
			count: zeroCount,
			sums: func(from, to time.Time) (model.DietTotals, error) {
				return model.DietTotals{}, nil
			},
		},
		expenseSummerStub{
			flows: func(from, to time.Time) ([]repository.CategoryFlow, error) {
				return nil, storeErr
			},
		},
	)

	report, err := svc.MonthlyInsights(context.Background(), "user-123", "", now)
	if !errors.Is(err, storeErr) {
		t.Fatalf("Expected the failing branch's error, got %v", err)
	}
	if report != nil {
		t.Errorf("Expected no partial report on branch failure, got %+v", report)
	}
}
