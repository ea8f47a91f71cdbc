package usecase

import (
	"context"
	"fmt"
	"main/model"
	"main/repository"
	"main/utils"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// last7Days is the size of the recent-activity window on the dashboard.
const last7Days = 7

// topCategoryLimit caps how many expense categories the report ranks.
const topCategoryLimit = 5

// UncategorizedLabel replaces empty category names before grouping.
const UncategorizedLabel = "Uncategorized"

// TodoCounter covers the todo reads the report needs.
type TodoCounter interface {
	CountCompletedInRange(ctx context.Context, userID string, from, to time.Time) (int, error)
	CountCreatedInRange(ctx context.Context, userID string, from, to time.Time) (int, error)
}

// WorkoutCounter covers the workout reads the report needs.
type WorkoutCounter interface {
	CountInRange(ctx context.Context, userID string, from, to time.Time) (int, error)
}

// MealAggregator covers the meal reads the report needs.
type MealAggregator interface {
	CountInRange(ctx context.Context, userID string, from, to time.Time) (int, error)
	SumNutritionInRange(ctx context.Context, userID string, from, to time.Time) (model.DietTotals, error)
}

// ExpenseSummer covers the transaction reads the report needs.
type ExpenseSummer interface {
	SumByCategoryInRange(ctx context.Context, userID string, from, to time.Time) ([]repository.CategoryFlow, error)
}

// InsightsService assembles the monthly dashboard report. It owns no state
// of its own; every call re-reads live data from the injected repositories.
type InsightsService struct {
	TodosRepo        TodoCounter
	WorkoutsRepo     WorkoutCounter
	MealsRepo        MealAggregator
	TransactionsRepo ExpenseSummer
}

func NewInsightsService(
	todosRepo TodoCounter,
	workoutsRepo WorkoutCounter,
	mealsRepo MealAggregator,
	transactionsRepo ExpenseSummer,
) *InsightsService {
	return &InsightsService{
		TodosRepo:        todosRepo,
		WorkoutsRepo:     workoutsRepo,
		MealsRepo:        mealsRepo,
		TransactionsRepo: transactionsRepo,
	}
}

type dayBucket struct {
	date  string
	start time.Time
	end   time.Time
}

// MonthRange resolves the half-open [start, end) range for a "YYYY-MM" month
// key, defaulting to the current month of now. The normalized key is returned
// alongside so the report can echo the month it actually used.
func MonthRange(monthKey string, now time.Time) (start, end time.Time, key string, err error) {
	year, month := now.Year(), int(now.Month())
	if monthKey != "" {
		if !utils.ValidMonthKey(monthKey) {
			return time.Time{}, time.Time{}, "", fmt.Errorf("invalid month key %q", monthKey)
		}
		parts := strings.SplitN(monthKey, "-", 2)
		year, _ = strconv.Atoi(parts[0])
		month, _ = strconv.Atoi(parts[1])
	}

	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0)
	key = fmt.Sprintf("%04d-%02d", year, month)
	return start, end, key, nil
}

// last7Window returns the 7 local calendar days ending at now's day, oldest
// first, each bounded [midnight, midnight+24h).
func last7Window(now time.Time) []dayBucket {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	buckets := make([]dayBucket, 0, last7Days)
	for i := last7Days - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		buckets = append(buckets, dayBucket{
			date:  start.Format("2006-01-02"),
			start: start,
			end:   start.AddDate(0, 0, 1),
		})
	}
	return buckets
}

// ComputeStreak counts consecutive active days scanning backward from the most
// recent entry, stopping at the first inactive day. An inactive "today" yields
// zero regardless of earlier days.
func ComputeStreak(days []model.DayActivity) int {
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if !days[i].Active {
			break
		}
		streak++
	}
	return streak
}

// RankExpenses normalizes grouped transaction sums to signed amounts
// (expense positive, income negative), keeps expenses only, folds empty
// category labels into "Uncategorized", and ranks the groups by amount
// descending with category name ascending as the tie-break. The returned
// spent total covers every expense group, not just the ranked top five.
func RankExpenses(flows []repository.CategoryFlow) (float64, []model.CategoryExpense) {
	sums := make(map[string]float64)
	for _, flow := range flows {
		signed := flow.Total
		if flow.Type == model.TransactionIncome {
			signed = -signed
		}
		if signed <= 0 {
			continue
		}
		name := flow.CategoryName
		if name == "" {
			name = UncategorizedLabel
		}
		sums[name] += signed
	}

	var spent float64
	ranked := make([]model.CategoryExpense, 0, len(sums))
	for name, amount := range sums {
		spent += amount
		ranked = append(ranked, model.CategoryExpense{Name: name, Amount: amount})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > topCategoryLimit {
		ranked = ranked[:topCategoryLimit]
	}

	for i := range ranked {
		if spent > 0 {
			ranked[i].Pct = ranked[i].Amount / spent * 100
		}
	}

	return spent, ranked
}

// MonthlyInsights produces the dashboard report for one user and month.
// monthKey is an optional "YYYY-MM" string; now anchors both the default
// month and the 7-day activity window. All independent reads fan out
// concurrently; the first failing branch fails the whole report.
func (svc *InsightsService) MonthlyInsights(ctx context.Context, userID string, monthKey string, now time.Time) (*model.MonthlyInsights, error) {
	monthStart, monthEnd, key, err := MonthRange(monthKey, now)
	if err != nil {
		return nil, err
	}

	days := last7Window(now)
	activity := make([]model.DayActivity, len(days))

	var (
		todosCompleted int
		todosCreated   int
		workoutsCount  int
		diet           model.DietTotals
		flows          []repository.CategoryFlow
	)

	g, gctx := errgroup.WithContext(ctx)

	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			done, err := svc.TodosRepo.CountCompletedInRange(gctx, userID, day.start, day.end)
			if err != nil {
				return err
			}
			workouts, err := svc.WorkoutsRepo.CountInRange(gctx, userID, day.start, day.end)
			if err != nil {
				return err
			}
			meals, err := svc.MealsRepo.CountInRange(gctx, userID, day.start, day.end)
			if err != nil {
				return err
			}
			activity[i] = model.DayActivity{
				Date:   day.date,
				Active: done+workouts+meals > 0,
			}
			return nil
		})
	}

	g.Go(func() error {
		var err error
		todosCompleted, err = svc.TodosRepo.CountCompletedInRange(gctx, userID, monthStart, monthEnd)
		return err
	})
	g.Go(func() error {
		var err error
		todosCreated, err = svc.TodosRepo.CountCreatedInRange(gctx, userID, monthStart, monthEnd)
		return err
	})
	g.Go(func() error {
		var err error
		workoutsCount, err = svc.WorkoutsRepo.CountInRange(gctx, userID, monthStart, monthEnd)
		return err
	})
	g.Go(func() error {
		var err error
		diet, err = svc.MealsRepo.SumNutritionInRange(gctx, userID, monthStart, monthEnd)
		return err
	})
	g.Go(func() error {
		var err error
		flows, err = svc.TransactionsRepo.SumByCategoryInRange(gctx, userID, monthStart, monthEnd)
		return err
	})

	if err := g.Wait(); err != nil {
		utils.TrackInsightsReport("failure")
		return nil, err
	}

	spent, topCategories := RankExpenses(flows)

	utils.TrackInsightsReport("success")

	return &model.MonthlyInsights{
		Month:  key,
		Last7:  activity,
		Streak: ComputeStreak(activity),
		Todos: model.TodoInsights{
			Completed: todosCompleted,
			Created:   todosCreated,
		},
		Workouts: model.WorkoutInsights{Count: workoutsCount},
		Diet:     diet,
		Finance: model.FinanceInsights{
			Spent:         spent,
			TopCategories: topCategories,
		},
	}, nil
}
