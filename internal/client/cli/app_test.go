package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okuleshov/supportlist/internal/client/config"
	"github.com/okuleshov/supportlist/internal/client/identity"
	"github.com/okuleshov/supportlist/internal/client/models"
)

type fakeListService struct {
	cur *models.List
}

func (f *fakeListService) Create(ctx context.Context, title string) (*models.List, error) {
	return f.cur, nil
}
func (f *fakeListService) Load(ctx context.Context) (*models.List, error) { return f.cur, nil }
func (f *fakeListService) Current() *models.List                          { return f.cur }
func (f *fakeListService) AddItem(ctx context.Context, title string) (*models.List, error) {
	return f.cur, nil
}
func (f *fakeListService) UpdateItem(ctx context.Context, id string, patch models.ItemPatch) (*models.List, error) {
	return f.cur, nil
}
func (f *fakeListService) DeleteItem(ctx context.Context, id string) (*models.List, error) {
	return f.cur, nil
}
func (f *fakeListService) Reorder(ctx context.Context, ids []string) (*models.List, error) {
	return f.cur, nil
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	oldPrintln := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			printed = append(printed, arg.(string))
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = oldPrintln })
	return &printed
}

func testApp(l *models.List) *App {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:  cfg,
		svc:     &fakeListService{cur: l},
		session: identity.NewGuestSession("lst", "irrelevant"),
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

func TestShow_GroupsByStatusThenOrder(t *testing.T) {
	l := &models.List{
		Title: "Moving day",
		Items: []models.Item{
			{ID: "done1", Title: "Rent van", Status: models.StatusComplete, Order: 0},
			{ID: "pend2", Title: "Pack boxes", Status: models.StatusPending, Order: 1},
			{ID: "claim1", Title: "Buy tape", Status: models.StatusClaimed, ClaimedBy: "Bob", Order: 0},
			{ID: "pend1", Title: "Sort clothes", Status: models.StatusPending, Order: 0},
		},
	}
	a := testApp(l)
	printed := capturePrintln(t)

	require.NoError(t, a.Show(context.Background()))

	require.Equal(t, []string{"pend1", "pend2", "claim1", "done1"}, a.lastShown)

	out := strings.Join(*printed, "\n")
	require.Contains(t, out, "== Moving day ==")
	require.Contains(t, out, "[~] Buy tape (claimed by Bob)")
	require.Less(t, strings.Index(out, "Sort clothes"), strings.Index(out, "Pack boxes"))
	require.Less(t, strings.Index(out, "Pack boxes"), strings.Index(out, "Buy tape"))
	require.Less(t, strings.Index(out, "Buy tape"), strings.Index(out, "Rent van"))
}

func TestShow_EmptyList(t *testing.T) {
	a := testApp(&models.List{Title: "Moving day"})
	printed := capturePrintln(t)

	require.NoError(t, a.Show(context.Background()))
	require.Contains(t, strings.Join(*printed, "\n"), "(empty)")
}

func TestStatusLine(t *testing.T) {
	a := testApp(&models.List{Title: "Moving day"})
	require.Equal(t, "Moving day (guest)", a.status())

	a.session = identity.NewOwnerSession("lst", "g", "o")
	require.Equal(t, "Moving day (owner)", a.status())

	a.svc = &fakeListService{}
	require.Equal(t, "no list", a.status())
}

func TestPickItem_ReadsDisplayedNumber(t *testing.T) {
	l := &models.List{
		Title: "Moving day",
		Items: []models.Item{
			{ID: "a", Title: "one", Status: models.StatusPending, Order: 0},
			{ID: "b", Title: "two", Status: models.StatusPending, Order: 1},
		},
	}
	a := testApp(l)
	capturePrintln(t)

	oldGet := getSimpleText
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return "2", nil
	}
	t.Cleanup(func() { getSimpleText = oldGet })

	id, err := a.pickItem("Item #")
	require.NoError(t, err)
	require.Equal(t, "b", id)
}
