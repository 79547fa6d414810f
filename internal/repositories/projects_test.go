package repositories

import (
	"context"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/fundbridge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProject(t *testing.T, s *Store, owner *models.User, title, sector string, amount float64) *models.Project {
	t.Helper()
	p := &models.Project{
		Title:        title,
		Description:  "about " + title,
		TargetAmount: amount,
		Sector:       sector,
		UserID:       owner.ID,
	}
	require.NoError(t, s.CreateProject(context.Background(), p))
	return p
}

func titles(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Title)
	}
	return out
}

func ptr(v float64) *float64 { return &v }

func TestCreateProject_InvalidAmount(t *testing.T) {
	s := newTestStore(t)
	owner := mustUser(t, s, "s@x.com", models.RoleStudent)

	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		p := &models.Project{Title: "t", Description: "d", TargetAmount: amount, UserID: owner.ID}
		assert.ErrorIs(t, s.CreateProject(context.Background(), p), ErrInvalidAmount)
	}

	all, err := s.ListProjects(context.Background(), ProjectFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateProject_UnknownOwner(t *testing.T) {
	s := newTestStore(t)
	p := &models.Project{Title: "t", Description: "d", TargetAmount: 10, UserID: uuid.New()}
	assert.Error(t, s.CreateProject(context.Background(), p))
}

func TestListProjects_SectorAndMinAmount(t *testing.T) {
	s := newTestStore(t)
	owner := mustUser(t, s, "s@x.com", models.RoleStudent)
	for _, sector := range []string{"A", "B"} {
		for _, amount := range []float64{10, 50, 90} {
			mustProject(t, s, owner, sector+"-"+strconv.FormatFloat(amount, 'f', -1, 64), sector, amount)
		}
	}

	got, err := s.ListProjects(context.Background(), ProjectFilter{Sector: "A", MinAmount: ptr(20)})
	require.NoError(t, err)
	assert.Equal(t, []string{"A-50", "A-90"}, titles(got))
	for _, p := range got {
		assert.Equal(t, "A", p.Sector)
		assert.GreaterOrEqual(t, p.TargetAmount, 20.0)
	}
}

func TestListProjects_Filters(t *testing.T) {
	s := newTestStore(t)
	owner := mustUser(t, s, "s@x.com", models.RoleStudent)
	mustProject(t, s, owner, "Solar Roof", "energy", 100)
	mustProject(t, s, owner, "Robot Kit", "education", 250)
	water := &models.Project{Title: "Clean Water", Description: "filters using SOLAR pumps", TargetAmount: 400, Sector: "health", UserID: owner.ID}
	require.NoError(t, s.CreateProject(context.Background(), water))
	mustProject(t, s, owner, "100% Cotton", "fashion", 50)

	tests := []struct {
		name   string
		filter ProjectFilter
		want   []string
	}{
		{"no filter keeps creation order", ProjectFilter{}, []string{"Solar Roof", "Robot Kit", "Clean Water", "100% Cotton"}},
		{"search title or description ignoring case", ProjectFilter{Search: "solar"}, []string{"Solar Roof", "Clean Water"}},
		{"search treats percent literally", ProjectFilter{Search: "0%"}, []string{"100% Cotton"}},
		{"search underscore is literal", ProjectFilter{Search: "_"}, []string{}},
		{"sector exact match", ProjectFilter{Sector: "energy"}, []string{"Solar Roof"}},
		{"sector is not a substring match", ProjectFilter{Sector: "ener"}, []string{}},
		{"inclusive bounds", ProjectFilter{MinAmount: ptr(100), MaxAmount: ptr(250)}, []string{"Solar Roof", "Robot Kit"}},
		{"max only", ProjectFilter{MaxAmount: ptr(50)}, []string{"100% Cotton"}},
		{"all combined", ProjectFilter{Search: "solar", Sector: "health", MinAmount: ptr(300), MaxAmount: ptr(400)}, []string{"Clean Water"}},
		{"combined with no match", ProjectFilter{Search: "solar", Sector: "education"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListProjects(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestListProjectsByOwner(t *testing.T) {
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@x.com", models.RoleStudent)
	carol := mustUser(t, s, "carol@x.com", models.RoleStudent)
	mustProject(t, s, alice, "a1", "", 10)
	mustProject(t, s, carol, "c1", "", 10)
	mustProject(t, s, alice, "a2", "", 10)

	got, err := s.ListProjectsByOwner(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, titles(got))
	for _, p := range got {
		assert.Equal(t, alice.ID, p.UserID)
	}
}

func TestFindProject(t *testing.T) {
	s := newTestStore(t)
	owner := mustUser(t, s, "s@x.com", models.RoleStudent)
	p := mustProject(t, s, owner, "Solar", "energy", 10)

	got, err := s.FindProject(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solar", got.Title)
	require.NotNil(t, got.User)
	assert.Equal(t, owner.ID, got.User.ID)

	_, err = s.FindProject(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\ ok`, escapeLike(`50% off_now \ ok`))
}

func TestListProjects_SameTimestampKeepsInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := mustUser(t, s, "s@x.com", models.RoleStudent)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	want := make([]string, 0, 25)
	for i := range 25 {
		title := "p" + strconv.Itoa(i)
		want = append(want, title)
		p := &models.Project{Title: title, Description: "d", TargetAmount: 1, UserID: owner.ID, CreatedAt: at}
		require.NoError(t, s.CreateProject(ctx, p))
	}

	all, err := s.ListProjects(ctx, ProjectFilter{})
	require.NoError(t, err)
	assert.Equal(t, want, titles(all))

	own, err := s.ListProjectsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, want, titles(own))
}
