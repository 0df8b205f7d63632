package inmem

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derWhity/eventdesk/internal/models"
)

func newRepo(seq *Sequence) *EventRepo {
	logger, _ := test.NewNullLogger()
	return New(seq, logrus.NewEntry(logger))
}

func jazzNight() models.NewEvent {
	return models.NewEvent{
		Name:     "Jazz Night",
		Date:     "2024-07-01",
		Time:     "19:00",
		Location: "Hall A",
		Status:   models.StatusOnSale,
	}
}

func TestListOnFreshRepoIsEmpty(t *testing.T) {
	r := newRepo(NewSequence())
	assert.Empty(t, r.List())
}

func TestAddDerivesAllFields(t *testing.T) {
	r := newRepo(NewSequence())
	ev := r.Add(jazzNight())

	want := models.Event{
		ID:                 1,
		Name:               "Jazz Night",
		URL:                "/events/1",
		Date:               "2024-07-01",
		Time:               "19:00",
		Location:           "Hall A",
		TotalRevenue:       "$0.00",
		TotalRevenueChange: "+0%",
		TicketsAvailable:   100,
		TicketsSold:        0,
		TicketsSoldChange:  "+0%",
		PageViews:          "0",
		PageViewsChange:    "+0%",
		Status:             models.StatusOnSale,
		ImgURL:             "/events/jazz-night.jpg",
		ThumbURL:           "/events/jazz-night-thumb.jpg",
	}
	assert.Equal(t, want, ev)
	assert.Equal(t, []models.Event{want}, r.List())
}

func TestAddAppendsAndKeepsOrder(t *testing.T) {
	r := newRepo(NewSequence())
	names := []string{"First", "Second", "Third", "Fourth"}
	for i, name := range names {
		before := r.List()
		r.Add(models.NewEvent{Name: name, Status: models.StatusSoldOut})
		after := r.List()
		require.Len(t, after, i+1)
		assert.Equal(t, before, after[:i], "previous events must stay untouched")
		assert.Equal(t, name, after[i].Name)
	}
}

func TestIdenticalInputCreatesDistinctEvents(t *testing.T) {
	r := newRepo(NewSequence())
	a := r.Add(jazzNight())
	b := r.Add(jazzNight())

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "/events/2", b.URL)
	// Apart from the ID and the URL derived from it, both events are the same
	b.ID, b.URL = a.ID, a.URL
	assert.Equal(t, a, b)
}

func TestAddAcceptsEmptyInput(t *testing.T) {
	r := newRepo(NewSequence())
	ev := r.Add(models.NewEvent{})

	assert.Equal(t, uint64(1), ev.ID)
	assert.Equal(t, "/events/.jpg", ev.ImgURL)
	assert.Equal(t, "/events/-thumb.jpg", ev.ThumbURL)
	assert.Len(t, r.List(), 1)
}

func TestIDsAreSharedBetweenRepos(t *testing.T) {
	seq := NewSequence()
	first := newRepo(seq)
	second := newRepo(seq)

	a := first.Add(jazzNight())
	b := second.Add(jazzNight())
	c := first.Add(jazzNight())

	assert.Equal(t, []uint64{1, 2, 3}, []uint64{a.ID, b.ID, c.ID})
	assert.Len(t, first.List(), 2)
	assert.Len(t, second.List(), 1)
}

func TestListReturnsACopy(t *testing.T) {
	r := newRepo(NewSequence())
	r.Add(jazzNight())

	lst := r.List()
	lst[0].Name = "Changed"
	assert.Equal(t, "Jazz Night", r.List()[0].Name)
}

func TestGet(t *testing.T) {
	r := newRepo(NewSequence())
	r.Add(jazzNight())
	second := r.Add(models.NewEvent{Name: "Rock Night", Status: models.StatusCancelled})

	ev, ok := r.Get(second.ID)
	require.True(t, ok)
	assert.Equal(t, second, ev)

	_, ok = r.Get(42)
	assert.False(t, ok)
}

func TestConcurrentAddsKeepIDsUniqueAndOrdered(t *testing.T) {
	seq := NewSequence()
	repos := []*EventRepo{newRepo(seq), newRepo(seq), newRepo(seq)}

	var wg sync.WaitGroup
	for _, r := range repos {
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(r *EventRepo) {
				defer wg.Done()
				r.Add(jazzNight())
			}(r)
		}
	}
	wg.Wait()

	seen := map[uint64]bool{}
	for _, r := range repos {
		lst := r.List()
		require.Len(t, lst, 50)
		for i, ev := range lst {
			assert.False(t, seen[ev.ID], "ID %d handed out twice", ev.ID)
			seen[ev.ID] = true
			if i > 0 {
				assert.Greater(t, ev.ID, lst[i-1].ID)
			}
		}
	}
	assert.Len(t, seen, 150)
}
