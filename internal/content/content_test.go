package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-promo/studio-site/internal/store"
)

func threeServices() Content {
	return Content{
		Services: []Service{
			{Icon: "Globe", Title: "A"},
			{Icon: "Code", Title: "B"},
			{Icon: "Star", Title: "C"},
		},
	}
}

func TestAddService(t *testing.T) {
	c := Default()
	out := AddService(c)

	require.Len(t, out.Services, 7)
	assert.Equal(t, "Star", out.Services[6].Icon)
	assert.Equal(t, "Новая услуга", out.Services[6].Title)
	assert.Equal(t, "Описание услуги", out.Services[6].Description)

	// the input value is untouched
	assert.Len(t, c.Services, 6)
}

func TestDeleteService(t *testing.T) {
	testCases := []struct {
		name           string
		index          int
		expectedTitles []string
	}{
		{name: "middle entry renumbers the tail", index: 1, expectedTitles: []string{"A", "C"}},
		{name: "first entry", index: 0, expectedTitles: []string{"B", "C"}},
		{name: "last entry", index: 2, expectedTitles: []string{"A", "B"}},
		{name: "negative index is a no-op", index: -1, expectedTitles: []string{"A", "B", "C"}},
		{name: "out of range index is a no-op", index: 3, expectedTitles: []string{"A", "B", "C"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := DeleteService(threeServices(), tc.index)

			titles := make([]string, 0, len(out.Services))
			for _, svc := range out.Services {
				titles = append(titles, svc.Title)
			}

			assert.Equal(t, tc.expectedTitles, titles)
		})
	}
}

func TestUpdateServiceField(t *testing.T) {
	c := threeServices()

	out := UpdateServiceField(c, 1, FieldTitle, "Updated")
	assert.Equal(t, "Updated", out.Services[1].Title)
	assert.Equal(t, "B", c.Services[1].Title, "input value must stay untouched")

	out = UpdateServiceField(c, 1, "unknown", "x")
	assert.Equal(t, c.Services, out.Services)

	out = UpdateServiceField(c, 99, FieldTitle, "x")
	assert.Equal(t, c.Services, out.Services)
}

func TestAddBlogPost(t *testing.T) {
	out := AddBlogPost(Content{})

	require.Len(t, out.Blog, 1)
	assert.Equal(t, "Новое", out.Blog[0].Category)
	assert.Equal(t, "Новая статья", out.Blog[0].Title)
	assert.Equal(t, "FileText", out.Blog[0].Icon)
	assert.NotEmpty(t, out.Blog[0].Date)
}

func TestDeleteBlogPost(t *testing.T) {
	c := Default()

	out := DeleteBlogPost(c, 0)
	require.Len(t, out.Blog, 2)
	assert.Equal(t, "Психология цвета в интерфейсах", out.Blog[0].Title)

	out = DeleteBlogPost(c, 5)
	assert.Len(t, out.Blog, 3)
}

func TestUpdateContact(t *testing.T) {
	c := Default()

	out := UpdateContact(c, FieldEmail, "new@life-promo.ru")
	assert.Equal(t, "new@life-promo.ru", out.Contact.Email)
	assert.Equal(t, "info@life-promo.ru", c.Contact.Email)

	out = UpdateContact(c, "unknown", "x")
	assert.Equal(t, c.Contact, out.Contact)
}

func TestDefaultIsADeepCopy(t *testing.T) {
	first := Default()
	first.Services[0].Title = "mutated"
	first.Contact.Name = "mutated"

	second := Default()
	assert.Equal(t, "Корпоративные сайты", second.Services[0].Title)
	assert.Equal(t, "Life-Promo", second.Contact.Name)
}

func TestRepositorySaveLoadRoundTrip(t *testing.T) {
	repo := NewRepository(store.NewMemory())

	// nothing saved yet: the built-in seed is served
	loaded := repo.Load()
	assert.Len(t, loaded.Services, 6)
	assert.Len(t, loaded.Blog, 3)

	modified := AddService(loaded)
	require.NoError(t, repo.Save(modified))

	assert.Len(t, repo.Load().Services, 7)
}

func TestRepositoryLoadCorruptedValue(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(store.KeySiteContent, []byte("{broken")))

	loaded := NewRepository(s).Load()
	assert.Len(t, loaded.Services, 6, "corrupted content must reset to the seed")
}

func TestRepositorySubscribe(t *testing.T) {
	repo := NewRepository(store.NewMemory())

	var got []Content
	repo.Subscribe(func(c Content) {
		got = append(got, c)
	})

	require.NoError(t, repo.Save(threeServices()))

	require.Len(t, got, 1)
	assert.Len(t, got[0].Services, 3)
}

func TestRepositoryRefresh(t *testing.T) {
	s := store.NewMemory()
	repo := NewRepository(s)

	var got []Content
	repo.Subscribe(func(c Content) {
		got = append(got, c)
	})

	// a backup restore writes the key directly, bypassing Save
	require.NoError(t, s.Set(store.KeySiteContent, []byte(`{"services":[{"title":"Импорт"}]}`)))

	repo.Refresh()

	require.Len(t, got, 1)
	require.Len(t, got[0].Services, 1)
	assert.Equal(t, "Импорт", got[0].Services[0].Title)
}
