package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

type stubAudioRepo struct {
	audios     map[string]*domain.Audio
	lastFilter ports.ListAudiosFilter
	listItems  []*domain.Audio
	listTotal  int64
	nextID     int
}

func newStubAudioRepo() *stubAudioRepo {
	return &stubAudioRepo{audios: make(map[string]*domain.Audio)}
}

func (r *stubAudioRepo) Insert(_ context.Context, a *domain.Audio) (*domain.Audio, error) {
	r.nextID++
	stored := *a
	stored.ID = "audio-" + strconv.Itoa(r.nextID)
	r.audios[stored.ID] = &stored
	return &stored, nil
}

func (r *stubAudioRepo) FindByID(_ context.Context, id string) (*domain.Audio, error) {
	a, ok := r.audios[id]
	if !ok {
		return nil, domain.ErrAudioNotFound
	}
	return a, nil
}

func (r *stubAudioRepo) List(_ context.Context, filter ports.ListAudiosFilter) ([]*domain.Audio, int64, error) {
	r.lastFilter = filter
	return r.listItems, r.listTotal, nil
}

func (r *stubAudioRepo) Update(_ context.Context, id string, a *domain.Audio) (*domain.Audio, error) {
	if _, ok := r.audios[id]; !ok {
		return nil, domain.ErrAudioNotFound
	}
	stored := *a
	stored.ID = id
	r.audios[id] = &stored
	return &stored, nil
}

func (r *stubAudioRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.audios[id]; !ok {
		return domain.ErrAudioNotFound
	}
	delete(r.audios, id)
	return nil
}

func (r *stubAudioRepo) IncrementPlayCount(_ context.Context, id string) (int64, error) {
	a, ok := r.audios[id]
	if !ok {
		return 0, domain.ErrAudioNotFound
	}
	a.PlayCount++
	return a.PlayCount, nil
}

func (r *stubAudioRepo) IncrementLikes(_ context.Context, id string) (int64, error) {
	a, ok := r.audios[id]
	if !ok {
		return 0, domain.ErrAudioNotFound
	}
	a.Likes++
	return a.Likes, nil
}

func (r *stubAudioRepo) ReplaceAll(_ context.Context, items []*domain.Audio) (int, error) {
	r.audios = make(map[string]*domain.Audio)
	for _, a := range items {
		r.nextID++
		stored := *a
		stored.ID = "audio-" + strconv.Itoa(r.nextID)
		r.audios[stored.ID] = &stored
	}
	return len(items), nil
}

type stubPlayGuard struct {
	seen bool
	err  error
}

func (g *stubPlayGuard) SeenRecently(_ context.Context, _, _ string) (bool, error) {
	return g.seen, g.err
}

func newTestCatalogService(repo ports.AudioRepository, guard PlayGuard) *CatalogService {
	return NewCatalogService(repo, guard, zerolog.Nop())
}

func TestListDefaultsAndCaps(t *testing.T) {
	repo := newStubAudioRepo()
	svc := newTestCatalogService(repo, nil)

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"limit capped", 2, 500, 2, 100},
		{"explicit", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.List(context.Background(), ports.ListAudiosInput{Page: tt.page, Limit: tt.limit})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if result.Page != tt.wantPage || result.Limit != tt.wantLimit {
				t.Errorf("page/limit = %d/%d, want %d/%d", result.Page, result.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestListCategorySentinel(t *testing.T) {
	repo := newStubAudioRepo()
	svc := newTestCatalogService(repo, nil)

	if _, err := svc.List(context.Background(), ports.ListAudiosInput{Category: "All"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastFilter.Category != "" {
		t.Errorf("category filter = %q, want empty for 'all' sentinel", repo.lastFilter.Category)
	}

	if _, err := svc.List(context.Background(), ports.ListAudiosInput{Category: " Sleep "}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastFilter.Category != "sleep" {
		t.Errorf("category filter = %q, want normalized 'sleep'", repo.lastFilter.Category)
	}
	if !repo.lastFilter.PublicOnly {
		t.Error("public listing should filter to public items")
	}
}

func TestListTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{23, 10, 3},
		{100, 100, 1},
	}

	for _, tt := range tests {
		if got := totalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestCatalogService(newStubAudioRepo(), nil)

	tests := []struct {
		name  string
		input ports.CreateAudioInput
	}{
		{"missing title", ports.CreateAudioInput{AudioURL: "https://cdn/x.mp3"}},
		{"missing url", ports.CreateAudioInput{Title: "Sleep"}},
		{"negative duration", ports.CreateAudioInput{Title: "Sleep", AudioURL: "https://cdn/x.mp3", Duration: -1}},
		{"bad format", ports.CreateAudioInput{Title: "Sleep", AudioURL: "https://cdn/x.mp3", Format: "midi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			var ve domain.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("Create error = %v, want ValidationError", err)
			}
		})
	}
}

func TestCreateNormalizes(t *testing.T) {
	repo := newStubAudioRepo()
	svc := newTestCatalogService(repo, nil)

	created, err := svc.Create(context.Background(), ports.CreateAudioInput{
		Title:    "  Deep Sleep  ",
		AudioURL: "https://cdn/x.mp3",
		Tags:     []string{" Sleep ", "CALM", ""},
		Category: " Sleep ",
		Duration: 754,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Title != "Deep Sleep" {
		t.Errorf("title = %q, want trimmed", created.Title)
	}
	if created.Category != "sleep" {
		t.Errorf("category = %q, want normalized", created.Category)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "sleep" || created.Tags[1] != "calm" {
		t.Errorf("tags = %v, want normalized pair", created.Tags)
	}
	if created.Format != domain.FormatMP3 {
		t.Errorf("format = %q, want mp3 default", created.Format)
	}
	if !created.Public {
		t.Error("public should default to true")
	}
	if created.UploadedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps should be stamped")
	}
}

func TestUpdatePreservesCounters(t *testing.T) {
	repo := newStubAudioRepo()
	svc := newTestCatalogService(repo, nil)

	created, err := svc.Create(context.Background(), ports.CreateAudioInput{
		Title: "Sleep", AudioURL: "https://cdn/x.mp3",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	repo.audios[created.ID].PlayCount = 42
	repo.audios[created.ID].Likes = 7

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateAudioInput{
		Title: "Sleep v2", AudioURL: "https://cdn/y.mp3",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.PlayCount != 42 || updated.Likes != 7 {
		t.Errorf("counters = %d/%d, want preserved 42/7", updated.PlayCount, updated.Likes)
	}
	if updated.Title != "Sleep v2" {
		t.Errorf("title = %q", updated.Title)
	}
}

func TestUpdateMissingAudio(t *testing.T) {
	svc := newTestCatalogService(newStubAudioRepo(), nil)

	_, err := svc.Update(context.Background(), "missing", ports.UpdateAudioInput{
		Title: "X", AudioURL: "https://cdn/x.mp3",
	})
	if !errors.Is(err, domain.ErrAudioNotFound) {
		t.Errorf("Update error = %v, want ErrAudioNotFound", err)
	}
}

func TestRecordPlayGuard(t *testing.T) {
	repo := newStubAudioRepo()
	created, _ := repo.Insert(context.Background(), &domain.Audio{Title: "Sleep", AudioURL: "u", PlayCount: 5})

	t.Run("fresh listener increments", func(t *testing.T) {
		svc := newTestCatalogService(repo, &stubPlayGuard{seen: false})
		count, err := svc.RecordPlay(context.Background(), created.ID, "listener-a")
		if err != nil {
			t.Fatalf("RecordPlay: %v", err)
		}
		if count != 6 {
			t.Errorf("count = %d, want 6", count)
		}
	})

	t.Run("seen listener does not increment", func(t *testing.T) {
		svc := newTestCatalogService(repo, &stubPlayGuard{seen: true})
		count, err := svc.RecordPlay(context.Background(), created.ID, "listener-a")
		if err != nil {
			t.Fatalf("RecordPlay: %v", err)
		}
		if count != 6 {
			t.Errorf("count = %d, want unchanged 6", count)
		}
	})

	t.Run("guard failure fails open", func(t *testing.T) {
		svc := newTestCatalogService(repo, &stubPlayGuard{err: errors.New("redis down")})
		count, err := svc.RecordPlay(context.Background(), created.ID, "listener-a")
		if err != nil {
			t.Fatalf("RecordPlay: %v", err)
		}
		if count != 7 {
			t.Errorf("count = %d, want counted 7", count)
		}
	})

	t.Run("empty listener skips guard", func(t *testing.T) {
		svc := newTestCatalogService(repo, &stubPlayGuard{seen: true})
		count, err := svc.RecordPlay(context.Background(), created.ID, "")
		if err != nil {
			t.Fatalf("RecordPlay: %v", err)
		}
		if count != 8 {
			t.Errorf("count = %d, want counted 8", count)
		}
	})
}

func TestRecordLike(t *testing.T) {
	repo := newStubAudioRepo()
	created, _ := repo.Insert(context.Background(), &domain.Audio{Title: "Sleep", AudioURL: "u"})
	svc := newTestCatalogService(repo, nil)

	count, err := svc.RecordLike(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("RecordLike: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	if _, err := svc.RecordLike(context.Background(), "missing"); !errors.Is(err, domain.ErrAudioNotFound) {
		t.Errorf("RecordLike error = %v, want ErrAudioNotFound", err)
	}
}

func TestSeedReplacesCatalog(t *testing.T) {
	repo := newStubAudioRepo()
	if _, err := repo.Insert(context.Background(), &domain.Audio{Title: "old", AudioURL: "u"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	svc := newTestCatalogService(repo, nil)

	count, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if count != len(SampleCatalog()) {
		t.Errorf("count = %d, want %d", count, len(SampleCatalog()))
	}
	if len(repo.audios) != count {
		t.Errorf("repo holds %d audios after seed, want %d", len(repo.audios), count)
	}
	for _, a := range repo.audios {
		if a.Title == "old" {
			t.Error("seed should have removed pre-existing items")
		}
	}
}
