package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/repository"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/jwt"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/redis"
)

// ── Mock ResourceRepository ──

type mockResourceRepo[T any] struct {
	mu       sync.Mutex
	rows     []T
	byID     map[int64]T
	created  T
	updated  T
	listErr  error
	writeErr error

	payloads []gateway.Payload
	calls    []string
}

func newMockResourceRepo[T any](rows ...T) *mockResourceRepo[T] {
	return &mockResourceRepo[T]{rows: rows, byID: make(map[int64]T)}
}

func (m *mockResourceRepo[T]) record(call string, p gateway.Payload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
	if p != nil {
		m.payloads = append(m.payloads, p)
	}
}

func (m *mockResourceRepo[T]) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockResourceRepo[T]) List(_ context.Context) ([]T, error) {
	m.record("list", nil)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rows, nil
}

func (m *mockResourceRepo[T]) GetByID(_ context.Context, id int64) (*T, error) {
	m.record("get", nil)
	if row, ok := m.byID[id]; ok {
		return &row, nil
	}
	return nil, &apperrors.UpstreamError{Status: 404, Message: "not found"}
}

func (m *mockResourceRepo[T]) Create(_ context.Context, body gateway.Payload) (*T, error) {
	m.record("create", body)
	if m.writeErr != nil {
		return nil, m.writeErr
	}
	out := m.created
	return &out, nil
}

func (m *mockResourceRepo[T]) Update(_ context.Context, _ int64, body gateway.Payload) (*T, error) {
	m.record("update", body)
	if m.writeErr != nil {
		return nil, m.writeErr
	}
	out := m.updated
	return &out, nil
}

func (m *mockResourceRepo[T]) Delete(_ context.Context, _ int64) error {
	m.record("delete", nil)
	return m.writeErr
}

// ── Mock PictureRepository ──

type mockPictureRepo struct {
	mu   sync.Mutex
	keys []string
}

func (m *mockPictureRepo) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return nil
}

// ── Mock AuthRepository ──

type mockAuthRepo struct {
	result *repository.LoginResult
	err    error
}

func (m *mockAuthRepo) Login(_ context.Context, _, _ string) (*repository.LoginResult, error) {
	return m.result, m.err
}

// ── Mock SessionStore ──

type mockSessionStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
	ttls     map[string]time.Duration
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *mockSessionStore) SaveSession(_ context.Context, id string, payload []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = payload
	m.ttls[id] = ttl
	return nil
}

func (m *mockSessionStore) LoadSession(_ context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.sessions[id]
	if !ok {
		return nil, redis.ErrSessionNotFound
	}
	return b, nil
}

func (m *mockSessionStore) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// ── fixtures ──

type mockRepos struct {
	employee    *mockResourceRepo[model.Employee]
	partner     *mockResourceRepo[model.Partner]
	wali        *mockResourceRepo[model.Wali]
	children    *mockResourceRepo[model.Children]
	home        *mockResourceRepo[model.Home]
	umkm        *mockResourceRepo[model.Umkm]
	region      *mockResourceRepo[model.Region]
	subdistrict *mockResourceRepo[model.Subdistrict]
	staff       *mockResourceRepo[model.Staff]
	picture     *mockPictureRepo
	auth        *mockAuthRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		employee:    newMockResourceRepo[model.Employee](),
		partner:     newMockResourceRepo[model.Partner](),
		wali:        newMockResourceRepo[model.Wali](),
		children:    newMockResourceRepo[model.Children](),
		home:        newMockResourceRepo[model.Home](),
		umkm:        newMockResourceRepo[model.Umkm](),
		region:      newMockResourceRepo[model.Region](),
		subdistrict: newMockResourceRepo[model.Subdistrict](),
		staff:       newMockResourceRepo[model.Staff](),
		picture:     &mockPictureRepo{},
		auth:        &mockAuthRepo{},
	}
	repo := &repository.Repository{
		Employee:    m.employee,
		Partner:     m.partner,
		Wali:        m.wali,
		Children:    m.children,
		Home:        m.home,
		Umkm:        m.umkm,
		Region:      m.region,
		Subdistrict: m.subdistrict,
		Staff:       m.staff,
		Picture:     m.picture,
		Auth:        m.auth,
	}
	return repo, m
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret-at-least-16",
			SessionTTL: time.Hour,
		},
		Upload: config.UploadConfig{
			MaxBytes:     1 << 20,
			AllowedMimes: []string{"image/jpeg", "image/png", "image/webp"},
		},
		Export: config.ExportConfig{
			Timezone:   "Asia/Jakarta",
			DateLayout: "02/01/2006",
		},
	}
}

func setupTestService() (*Service, *mockRepos, *mockSessionStore) {
	cfg := testConfig()
	repo, mocks := newMockRepos()
	store := newMockSessionStore()
	svc, err := NewService(cfg, repo, store, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())
	if err != nil {
		panic(err)
	}
	return svc, mocks, store
}

func pngFile() *gateway.File {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return &gateway.File{Name: "photo.png", Content: buf.Bytes()}
}
