package appointment

import (
	"context"
	"strconv"
	"time"

	"github.com/barberbook/barberbook-api/internal/audit"
	domaincli "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

// Repositórios em memória para os testes dos use cases.

type memAppointmentRepo struct {
	items map[string]*models.Appointment
	seq   int
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{items: map[string]*models.Appointment{}}
}

func (r *memAppointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.items))
	for _, ap := range r.items {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *memAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range r.items {
		if ap.Date == date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range r.items {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *ap
	return &cp, nil
}

func (r *memAppointmentRepo) Create(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		r.seq++
		ap.ID = "ap-" + strconv.Itoa(r.seq)
	}
	cp := *ap
	r.items[ap.ID] = &cp
	return nil
}

func (r *memAppointmentRepo) Update(ctx context.Context, ap *models.Appointment) error {
	cp := *ap
	r.items[ap.ID] = &cp
	return nil
}

func (r *memAppointmentRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memClientRepo struct {
	items map[string]*models.Client
}

func newMemClientRepo(clients ...models.Client) *memClientRepo {
	r := &memClientRepo{items: map[string]*models.Client{}}
	for i := range clients {
		c := clients[i]
		r.items[c.ID] = &c
	}
	return r
}

func (r *memClientRepo) List(ctx context.Context) ([]models.Client, error) {
	out := make([]models.Client, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memClientRepo) Search(ctx context.Context, query string) ([]models.Client, error) {
	return r.List(ctx)
}

func (r *memClientRepo) ListByStatus(ctx context.Context, status domaincli.Status) ([]models.Client, error) {
	out := []models.Client{}
	for _, c := range r.items {
		if c.Status == string(status) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClientRepo) Create(ctx context.Context, c *models.Client) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memClientRepo) Update(ctx context.Context, c *models.Client) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memClientRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memServiceRepo struct {
	items map[string]*models.Service
}

func newMemServiceRepo(services ...models.Service) *memServiceRepo {
	r := &memServiceRepo{items: map[string]*models.Service{}}
	for i := range services {
		s := services[i]
		r.items[s.ID] = &s
	}
	return r
}

func (r *memServiceRepo) List(ctx context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memServiceRepo) Create(ctx context.Context, s *models.Service) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *memServiceRepo) Update(ctx context.Context, s *models.Service) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *memServiceRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memShopRepo struct {
	profile models.ShopProfile
}

func newMemShopRepo() *memShopRepo {
	return &memShopRepo{profile: models.ShopProfile{
		ID:       1,
		Name:     "BarberBook",
		Timezone: timezone.DefaultTimezone,
	}}
}

func (r *memShopRepo) Get(ctx context.Context) (*models.ShopProfile, error) {
	cp := r.profile
	return &cp, nil
}

func (r *memShopRepo) Update(ctx context.Context, p *models.ShopProfile) error {
	r.profile = *p
	return nil
}

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

// memCache registra os prefixos invalidados para os testes de escrita.
type memCache struct {
	invalidated []string
}

func newMemCache() *memCache {
	return &memCache{}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (c *memCache) DeletePrefix(ctx context.Context, prefix string) error {
	c.invalidated = append(c.invalidated, prefix)
	return nil
}
