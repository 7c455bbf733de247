package contract_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/internal/domain"
	contractdomain "github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// ── Almacenamiento en memoria ────────────────────────────────────────────────

type memStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	uploadErr  error
	deleteErrs map[string]error
	deleted    []string
	updated    map[string]time.Time
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, deleteErrs: map[string]error{}, updated: map[string]time.Time{}}
}

func (s *memStore) Upload(_ context.Context, key string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.objects[key] = append([]byte(nil), data...)
	return nil
}

func (s *memStore) Download(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[key]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	return b, nil
}

func (s *memStore) OpenRangeReader(_ context.Context, key string, offset, length int64) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[key]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	end := int64(len(b))
	if length >= 0 && offset+length < end {
		end = offset + length
	}
	return io.NopCloser(bytes.NewReader(b[offset:end])), nil
}

func (s *memStore) Stat(_ context.Context, key string) (*ports.ObjectAttrs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[key]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	return &ports.ObjectAttrs{Key: key, Size: int64(len(b)), ContentType: entity.MimeTypePDF}, nil
}

func (s *memStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for _, k := range keys {
		if err := s.deleteErrs[k]; err != nil {
			errs = append(errs, err)
			continue
		}
		delete(s.objects, k)
		s.deleted = append(s.deleted, k)
	}
	return errors.Join(errs...)
}

func (s *memStore) List(_ context.Context, prefix string) ([]ports.ObjectAttrs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ports.ObjectAttrs
	for k, b := range s.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, ports.ObjectAttrs{Key: k, Size: int64(len(b)), Updated: s.updated[k]})
		}
	}
	return out, nil
}

func (s *memStore) PublicURL(key string) string { return "https://storage.test/" + key }

func (s *memStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

// ── Repositorios en memoria ──────────────────────────────────────────────────

type fakeRepos struct {
	customers  map[string]*entity.Customer
	persons    map[string][]*entity.AuthorizedPerson
	owners     map[string][]*entity.BeneficialOwner
	mandates   map[string]*entity.SepaMandate
	signatures map[string]*entity.Signature
	products   map[string][]*entity.Product
	fees       map[string]*entity.TransactionFees
	err        error // si no es nil, todas las lecturas opcionales fallan
}

func newFakeRepos() *fakeRepos {
	return &fakeRepos{
		customers:  map[string]*entity.Customer{},
		persons:    map[string][]*entity.AuthorizedPerson{},
		owners:     map[string][]*entity.BeneficialOwner{},
		mandates:   map[string]*entity.SepaMandate{},
		signatures: map[string]*entity.Signature{},
		products:   map[string][]*entity.Product{},
		fees:       map[string]*entity.TransactionFees{},
	}
}

func (f *fakeRepos) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

type personRepo struct{ *fakeRepos }

func (r personRepo) ListByCustomer(_ context.Context, id string) ([]*entity.AuthorizedPerson, error) {
	return r.persons[id], r.err
}

type ownerRepo struct{ *fakeRepos }

func (r ownerRepo) ListByCustomer(_ context.Context, id string) ([]*entity.BeneficialOwner, error) {
	return r.owners[id], r.err
}

type mandateRepo struct{ *fakeRepos }

func (r mandateRepo) GetByCustomer(_ context.Context, id string) (*entity.SepaMandate, error) {
	return r.mandates[id], r.err
}

type signatureRepo struct{ *fakeRepos }

func (r signatureRepo) GetByCustomer(_ context.Context, id string) (*entity.Signature, error) {
	return r.signatures[id], r.err
}

type productRepo struct{ *fakeRepos }

func (r productRepo) ListByCustomer(_ context.Context, id string) ([]*entity.Product, error) {
	return r.products[id], r.err
}

func (r productRepo) GetTransactionFees(_ context.Context, id string) (*entity.TransactionFees, error) {
	return r.fees[id], r.err
}

type memDocs struct {
	mu        sync.Mutex
	rows      map[string]*entity.Document
	createErr error
	deleteErr map[string]error
}

func newMemDocs() *memDocs {
	return &memDocs{rows: map[string]*entity.Document{}, deleteErr: map[string]error{}}
}

func (d *memDocs) Create(_ context.Context, doc *entity.Document) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.createErr != nil {
		return d.createErr
	}
	cp := *doc
	d.rows[doc.ID] = &cp
	return nil
}

func (d *memDocs) ListByCustomerAndPrefix(_ context.Context, customerID, documentType, prefix string) ([]*entity.Document, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []*entity.Document
	for _, r := range d.rows {
		if r.CustomerID == customerID && r.DocumentType == documentType && strings.HasPrefix(r.FileName, prefix) {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (d *memDocs) Delete(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.deleteErr[id]; err != nil {
		return err
	}
	delete(d.rows, id)
	return nil
}

func (d *memDocs) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.rows)
}

func (d *memDocs) add(doc *entity.Document) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows[doc.ID] = doc
}

// ── PDF ──────────────────────────────────────────────────────────────────────

// stubRenderer devuelve la plantilla seguida de un marcador por texto dibujado.
type stubRenderer struct {
	last []contractdomain.Placement
	err  error
}

func (r *stubRenderer) Render(_ context.Context, tpl []byte, _ *contractdomain.Layout, ps []contractdomain.Placement) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.last = ps
	out := append([]byte(nil), tpl...)
	for _, p := range ps {
		out = append(out, []byte("\n"+p.Text)...)
	}
	return out, nil
}

type stubInspector struct {
	pages int
	err   error
}

func (i stubInspector) PageCount(context.Context, []byte) (int, error) { return i.pages, i.err }

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }
