package services

import (
	"context"
	"sort"
	"time"

	"teamcalendar/internal/domain"
)

const testTimeout = 5 * time.Second

// fakeEmployeeRepo is an in-memory EmployeeRepository for tests.
type fakeEmployeeRepo struct {
	byID   map[int64]*domain.Employee
	nextID int64
	err    error // if set, every call returns this error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[int64]*domain.Employee), nextID: 1}
}

func (f *fakeEmployeeRepo) List(_ context.Context, includeDisabled bool) ([]*domain.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Employee
	for _, e := range f.byID {
		if includeDisabled || !e.Disabled {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	if f.err != nil {
		return f.err
	}
	e.ID = f.nextID
	f.nextID++
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) Disable(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Disabled = true
	return nil
}

// fakeTeamRepo is an in-memory TeamRepository for tests.
type fakeTeamRepo struct {
	byID   map[int64]*domain.Team
	nextID int64
	err    error
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{byID: make(map[int64]*domain.Team), nextID: 1}
}

func (f *fakeTeamRepo) List(_ context.Context, includeDisabled bool) ([]*domain.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Team
	for _, t := range f.byID {
		if includeDisabled || !t.Disabled {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTeamRepo) Create(_ context.Context, t *domain.Team) error {
	if f.err != nil {
		return f.err
	}
	t.ID = f.nextID
	f.nextID++
	cp := *t
	f.byID[t.ID] = &cp
	return nil
}

func (f *fakeTeamRepo) Update(_ context.Context, t *domain.Team) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	f.byID[t.ID] = &cp
	return nil
}

func (f *fakeTeamRepo) Disable(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	t, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.Disabled = true
	return nil
}

// fakeEventRepo keeps events and their participant sets in memory. It does not roll back on
// its own; pair it with fakeTxManager to observe what a transaction would have undone.
type fakeEventRepo struct {
	events    map[int64]domain.EventInput
	employees map[int64][]int64
	nextID    int64
	calls     []string

	listResult []*domain.Event
	listErr    error
	lastQuery  domain.EventsQuery
	createErr  error
	updateErr  error
	deleteErr  error
	clearErr   error
	addErr     error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:    make(map[int64]domain.EventInput),
		employees: make(map[int64][]int64),
		nextID:    1,
	}
}

func (f *fakeEventRepo) List(_ context.Context, q domain.EventsQuery) ([]*domain.Event, error) {
	f.calls = append(f.calls, "list")
	f.lastQuery = q
	return f.listResult, f.listErr
}

func (f *fakeEventRepo) Create(_ context.Context, in *domain.EventInput) (int64, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	f.events[id] = *in
	return id, nil
}

func (f *fakeEventRepo) Update(_ context.Context, in *domain.EventInput) error {
	f.calls = append(f.calls, "update")
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.events[in.ID]; !ok {
		return domain.ErrNotFound
	}
	f.events[in.ID] = *in
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	f.calls = append(f.calls, "delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	delete(f.employees, id)
	return nil
}

func (f *fakeEventRepo) ClearEmployees(_ context.Context, eventID int64) error {
	f.calls = append(f.calls, "clear")
	if f.clearErr != nil {
		return f.clearErr
	}
	delete(f.employees, eventID)
	return nil
}

func (f *fakeEventRepo) AddEmployees(_ context.Context, eventID int64, ids []int64) error {
	f.calls = append(f.calls, "add")
	if f.addErr != nil {
		return f.addErr
	}
	f.employees[eventID] = append(f.employees[eventID], ids...)
	return nil
}

// fakeTxManager runs fn directly and records whether the transaction would have committed.
type fakeTxManager struct {
	calls      int
	committed  int
	rolledBack int
	beginErr   error
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.beginErr != nil {
		return f.beginErr
	}
	if err := fn(ctx); err != nil {
		f.rolledBack++
		return err
	}
	f.committed++
	return nil
}

// fakeCredentialRepo holds at most one credential.
type fakeCredentialRepo struct {
	cred        *domain.Credential
	getErr      error
	updateErr   error
	lockedReads int
	updates     int
	createCalls int
}

func (f *fakeCredentialRepo) Get(_ context.Context) (*domain.Credential, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.cred == nil {
		return nil, domain.ErrNotFound
	}
	cp := *f.cred
	return &cp, nil
}

func (f *fakeCredentialRepo) GetForUpdate(ctx context.Context) (*domain.Credential, error) {
	f.lockedReads++
	return f.Get(ctx)
}

func (f *fakeCredentialRepo) CreateIfMissing(_ context.Context, c *domain.Credential) (bool, error) {
	f.createCalls++
	if f.cred != nil {
		return false, nil
	}
	cp := *c
	f.cred = &cp
	return true, nil
}

func (f *fakeCredentialRepo) Update(_ context.Context, c *domain.Credential) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.cred == nil {
		return domain.ErrNotFound
	}
	f.updates++
	cp := *c
	f.cred = &cp
	return nil
}
