//go:build unit

// Package memstore is an in-memory shared.UnitOfWork. Transactions are serialised and
// rolled back on error. The conditional claim and the partial unique indexes of the
// Postgres schema are reproduced so use cases can be tested without a database.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/candidate"
	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra"
	"candidate-assistance/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type resourceRow struct {
	id        uuid.UUID
	key       resource.Key
	code      resource.Code
	status    resource.Status
	expiresAt *time.Time
	sentAt    *time.Time
	createdAt time.Time
	seq       int
}

type assignmentRow struct {
	id          uuid.UUID
	key         resource.Key
	resourceID  uuid.UUID
	candidateID uuid.UUID
	actorID     uuid.UUID
	status      assignment.Status
	assignedAt  time.Time
	seq         int
}

// Job is a recorded notification job.
type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type state struct {
	resources   map[uuid.UUID]resourceRow
	assignments []assignmentRow
	jobs        []Job
	seq         int
}

func (s *state) clone() *state {
	cp := &state{
		resources:   make(map[uuid.UUID]resourceRow, len(s.resources)),
		assignments: append([]assignmentRow(nil), s.assignments...),
		jobs:        append([]Job(nil), s.jobs...),
		seq:         s.seq,
	}
	for k, v := range s.resources {
		cp.resources[k] = v
	}
	return cp
}

type savedList struct {
	list    *candidate.SavedList
	members []uuid.UUID
}

type Store struct {
	mu         sync.RWMutex
	state      *state
	candidates map[uuid.UUID]*candidate.Candidate
	lists      map[uuid.UUID]savedList

	// BeforeCommit, when set, runs inside every transaction after fn succeeded.
	// Returning an error rolls the transaction back.
	BeforeCommit func() error
}

func New() *Store {
	return &Store{
		state:      &state{resources: map[uuid.UUID]resourceRow{}},
		candidates: map[uuid.UUID]*candidate.Candidate{},
		lists:      map[uuid.UUID]savedList{},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	tx := &memTx{store: s, st: work}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if s.BeforeCommit != nil {
		if err := s.BeforeCommit(); err != nil {
			return err
		}
	}
	s.state = work
	return nil
}

func (s *Store) Reads() shared.Reads {
	return &memReads{store: s, locked: false}
}

// Seeding helpers

func (s *Store) AddCandidate(number, email string) *candidate.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := candidate.Reconstruct(uuid.New(), number, email, "Candidate "+number)
	s.candidates[c.ID()] = c
	return c
}

func (s *Store) AddSavedList(name string, members ...*candidate.Candidate) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.ID()
	}
	s.lists[id] = savedList{list: candidate.ReconstructSavedList(id, name), members: ids}
	return id
}

func (s *Store) AddResource(key resource.Key, code string, status resource.Status, expiresAt *time.Time) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.seq++
	row := resourceRow{
		id:        uuid.New(),
		key:       key,
		code:      resource.Code(code),
		status:    status,
		expiresAt: expiresAt,
		createdAt: time.Now(),
		seq:       s.state.seq,
	}
	s.state.resources[row.id] = row
	return row.id
}

// Inspection helpers

func (s *Store) ResourceStatus(id uuid.UUID) resource.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.resources[id].status
}

func (s *Store) CountResources(key resource.Key, status resource.Status) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.state.resources {
		if r.key == key && r.status == status {
			n++
		}
	}
	return n
}

func (s *Store) CountAssignments(candidateID uuid.UUID, key resource.Key, status assignment.Status) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, a := range s.state.assignments {
		if a.candidateID == candidateID && a.key == key && a.status == status {
			n++
		}
	}
	return n
}

func (s *Store) TotalAssignments() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.assignments)
}

func (s *Store) Jobs() []Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Job(nil), s.state.jobs...)
}

// LedgerSnapshot is a comparable view of the ledger and pool.
type LedgerSnapshot struct {
	Resources   map[string]resource.Status
	Assignments []string
}

func (s *Store) Snapshot() LedgerSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := LedgerSnapshot{Resources: map[string]resource.Status{}}
	for _, r := range s.state.resources {
		snap.Resources[r.key.String()+"/"+r.code.String()] = r.status
	}
	for _, a := range s.state.assignments {
		snap.Assignments = append(snap.Assignments, a.id.String()+":"+string(a.status))
	}
	return snap
}

var errUniqueViolation = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}

var errForeignKeyViolation = &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}

type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Resources() shared.ServiceResourceRepository     { return &memResources{t: t} }
func (t *memTx) Assignments() shared.ServiceAssignmentRepository { return &memAssignments{t: t} }
func (t *memTx) Notifications() shared.NotificationRepository   { return &memNotifications{t: t} }
func (t *memTx) Reads() shared.Reads                             { return &memReads{store: t.store, st: t.st, locked: true} }

type memResources struct{ t *memTx }

func (r *memResources) Create(_ context.Context, res *resource.ServiceResource) (uuid.UUID, error) {
	for _, row := range r.t.st.resources {
		if row.key.Provider == res.Provider() && row.code == res.Code() {
			return uuid.Nil, infra.WrapRepoErr("failed to create service resource", errUniqueViolation)
		}
	}
	r.t.st.seq++
	row := resourceRow{
		id:        uuid.New(),
		key:       res.Key(),
		code:      res.Code(),
		status:    res.Status(),
		expiresAt: res.ExpiresAt(),
		sentAt:    res.SentAt(),
		createdAt: time.Now(),
		seq:       r.t.st.seq,
	}
	r.t.st.resources[row.id] = row
	return row.id, nil
}

func (r *memResources) PickAvailable(_ context.Context, key resource.Key, now time.Time) (*resource.ServiceResource, error) {
	var candidates []resourceRow
	for _, row := range r.t.st.resources {
		if row.key == key && row.status == resource.StatusAvailable && (row.expiresAt == nil || row.expiresAt.After(now)) {
			candidates = append(candidates, row)
		}
	}
	if len(candidates) == 0 {
		return nil, infra.WrapRepoErr("no available service resource", pgx.ErrNoRows, infra.KindNotFound)
	}
	sortByExpiry(candidates)
	return toResource(candidates[0]), nil
}

func (r *memResources) Claim(_ context.Context, resourceID uuid.UUID, sentAt time.Time) (bool, error) {
	row, ok := r.t.st.resources[resourceID]
	if !ok || row.status != resource.StatusAvailable {
		return false, nil
	}
	row.status = resource.StatusAssigned
	row.sentAt = &sentAt
	r.t.st.resources[resourceID] = row
	return true, nil
}

func (r *memResources) Disable(_ context.Context, resourceID uuid.UUID) error {
	row, ok := r.t.st.resources[resourceID]
	if !ok {
		return infra.WrapRepoErr("service resource not found", nil, infra.KindNotFound)
	}
	row.status = resource.StatusDisabled
	r.t.st.resources[resourceID] = row
	return nil
}

func (r *memResources) UpdateStatus(_ context.Context, provider resource.Provider, code resource.Code, status resource.Status) (bool, error) {
	for id, row := range r.t.st.resources {
		if row.key.Provider == provider && row.code == code {
			row.status = status
			r.t.st.resources[id] = row
			return true, nil
		}
	}
	return false, nil
}

func (r *memResources) ExpireOverdue(_ context.Context, key resource.Key, now time.Time) ([]*resource.ServiceResource, error) {
	var expired []resourceRow
	for id, row := range r.t.st.resources {
		if row.key != key || row.expiresAt == nil || !row.expiresAt.Before(now) {
			continue
		}
		switch row.status {
		case resource.StatusExpired, resource.StatusRedeemed, resource.StatusDisabled:
			continue
		}
		row.status = resource.StatusExpired
		r.t.st.resources[id] = row
		expired = append(expired, row)
	}
	sortByExpiry(expired)
	out := make([]*resource.ServiceResource, len(expired))
	for i, row := range expired {
		out[i] = toResource(row)
	}
	return out, nil
}

type memAssignments struct{ t *memTx }

func (a *memAssignments) Create(_ context.Context, sa *assignment.ServiceAssignment) (uuid.UUID, error) {
	if _, ok := a.t.st.resources[sa.Resource().ID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("failed to create service assignment", errForeignKeyViolation)
	}
	if _, ok := a.t.store.candidates[sa.CandidateID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("failed to create service assignment", errForeignKeyViolation)
	}
	if sa.IsActive() {
		for _, row := range a.t.st.assignments {
			if row.status != assignment.StatusAssigned {
				continue
			}
			sameSlot := row.candidateID == sa.CandidateID() && row.key == sa.Resource().Key()
			if sameSlot || row.resourceID == sa.Resource().ID() {
				return uuid.Nil, infra.WrapRepoErr("failed to create service assignment", errUniqueViolation)
			}
		}
	}

	a.t.st.seq++
	row := assignmentRow{
		id:          uuid.New(),
		key:         sa.Resource().Key(),
		resourceID:  sa.Resource().ID(),
		candidateID: sa.CandidateID(),
		actorID:     sa.ActorID(),
		status:      sa.Status(),
		assignedAt:  sa.AssignedAt(),
		seq:         a.t.st.seq,
	}
	a.t.st.assignments = append(a.t.st.assignments, row)
	return row.id, nil
}

func (a *memAssignments) LockActiveForCandidate(_ context.Context, candidateID uuid.UUID, key resource.Key) ([]*assignment.ServiceAssignment, error) {
	var out []*assignment.ServiceAssignment
	for _, row := range a.t.st.assignments {
		if row.candidateID == candidateID && row.key == key && row.status == assignment.StatusAssigned {
			out = append(out, toAssignment(row, a.t.st))
		}
	}
	return out, nil
}

func (a *memAssignments) MarkReassigned(_ context.Context, assignmentID uuid.UUID) (bool, error) {
	for i, row := range a.t.st.assignments {
		if row.id == assignmentID && row.status == assignment.StatusAssigned {
			a.t.st.assignments[i].status = assignment.StatusReassigned
			return true, nil
		}
	}
	return false, nil
}

type memNotifications struct{ t *memTx }

func (n *memNotifications) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	n.t.st.jobs = append(n.t.st.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

// memReads reads the committed state, or the transaction's working state when locked.
type memReads struct {
	store  *Store
	st     *state
	locked bool
}

func (r *memReads) view(fn func(st *state)) {
	if r.locked {
		fn(r.st)
		return
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	fn(r.store.state)
}

func (r *memReads) CandidateByID(_ context.Context, id uuid.UUID) (*candidate.Candidate, error) {
	var c *candidate.Candidate
	r.view(func(*state) { c = r.store.candidates[id] })
	if c == nil {
		return nil, infra.WrapRepoErr("candidate not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return c, nil
}

func (r *memReads) CandidateByNumber(_ context.Context, number string) (*candidate.Candidate, error) {
	var found *candidate.Candidate
	r.view(func(*state) {
		for _, c := range r.store.candidates {
			if c.Number() == number {
				found = c
				return
			}
		}
	})
	if found == nil {
		return nil, infra.WrapRepoErr("candidate not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return found, nil
}

func (r *memReads) SavedListByID(_ context.Context, id uuid.UUID) (*candidate.SavedList, error) {
	var l savedList
	var ok bool
	r.view(func(*state) { l, ok = r.store.lists[id] })
	if !ok {
		return nil, infra.WrapRepoErr("saved list not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return l.list, nil
}

func (r *memReads) SavedListCandidates(_ context.Context, listID uuid.UUID) ([]*candidate.Candidate, error) {
	var out []*candidate.Candidate
	r.view(func(*state) {
		for _, id := range r.store.lists[listID].members {
			out = append(out, r.store.candidates[id])
		}
	})
	return out, nil
}

func (r *memReads) ResourceByCode(_ context.Context, provider resource.Provider, code resource.Code) (*resource.ServiceResource, error) {
	var found *resource.ServiceResource
	r.view(func(st *state) {
		for _, row := range st.resources {
			if row.key.Provider == provider && row.code == code {
				found = toResource(row)
				return
			}
		}
	})
	if found == nil {
		return nil, infra.WrapRepoErr("service resource not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return found, nil
}

func (r *memReads) ResourceExists(ctx context.Context, provider resource.Provider, code resource.Code) (bool, error) {
	_, err := r.ResourceByCode(ctx, provider, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *memReads) AvailableResources(_ context.Context, key resource.Key) ([]*resource.ServiceResource, error) {
	var rows []resourceRow
	r.view(func(st *state) {
		for _, row := range st.resources {
			if row.key == key && row.status == resource.StatusAvailable {
				rows = append(rows, row)
			}
		}
	})
	sortByExpiry(rows)
	out := make([]*resource.ServiceResource, len(rows))
	for i, row := range rows {
		out[i] = toResource(row)
	}
	return out, nil
}

func (r *memReads) CountAvailableByProvider(_ context.Context, provider resource.Provider) (int64, error) {
	var n int64
	r.view(func(st *state) {
		for _, row := range st.resources {
			if row.key.Provider == provider && row.status == resource.StatusAvailable {
				n++
			}
		}
	})
	return n, nil
}

func (r *memReads) CountAvailable(_ context.Context, key resource.Key) (int64, error) {
	var n int64
	r.view(func(st *state) {
		for _, row := range st.resources {
			if row.key == key && row.status == resource.StatusAvailable {
				n++
			}
		}
	})
	return n, nil
}

func (r *memReads) AssignmentsForCandidate(_ context.Context, candidateID uuid.UUID, key resource.Key) ([]*assignment.ServiceAssignment, error) {
	var out []*assignment.ServiceAssignment
	r.view(func(st *state) {
		rows := make([]assignmentRow, 0)
		for _, row := range st.assignments {
			if row.candidateID == candidateID && row.key == key {
				rows = append(rows, row)
			}
		}
		sort.SliceStable(rows, func(i, j int) bool {
			if !rows[i].assignedAt.Equal(rows[j].assignedAt) {
				return rows[i].assignedAt.Before(rows[j].assignedAt)
			}
			return rows[i].seq < rows[j].seq
		})
		for _, row := range rows {
			out = append(out, toAssignment(row, st))
		}
	})
	return out, nil
}

func (r *memReads) LatestCandidateIDForResource(_ context.Context, key resource.Key, resourceID uuid.UUID) (uuid.UUID, error) {
	var latest *assignmentRow
	r.view(func(st *state) {
		for i, row := range st.assignments {
			if row.key != key || row.resourceID != resourceID {
				continue
			}
			if latest == nil || row.assignedAt.After(latest.assignedAt) || (row.assignedAt.Equal(latest.assignedAt) && row.seq > latest.seq) {
				latest = &st.assignments[i]
			}
		}
	})
	if latest == nil {
		return uuid.Nil, infra.WrapRepoErr("resource was never assigned", pgx.ErrNoRows, infra.KindNotFound)
	}
	return latest.candidateID, nil
}

func sortByExpiry(rows []resourceRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].expiresAt, rows[j].expiresAt
		switch {
		case a != nil && b != nil && !a.Equal(*b):
			return a.Before(*b)
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return rows[i].seq < rows[j].seq
	})
}

func toResource(row resourceRow) *resource.ServiceResource {
	return resource.Reconstruct(row.id, row.key.Provider, row.key.ServiceCode, row.code, row.status, row.expiresAt, row.sentAt, row.createdAt)
}

func toAssignment(row assignmentRow, st *state) *assignment.ServiceAssignment {
	return assignment.Reconstruct(row.id, toResource(st.resources[row.resourceID]), row.candidateID, row.actorID, row.status, row.assignedAt)
}
