package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"candidate-assistance/internal/domain/assignment"
	"candidate-assistance/internal/domain/candidate"
	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra/readstore"
	"candidate-assistance/internal/infra/repository"
	sqlc "candidate-assistance/internal/infra/sqlc/generated"
	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxBeginner is the part of *pgxpool.Pool the unit of work needs.
type TxBeginner interface {
	sqlc.DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool   TxBeginner
	q      *sqlc.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) shared.UnitOfWork {
	return newPostgresUoW(pool, q, logger)
}

func newPostgresUoW(pool TxBeginner, q *sqlc.Queries, logger *slog.Logger) *PostgresUoW {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Claims and row locks provide the stronger guarantees where needed.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.Reads {
	return newReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	resourceRepo     shared.ServiceResourceRepository
	assignmentRepo   shared.ServiceAssignmentRepository
	notificationRepo shared.NotificationRepository
	reads            shared.Reads
}

func (t *pgTx) Resources() shared.ServiceResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewServiceResourceRepository(t.uow.q, t.dbtx)
	}
	return t.resourceRepo
}

func (t *pgTx) Assignments() shared.ServiceAssignmentRepository {
	if t.assignmentRepo == nil {
		t.assignmentRepo = repository.NewServiceAssignmentRepository(t.uow.q, t.dbtx)
	}
	return t.assignmentRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.Reads {
	if t.reads == nil {
		t.reads = newReads(t.uow.q, t.dbtx)
	}
	return t.reads
}

// reads binds the readstores to one connection or transaction.
type reads struct {
	dbtx        sqlc.DBTX
	candidates  *readstore.CandidateReadStore
	resources   *readstore.ServiceResourceReadStore
	assignments *readstore.ServiceAssignmentReadStore
}

func newReads(q *sqlc.Queries, dbtx sqlc.DBTX) *reads {
	return &reads{
		dbtx:        dbtx,
		candidates:  readstore.NewCandidateReadStore(q),
		resources:   readstore.NewServiceResourceReadStore(q),
		assignments: readstore.NewServiceAssignmentReadStore(q),
	}
}

func (r *reads) CandidateByID(ctx context.Context, id uuid.UUID) (*candidate.Candidate, error) {
	return r.candidates.FindByID(ctx, r.dbtx, id)
}

func (r *reads) CandidateByNumber(ctx context.Context, number string) (*candidate.Candidate, error) {
	return r.candidates.FindByNumber(ctx, r.dbtx, number)
}

func (r *reads) SavedListByID(ctx context.Context, id uuid.UUID) (*candidate.SavedList, error) {
	return r.candidates.FindSavedList(ctx, r.dbtx, id)
}

func (r *reads) SavedListCandidates(ctx context.Context, listID uuid.UUID) ([]*candidate.Candidate, error) {
	return r.candidates.FindSavedListCandidates(ctx, r.dbtx, listID)
}

func (r *reads) ResourceByCode(ctx context.Context, provider resource.Provider, code resource.Code) (*resource.ServiceResource, error) {
	return r.resources.FindByCode(ctx, r.dbtx, provider, code)
}

func (r *reads) ResourceExists(ctx context.Context, provider resource.Provider, code resource.Code) (bool, error) {
	return r.resources.Exists(ctx, r.dbtx, provider, code)
}

func (r *reads) AvailableResources(ctx context.Context, key resource.Key) ([]*resource.ServiceResource, error) {
	return r.resources.FindAvailable(ctx, r.dbtx, key)
}

func (r *reads) CountAvailableByProvider(ctx context.Context, provider resource.Provider) (int64, error) {
	return r.resources.CountAvailableByProvider(ctx, r.dbtx, provider)
}

func (r *reads) CountAvailable(ctx context.Context, key resource.Key) (int64, error) {
	return r.resources.CountAvailable(ctx, r.dbtx, key)
}

func (r *reads) AssignmentsForCandidate(ctx context.Context, candidateID uuid.UUID, key resource.Key) ([]*assignment.ServiceAssignment, error) {
	return r.assignments.FindForCandidate(ctx, r.dbtx, candidateID, key)
}

func (r *reads) LatestCandidateIDForResource(ctx context.Context, key resource.Key, resourceID uuid.UUID) (uuid.UUID, error) {
	return r.assignments.LatestCandidateID(ctx, r.dbtx, key, resourceID)
}
