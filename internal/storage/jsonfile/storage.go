package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	domainErrors "github.com/mkorobko/orderbot/internal/domain/errors"
	"github.com/mkorobko/orderbot/internal/domain/model"
)

// Store keeps the order collection in a single JSON array file.
//
// Every mutation rewrites the whole file, so all operations hold one
// store-wide mutex for the duration of their read-modify-write.
type Store struct {
	path   string
	logger *slog.Logger

	mu sync.Mutex
}

// New creates a store over the given file. The file may not exist yet;
// it appears on first write.
func New(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// List returns every stored order in insertion order.
func (s *Store) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, _, err := s.loadLocked()
	return orders, err
}

// Append assigns the next order number, stamps the initial status and
// persists the rewritten collection.
func (s *Store) Append(ctx context.Context, draft model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, records, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	draft.Number = len(orders) + 1
	draft.Status = model.StatusCollecting

	records = append(records, encodeOrder(draft))
	if err := s.saveLocked(records); err != nil {
		return nil, err
	}
	return &draft, nil
}

// UpdateStatus overwrites the status of the order with the given number.
func (s *Store) UpdateStatus(ctx context.Context, number int, status model.OrderStatus) (*model.Order, error) {
	return s.mutateStatus(number, func(model.OrderStatus) model.OrderStatus { return status })
}

// AdvanceStatus moves the order to the next status in the cycle. Safe to
// call repeatedly: the transition is defined for every current status.
func (s *Store) AdvanceStatus(ctx context.Context, number int) (*model.Order, error) {
	return s.mutateStatus(number, model.OrderStatus.Next)
}

// ListByUser filters orders by owner preserving insertion order, optionally
// hiding one status.
func (s *Store) ListByUser(ctx context.Context, userID int64, exclude model.OrderStatus) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, _, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID != userID {
			continue
		}
		if exclude != "" && o.Status == exclude {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered, nil
}

func (s *Store) mutateStatus(number int, next func(model.OrderStatus) model.OrderStatus) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, records, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].Number != number {
			continue
		}
		orders[i].Status = next(orders[i].Status)
		records[i].Status = string(orders[i].Status)
		if err := s.saveLocked(records); err != nil {
			return nil, err
		}
		updated := orders[i]
		return &updated, nil
	}
	return nil, domainErrors.ErrNotFound
}

// loadLocked reads the collection. A missing file is an empty collection.
// Raw records are returned alongside the decoded orders so a rewrite keeps
// legacy encodings byte-compatible.
func (s *Store) loadLocked() ([]model.Order, []orderRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		s.logger.Error("read order file failed",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return nil, nil, fmt.Errorf("%w: read orders: %v", domainErrors.ErrStorageUnavailable, err)
	}

	var records []orderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Error("decode order file failed",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return nil, nil, fmt.Errorf("%w: decode orders: %v", domainErrors.ErrStorageUnavailable, err)
	}

	orders := make([]model.Order, 0, len(records))
	for _, rec := range records {
		order, err := decodeOrder(rec)
		if err != nil {
			s.logger.Error("corrupt order record",
				slog.String("path", s.path),
				slog.String("error", err.Error()),
			)
			return nil, nil, fmt.Errorf("%w: %v", domainErrors.ErrStorageUnavailable, err)
		}
		orders = append(orders, order)
	}
	return orders, records, nil
}

// saveLocked rewrites the collection atomically: the new content goes to a
// temp file in the same directory and replaces the old file via rename.
func (s *Store) saveLocked(records []orderRecord) error {
	if records == nil {
		records = []orderRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode orders: %v", domainErrors.ErrStorageUnavailable, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".orders-*.json")
	if err != nil {
		s.logger.Error("create temp order file failed",
			slog.String("dir", dir),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: write orders: %v", domainErrors.ErrStorageUnavailable, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write orders: %v", domainErrors.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write orders: %v", domainErrors.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		s.logger.Error("replace order file failed",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: replace orders: %v", domainErrors.ErrStorageUnavailable, err)
	}
	return nil
}
