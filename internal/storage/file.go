package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

// fileRecord is the on-disk row shape: one record per (user, feature).
type fileRecord struct {
	UserID  string          `json:"user_id"`
	Feature string          `json:"feature"`
	Payload json.RawMessage `json:"payload"`
}

// FileStore keeps all records in memory and flushes them to a single JSON
// file through a debounced background worker, so bursts of writes from
// several cards cost one disk write.
type FileStore struct {
	records   map[string]map[string]json.RawMessage // userID -> feature -> payload
	mu        sync.RWMutex
	path      string
	saveChan  chan struct{}
	shutdown  chan struct{}
	saveDelay time.Duration
	logger    internal.Logger
}

func NewFileStore(path string, logger internal.Logger) (*FileStore, error) {
	s := &FileStore{
		records:   make(map[string]map[string]json.RawMessage),
		path:      path,
		saveChan:  make(chan struct{}, 1),
		shutdown:  make(chan struct{}),
		saveDelay: 500 * time.Millisecond,
		logger:    logger,
	}

	if err := s.load(); err != nil {
		logger.Errorf("storage: failed to load records: %v", err)
		return nil, err
	}

	go s.saveWorker()

	return s, nil
}

func (s *FileStore) load() error {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var rows []fileRecord
	if err := json.NewDecoder(file).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		if s.records[r.UserID] == nil {
			s.records[r.UserID] = make(map[string]json.RawMessage)
		}
		s.records[r.UserID][r.Feature] = r.Payload
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStore) save() error {
	s.mu.RLock()
	rows := make([]fileRecord, 0, len(s.records))
	for userID, features := range s.records {
		for feature, payload := range features {
			rows = append(rows, fileRecord{UserID: userID, Feature: feature, Payload: payload})
		}
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.path, rows)
}

// saveWorker batches flushes to avoid a disk write per mutation.
func (s *FileStore) saveWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.save(); err != nil {
				s.logger.Errorf("storage: error saving records: %v", err)
			}
		case <-s.shutdown:
			return
		}
	}
}

func (s *FileStore) signalSave() {
	select {
	case s.saveChan <- struct{}{}:
	default:
	}
}

func (s *FileStore) Get(ctx context.Context, userID, feature string) (json.RawMessage, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	features, ok := s.records[userID]
	if !ok {
		return nil, false, nil
	}
	payload, ok := features[feature]
	if !ok || !json.Valid(payload) {
		return nil, false, nil
	}
	return payload, true, nil
}

func (s *FileStore) Put(ctx context.Context, userID, feature string, value json.RawMessage) error {
	s.mu.Lock()
	if s.records[userID] == nil {
		s.records[userID] = make(map[string]json.RawMessage)
	}
	s.records[userID][feature] = value
	s.mu.Unlock()

	s.signalSave()
	return nil
}

func (s *FileStore) Delete(ctx context.Context, userID, feature string) error {
	s.mu.Lock()
	if features, ok := s.records[userID]; ok {
		delete(features, feature)
	}
	s.mu.Unlock()

	s.signalSave()
	return nil
}

// Close stops the worker and flushes pending records synchronously.
func (s *FileStore) Close() error {
	close(s.shutdown)
	return s.save()
}

var _ RecordStore = (*FileStore)(nil)
