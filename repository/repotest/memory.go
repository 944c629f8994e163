// Package repotest provides in-memory repositories for handler and router tests.
package repotest

import (
	"context"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/repository"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[models.ID]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[models.ID]models.User)}
}

func (s *UserStore) CreateUser(_ context.Context, user *models.User) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return models.ID{}, repository.ErrEmailExists
		}
	}
	user.ID = models.NewID()
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return user.ID, nil
}

func (s *UserStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *UserStore) FindUserByID(_ context.Context, id models.ID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type QRCodeStore struct {
	mu      sync.RWMutex
	seq     int
	qrCodes map[models.ID]storedQRCode
}

type storedQRCode struct {
	seq int
	qr  models.QRCode
}

func NewQRCodeStore() *QRCodeStore {
	return &QRCodeStore{qrCodes: make(map[models.ID]storedQRCode)}
}

func (s *QRCodeStore) SaveQRCode(_ context.Context, qrCode *models.QRCode) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qrCode.ID = models.NewID()
	qrCode.CreatedAt = time.Now().UTC()
	s.seq++
	s.qrCodes[qrCode.ID] = storedQRCode{seq: s.seq, qr: *qrCode}
	return qrCode.ID, nil
}

func (s *QRCodeStore) FindQRCodesByOwner(_ context.Context, ownerID models.ID) ([]models.QRCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var owned []storedQRCode
	for _, stored := range s.qrCodes {
		if stored.qr.UserID == ownerID {
			owned = append(owned, stored)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].seq > owned[j].seq })

	qrCodes := make([]models.QRCode, 0, len(owned))
	for _, stored := range owned {
		qrCodes = append(qrCodes, stored.qr)
	}
	return qrCodes, nil
}

func (s *QRCodeStore) DeleteQRCode(_ context.Context, id, ownerID models.ID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.qrCodes[id]
	if !ok || stored.qr.UserID != ownerID {
		return 0, nil
	}
	delete(s.qrCodes, id)
	return 1, nil
}

// Get looks a code up without an owner filter.
func (s *QRCodeStore) Get(id models.ID) (models.QRCode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.qrCodes[id]
	return stored.qr, ok
}

// ScanStore counts per owner through the QRCodeStore it was built with.
type ScanStore struct {
	mu      sync.RWMutex
	scans   []models.Scan
	qrCodes *QRCodeStore
}

func NewScanStore(qrCodes *QRCodeStore) *ScanStore {
	return &ScanStore{qrCodes: qrCodes}
}

func (s *ScanStore) RecordScan(_ context.Context, scan *models.Scan) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scan.ID = models.NewID()
	if scan.Timestamp.IsZero() {
		scan.Timestamp = time.Now().UTC()
	}
	s.scans = append(s.scans, *scan)
	return scan.ID, nil
}

func (s *ScanStore) FindScansByQRCode(_ context.Context, qrCodeID models.ID) ([]models.Scan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scans := []models.Scan{}
	for _, scan := range s.scans {
		if scan.QRCodeID == qrCodeID {
			scans = append(scans, scan)
		}
	}
	return scans, nil
}

func (s *ScanStore) CountScansByOwner(_ context.Context, ownerID models.ID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, scan := range s.scans {
		if qr, ok := s.qrCodes.Get(scan.QRCodeID); ok && qr.UserID == ownerID {
			total++
		}
	}
	return total, nil
}

type LogoStore struct {
	mu    sync.RWMutex
	files map[models.ID]repository.LogoFile
}

func NewLogoStore() *LogoStore {
	return &LogoStore{files: make(map[models.ID]repository.LogoFile)}
}

func (s *LogoStore) UploadLogo(_ context.Context, filename, contentType string, r io.Reader) (models.ID, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.ID{}, err
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := models.NewID()
	s.files[id] = repository.LogoFile{Name: filename, ContentType: contentType, Data: data}
	return id, nil
}

func (s *LogoStore) OpenLogo(_ context.Context, id models.ID) (*repository.LogoFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, ok := s.files[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &file, nil
}

func (s *LogoStore) DeleteLogo(_ context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.files, id)
	return nil
}

func (s *LogoStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

var (
	_ repository.UserRepository   = (*UserStore)(nil)
	_ repository.QRCodeRepository = (*QRCodeStore)(nil)
	_ repository.ScanRepository   = (*ScanStore)(nil)
	_ repository.LogoRepository   = (*LogoStore)(nil)
)
