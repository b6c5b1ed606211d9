package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// In-memory fakes for the outbound ports. They are concurrency-safe so the
// sweep tests can exercise concurrent runs.

type memUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[uuid.UUID]domain.User{}}
}

func (m *memUsers) add(wallet string) domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := domain.User{ID: uuid.New(), WalletAddress: wallet, CreatedAt: time.Now()}
	m.users[u.ID] = u
	return u
}

func (m *memUsers) GetByWallet(_ context.Context, wallet string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.WalletAddress == wallet {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		out := u
		return &out, nil
	}
	return nil, nil
}

func (m *memUsers) Upsert(_ context.Context, wallet string, username *string) (*domain.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, u := range m.users {
		if u.WalletAddress == wallet {
			if username != nil {
				u.Username = username
				m.users[id] = u
			}
			out := u
			return &out, false, nil
		}
	}
	u := domain.User{ID: uuid.New(), WalletAddress: wallet, Username: username, CreatedAt: time.Now()}
	m.users[u.ID] = u
	out := u
	return &out, true, nil
}

type memCampaigns struct {
	mu        sync.Mutex
	campaigns map[uuid.UUID]domain.Campaign
	users     *memUsers

	listActiveErr error
}

func newMemCampaigns(users *memUsers) *memCampaigns {
	return &memCampaigns{campaigns: map[uuid.UUID]domain.Campaign{}, users: users}
}

func (m *memCampaigns) put(c domain.Campaign) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.campaigns[c.ID] = c
}

func (m *memCampaigns) get(id uuid.UUID) domain.Campaign {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.campaigns[id]
}

func (m *memCampaigns) Create(_ context.Context, c domain.Campaign) (*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	m.campaigns[c.ID] = c
	out := c
	return &out, nil
}

func (m *memCampaigns) GetByID(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.campaigns[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

func (m *memCampaigns) Update(_ context.Context, c *domain.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *c
	stored.UpdatedAt = time.Now()
	m.campaigns[c.ID] = stored
	return nil
}

func (m *memCampaigns) List(_ context.Context, f port.CampaignFilter) ([]port.CampaignWithCreator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []port.CampaignWithCreator
	for _, c := range m.campaigns {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.CreatorID != nil && c.CreatorID != *f.CreatorID {
			continue
		}
		item := port.CampaignWithCreator{Campaign: c}
		if u, ok := m.users.users[c.CreatorID]; ok {
			item.CreatorWallet = u.WalletAddress
			item.CreatorUsername = u.Username
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *memCampaigns) ListByCreator(_ context.Context, creatorID uuid.UUID) ([]domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Campaign
	for _, c := range m.campaigns {
		if c.CreatorID == creatorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCampaigns) ListActive(_ context.Context) ([]domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listActiveErr != nil {
		return nil, m.listActiveErr
	}
	var out []domain.Campaign
	for _, c := range m.campaigns {
		if c.Status == domain.CampaignStatusActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCampaigns) ListDistributable(_ context.Context, endedBefore time.Time) ([]domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Campaign
	for _, c := range m.campaigns {
		if c.Status == domain.CampaignStatusEnded && !c.Distributed &&
			c.EndedAt != nil && !c.EndedAt.After(endedBefore) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCampaigns) EndIfActive(_ context.Context, id uuid.UUID, endedAt time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[id]
	if !ok || c.Status != domain.CampaignStatusActive {
		return false, nil
	}
	c.Status = domain.CampaignStatusEnded
	c.EndedAt = &endedAt
	c.UpdatedAt = time.Now()
	m.campaigns[id] = c
	return true, nil
}

func (m *memCampaigns) MarkDistributed(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[id]
	if !ok || c.Distributed {
		return false, nil
	}
	c.Distributed = true
	c.DistributedAt = &at
	c.UpdatedAt = time.Now()
	m.campaigns[id] = c
	return true, nil
}

type memSubmissions struct {
	mu          sync.Mutex
	submissions map[uuid.UUID]domain.Submission
	users       *memUsers
	campaigns   *memCampaigns

	updateErr map[uuid.UUID]error
}

func newMemSubmissions(users *memUsers, campaigns *memCampaigns) *memSubmissions {
	return &memSubmissions{
		submissions: map[uuid.UUID]domain.Submission{},
		users:       users,
		campaigns:   campaigns,
		updateErr:   map[uuid.UUID]error{},
	}
}

func (m *memSubmissions) put(s domain.Submission) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions[s.ID] = s
}

func (m *memSubmissions) get(id uuid.UUID) domain.Submission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissions[id]
}

func (m *memSubmissions) Create(_ context.Context, s domain.Submission) (*domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.submissions {
		if existing.CampaignID == s.CampaignID && existing.UserID == s.UserID && existing.VideoURL == s.VideoURL {
			return nil, port.ErrDuplicateSubmission
		}
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	m.submissions[s.ID] = s
	out := s
	return &out, nil
}

func (m *memSubmissions) List(_ context.Context, f port.SubmissionFilter) ([]port.SubmissionWithUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []port.SubmissionWithUser
	for _, s := range m.submissions {
		if f.CampaignID != nil && s.CampaignID != *f.CampaignID {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		item := port.SubmissionWithUser{Submission: s}
		if u, ok := m.users.users[s.UserID]; ok {
			item.SubmitterWallet = u.WalletAddress
			item.SubmitterUsername = u.Username
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *memSubmissions) ListByCampaign(_ context.Context, campaignID uuid.UUID) ([]domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Submission
	for _, s := range m.submissions {
		if s.CampaignID == campaignID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSubmissions) ListByUser(_ context.Context, userID uuid.UUID) ([]port.SubmissionWithCampaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []port.SubmissionWithCampaign
	for _, s := range m.submissions {
		if s.UserID != userID {
			continue
		}
		item := port.SubmissionWithCampaign{Submission: s}
		if c, ok := m.campaigns.campaigns[s.CampaignID]; ok {
			item.CampaignTitle = c.Title
			item.CampaignStatus = c.Status
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *memSubmissions) UpdateViews(_ context.Context, id uuid.UUID, viewCount int64, earnedAmount float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.updateErr[id]; err != nil {
		return err
	}
	s, ok := m.submissions[id]
	if !ok {
		return nil
	}
	s.ViewCount = viewCount
	s.EarnedAmount = earnedAmount
	s.UpdatedAt = time.Now()
	m.submissions[id] = s
	return nil
}

func (m *memSubmissions) SumViews(_ context.Context, campaignID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, s := range m.submissions {
		if s.CampaignID == campaignID {
			total += s.ViewCount
		}
	}
	return total, nil
}

func (m *memSubmissions) HasPayable(_ context.Context, campaignID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.submissions {
		if s.CampaignID == campaignID && s.Status == domain.SubmissionStatusApproved && s.EarnedAmount > 0 {
			return true, nil
		}
	}
	return false, nil
}

// stubViews serves canned view counts per video URL.
type stubViews struct {
	mu     sync.Mutex
	counts map[string]int64
	errs   map[string]error
	calls  int
}

func newStubViews() *stubViews {
	return &stubViews{counts: map[string]int64{}, errs: map[string]error{}}
}

func (s *stubViews) Views(_ context.Context, videoURL string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err := s.errs[videoURL]; err != nil {
		return 0, err
	}
	return s.counts[videoURL], nil
}
