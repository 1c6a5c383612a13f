package reviewservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/pkg/auth"
	"github.com/GlebRadaev/paytrace/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	UpdateNFT(ctx context.Context, reviewID, txHash, explorerURL, assetCode, documentCID string) error
	ListFor(ctx context.Context, revieweeID string) ([]domain.Review, error)
	ListBy(ctx context.Context, reviewerID string) ([]domain.Review, error)
	AverageRating(ctx context.Context, workerID string) (float64, int, error)
}

type Relationships interface {
	GetByID(ctx context.Context, scheduleID string) (*domain.Schedule, error)
	FindRelationship(ctx context.Context, a, b string, scheduleID *string, startedBefore time.Time) (*domain.Relationship, error)
	Counterparties(ctx context.Context, userID string, startedBefore time.Time) ([]domain.EligibleReviewee, error)
}

type Workers interface {
	FindByWorkerID(ctx context.Context, workerID string) (*domain.Worker, error)
}

type Minter interface {
	MintReviewCertificate(ctx context.Context, req domain.CertificateRequest) (*domain.Certificate, error)
	ReviewCertificates(ctx context.Context, key string) ([]domain.Certificate, error)
}

type Pinner interface {
	Pin(ctx context.Context, name string, data []byte) (string, error)
}

type Dispatcher interface {
	Go(name string, task func(ctx context.Context) error) bool
}

type Tokens interface {
	Issue(scheduleID, reviewerID string) (string, time.Time, error)
	Parse(token string) (*auth.InviteClaims, error)
}

type Notifier interface {
	Notify(phone, text string)
}

type Config struct {
	EligibilityDays int
	InviteBaseURL   string
}

type Service struct {
	repo          Repo
	relationships Relationships
	workers       Workers
	minter        Minter
	pinner        Pinner
	dispatcher    Dispatcher
	tokens        Tokens
	notifier      Notifier
	cfg           Config
	now           func() time.Time
}

func New(repo Repo, relationships Relationships, workers Workers, minter Minter, pinner Pinner,
	dispatcher Dispatcher, tokens Tokens, notifier Notifier, cfg Config) *Service {
	return &Service{
		repo:          repo,
		relationships: relationships,
		workers:       workers,
		minter:        minter,
		pinner:        pinner,
		dispatcher:    dispatcher,
		tokens:        tokens,
		notifier:      notifier,
		cfg:           cfg,
		now:           time.Now,
	}
}

// cutoff is the latest start a relationship may have and still qualify for a review.
func (s *Service) cutoff() time.Time {
	return s.now().UTC().AddDate(0, 0, -s.cfg.EligibilityDays)
}

func (s *Service) worker(ctx context.Context, id string) (*domain.Worker, error) {
	w, err := s.workers.FindByWorkerID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.NewNotFoundError("worker", id)
	}
	return w, nil
}

type SubmitParams struct {
	ReviewerID string
	RevieweeID string
	Rating     int
	Comment    string
	ScheduleID *string
}

// Submit stores a review and mints its certificate in the background.
// Minting never affects the outcome; a review without a certificate is still a review.
func (s *Service) Submit(ctx context.Context, p SubmitParams) (*domain.Review, error) {
	if p.Rating < 1 || p.Rating > 5 {
		return nil, domain.NewValidationError("rating", "must be between 1 and 5")
	}
	if p.ReviewerID == p.RevieweeID {
		return nil, domain.NewValidationError("reviewee_id", "must differ from the reviewer")
	}

	reviewer, err := s.worker(ctx, p.ReviewerID)
	if err != nil {
		return nil, err
	}
	reviewee, err := s.worker(ctx, p.RevieweeID)
	if err != nil {
		return nil, err
	}
	if reviewer.Role == reviewee.Role {
		return nil, fmt.Errorf("%w: reviews go between a worker and an employer", domain.ErrNotEligible)
	}

	rel, err := s.relationships.FindRelationship(ctx, reviewer.WorkerID, reviewee.WorkerID, p.ScheduleID, s.cutoff())
	if err != nil {
		return nil, err
	}
	if rel == nil {
		return nil, fmt.Errorf("%w: no schedule of at least %d days between %s and %s",
			domain.ErrNotEligible, s.cfg.EligibilityDays, reviewer.WorkerID, reviewee.WorkerID)
	}

	review, err := s.repo.Create(ctx, &domain.Review{
		ReviewID:     domain.NewID(domain.ReviewPrefix),
		ReviewerID:   reviewer.WorkerID,
		RevieweeID:   reviewee.WorkerID,
		ReviewerRole: reviewer.Role,
		Rating:       p.Rating,
		Comment:      strings.TrimSpace(p.Comment),
		ScheduleID:   &rel.ScheduleID,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("review submitted", zap.String("review_id", review.ReviewID), zap.Int("rating", review.Rating))

	stored := *review
	s.dispatcher.Go("mint review certificate", func(ctx context.Context) error {
		return s.mint(ctx, &stored, reviewer, reviewee, rel)
	})
	return review, nil
}

type reviewDocument struct {
	ReviewID     string      `json:"review_id"`
	ReviewerID   string      `json:"reviewer_id"`
	RevieweeID   string      `json:"reviewee_id"`
	ReviewerRole domain.Role `json:"reviewer_role"`
	Rating       int         `json:"rating"`
	Comment      string      `json:"comment"`
	ScheduleID   string      `json:"schedule_id"`
	Duration     string      `json:"duration"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (s *Service) mint(ctx context.Context, review *domain.Review, reviewer, reviewee *domain.Worker, rel *domain.Relationship) error {
	duration := s.duration(rel)
	doc, err := json.Marshal(reviewDocument{
		ReviewID:     review.ReviewID,
		ReviewerID:   review.ReviewerID,
		RevieweeID:   review.RevieweeID,
		ReviewerRole: review.ReviewerRole,
		Rating:       review.Rating,
		Comment:      review.Comment,
		ScheduleID:   rel.ScheduleID,
		Duration:     duration,
		CreatedAt:    review.CreatedAt,
	})
	if err != nil {
		return err
	}

	pointer, err := s.pinner.Pin(ctx, review.ReviewID+".json", doc)
	if err != nil {
		zap.L().Info("review document not pinned, using review id", zap.String("review_id", review.ReviewID), zap.Error(err))
		pointer = review.ReviewID
	}

	cert, err := s.minter.MintReviewCertificate(ctx, domain.CertificateRequest{
		Reviewee:     reviewee.PublicKey,
		ReviewerID:   reviewer.WorkerID,
		ReviewerRole: reviewer.Role,
		RevieweeRole: reviewee.Role,
		Rating:       review.Rating,
		Duration:     duration,
		DocumentCID:  pointer,
		Seed:         review.ReviewID + "|" + reviewer.WorkerID + "|" + strconv.FormatInt(review.CreatedAt.Unix(), 10),
	})
	if err != nil {
		return fmt.Errorf("mint certificate for %s: %w", review.ReviewID, err)
	}
	return s.repo.UpdateNFT(ctx, review.ReviewID, cert.TxHash, cert.ExplorerURL, cert.AssetCode, pointer)
}

func (s *Service) duration(rel *domain.Relationship) string {
	end := s.now()
	if rel.EndedAt != nil {
		end = *rel.EndedAt
	}
	days := int(end.Sub(rel.StartedAt).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return strconv.Itoa(days) + " days"
}

// Eligible lists the counterparties userID may still review.
func (s *Service) Eligible(ctx context.Context, userID string) ([]domain.EligibleReviewee, error) {
	if _, err := s.worker(ctx, userID); err != nil {
		return nil, err
	}
	candidates, err := s.relationships.Counterparties(ctx, userID, s.cutoff())
	if err != nil {
		return nil, err
	}
	written, err := s.repo.ListBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	done := make(map[string]struct{}, len(written))
	for _, r := range written {
		done[r.RevieweeID+"|"+deref(r.ScheduleID)] = struct{}{}
	}
	result := make([]domain.EligibleReviewee, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := done[c.WorkerID+"|"+c.ScheduleID]; ok {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (s *Service) ReviewsFor(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.repo.ListFor(ctx, userID)
}

func (s *Service) ReviewsBy(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.repo.ListBy(ctx, userID)
}

func (s *Service) Rating(ctx context.Context, userID string) (*domain.Rating, error) {
	avg, count, err := s.repo.AverageRating(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.Rating{WorkerID: userID, Average: math.Round(avg*10) / 10, Count: count}, nil
}

// Certificates accepts a worker id or a ledger public key.
func (s *Service) Certificates(ctx context.Context, identifier string) ([]domain.Certificate, error) {
	key := identifier
	if !validate.IsPublicKey(identifier) {
		w, err := s.worker(ctx, strings.ToUpper(identifier))
		if err != nil {
			return nil, err
		}
		key = w.PublicKey
	}
	return s.minter.ReviewCertificates(ctx, key)
}

// Invite texts reviewerID a signed link to review the other party of scheduleID.
func (s *Service) Invite(ctx context.Context, scheduleID, reviewerID string) (*domain.Invitation, error) {
	schedule, err := s.relationships.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, domain.NewNotFoundError("schedule", scheduleID)
	}
	if reviewerID != schedule.EmployerID && reviewerID != schedule.WorkerID {
		return nil, fmt.Errorf("%w: %s is not a party of %s", domain.ErrNotEligible, reviewerID, scheduleID)
	}
	reviewer, err := s.worker(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(scheduleID, reviewerID)
	if errors.Is(err, auth.ErrNoSecret) {
		return nil, fmt.Errorf("%w: review invitations", domain.ErrNotConfigured)
	}
	if err != nil {
		return nil, err
	}

	inv := &domain.Invitation{
		ScheduleID: scheduleID,
		ReviewerID: reviewerID,
		Token:      token,
		Link:       s.cfg.InviteBaseURL + "?token=" + token,
		ExpiresAt:  expiresAt,
	}
	s.notifier.Notify(reviewer.Phone, "How did it go? Leave a review for "+scheduleID+": "+inv.Link)
	return inv, nil
}

func (s *Service) VerifyInvite(_ context.Context, token string) (*domain.Invitation, error) {
	claims, err := s.tokens.Parse(token)
	if errors.Is(err, auth.ErrNoSecret) {
		return nil, fmt.Errorf("%w: review invitations", domain.ErrNotConfigured)
	}
	if err != nil {
		return nil, domain.NewValidationError("token", "is invalid or expired")
	}
	return &domain.Invitation{
		ScheduleID: claims.ScheduleID,
		ReviewerID: claims.ReviewerID,
		ExpiresAt:  time.Unix(claims.ExpiresAt, 0).UTC(),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
