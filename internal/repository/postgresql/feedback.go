package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/feedback"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/database"
)

type feedbackRepository struct {
	db *database.DB
}

// NewFeedbackRepository creates a new instance of feedback.FeedbackRepository.
func NewFeedbackRepository(db *database.DB) feedback.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create implements feedback.FeedbackRepository.
func (r *feedbackRepository) Create(ctx context.Context, request *feedback.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO feedback_requests (requester_id, peer_id, topic, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.RequesterID,
		request.PeerID,
		request.Topic,
		request.Message,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create feedback request: %w", err)
	}

	return nil
}

// GetByID implements feedback.FeedbackRepository.
func (r *feedbackRepository) GetByID(ctx context.Context, id string) (*feedback.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT f.id, f.requester_id, f.peer_id, f.topic, f.message, f.status,
			   f.response_text, f.responded_at, f.created_at, f.updated_at,
			   req.full_name AS requester_name,
			   peer.full_name AS peer_name
		FROM feedback_requests f
		LEFT JOIN employees req ON req.id = f.requester_id
		LEFT JOIN employees peer ON peer.id = f.peer_id
		WHERE f.id = $1
	`

	var request feedback.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.RequesterID, &request.PeerID, &request.Topic, &request.Message, &request.Status,
		&request.ResponseText, &request.RespondedAt, &request.CreatedAt, &request.UpdatedAt,
		&request.RequesterName, &request.PeerName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, feedback.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get feedback request by ID: %w", err)
	}

	return &request, nil
}

// Respond implements feedback.FeedbackRepository. The WHERE clause pins both
// the addressed peer and the pending status, so a second answer or an answer
// from the wrong employee matches no row.
func (r *feedbackRepository) Respond(ctx context.Context, id, peerID, responseText string, respondedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE feedback_requests
		SET status = $1,
			response_text = $2,
			responded_at = $3,
			updated_at = NOW()
		WHERE id = $4
		  AND peer_id = $5
		  AND status = $6
	`

	commandTag, err := q.Exec(ctx, query,
		feedback.StatusCompleted,
		responseText,
		respondedAt,
		id,
		peerID,
		feedback.StatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to respond to feedback request: %w", err)
	}

	return commandTag.RowsAffected() > 0, nil
}

// ListSent implements feedback.FeedbackRepository.
func (r *feedbackRepository) ListSent(ctx context.Context, requesterID string, filter *feedback.RequestFilter) ([]feedback.Request, int64, error) {
	return r.list(ctx, "f.requester_id = $1", requesterID, filter)
}

// ListReceived implements feedback.FeedbackRepository.
func (r *feedbackRepository) ListReceived(ctx context.Context, peerID string, filter *feedback.RequestFilter) ([]feedback.Request, int64, error) {
	return r.list(ctx, "f.peer_id = $1", peerID, filter)
}

func (r *feedbackRepository) list(ctx context.Context, ownerWhere string, ownerID string, filter *feedback.RequestFilter) ([]feedback.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := ownerWhere
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND f.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM feedback_requests f WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback requests: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT f.id, f.requester_id, f.peer_id, f.topic, f.message, f.status,
			   f.response_text, f.responded_at, f.created_at, f.updated_at,
			   req.full_name AS requester_name,
			   peer.full_name AS peer_name
		FROM feedback_requests f
		LEFT JOIN employees req ON req.id = f.requester_id
		LEFT JOIN employees peer ON peer.id = f.peer_id
		WHERE %s
		ORDER BY f.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query feedback requests: %w", err)
	}
	defer rows.Close()

	var requests []feedback.Request
	for rows.Next() {
		var request feedback.Request
		err := rows.Scan(
			&request.ID, &request.RequesterID, &request.PeerID, &request.Topic, &request.Message, &request.Status,
			&request.ResponseText, &request.RespondedAt, &request.CreatedAt, &request.UpdatedAt,
			&request.RequesterName, &request.PeerName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan feedback request: %w", err)
		}
		requests = append(requests, request)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}
