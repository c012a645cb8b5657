package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hexfeed/reputation/internal/datasources"
	"github.com/hexfeed/reputation/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

var _ datasources.ReputationRepository = (*Repository)(nil)
var _ datasources.APITokenRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetUser(ctx context.Context, userID string) (domain.User, error) {
	sb := sqlbuilder.Select(
		"id", "name", "avatar",
		"reliability_score", "total_likes", "total_dislikes", "total_views",
	)
	sb.From("users")
	sb.Where(sb.Equal("id", userID))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var user domain.User
	var avatar sql.NullString
	if err := row.Scan(
		&user.ID, &user.Name, &avatar,
		&user.ReliabilityScore, &user.TotalLikes, &user.TotalDislikes, &user.TotalViews,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, datasources.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("scanning user: %w", err)
	}
	user.Avatar = avatar.String

	return user, nil
}

func (r *Repository) GetPost(ctx context.Context, postID string) (domain.Post, error) {
	sb := sqlbuilder.Select(
		"id", "user_id", "created_at",
		"view_count", "like_count", "dislike_count", "is_deleted",
	)
	sb.From("posts")
	sb.Where(sb.Equal("id", postID))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var post domain.Post
	if err := row.Scan(
		&post.ID, &post.UserID, &post.CreatedAt,
		&post.ViewCount, &post.LikeCount, &post.DislikeCount, &post.IsDeleted,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, datasources.ErrPostNotFound
		}
		return domain.Post{}, fmt.Errorf("scanning post: %w", err)
	}

	return post, nil
}

// ListAuthorPostStats returns scoring inputs for the author's non-deleted
// posts. Reaction counts come from the reaction rows; the denormalized post
// counters ride along for the aggregate totals.
func (r *Repository) ListAuthorPostStats(ctx context.Context, userID string) ([]domain.PostStats, error) {
	sb := sqlbuilder.Select(
		"p.id", "p.created_at", "p.view_count", "p.like_count", "p.dislike_count",
		"COALESCE(SUM(r.type = 'like'), 0) AS reaction_likes",
		"COALESCE(SUM(r.type = 'dislike'), 0) AS reaction_dislikes",
	)
	sb.From("posts p")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "post_reactions r", "r.post_id = p.id")
	sb.Where(sb.Equal("p.user_id", userID), "p.is_deleted = FALSE")
	sb.GroupBy("p.id", "p.created_at", "p.view_count", "p.like_count", "p.dislike_count")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running author post stats query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats := []domain.PostStats{}
	for rows.Next() {
		var s domain.PostStats
		if err := rows.Scan(
			&s.ID, &s.CreatedAt, &s.ViewCount, &s.LikeCount, &s.DislikeCount,
			&s.ReactionLikes, &s.ReactionDislikes,
		); err != nil {
			return nil, fmt.Errorf("scanning post stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating post stats rows: %w", err)
	}

	return stats, nil
}

func (r *Repository) UpdateUserScore(
	ctx context.Context,
	userID string,
	score float64,
	totalLikes, totalDislikes, totalViews int64,
) error {
	ub := sqlbuilder.Update("users")
	ub.Set(
		ub.Assign("reliability_score", score),
		ub.Assign("total_likes", totalLikes),
		ub.Assign("total_dislikes", totalDislikes),
		ub.Assign("total_views", totalViews),
	)
	ub.Where(ub.Equal("id", userID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating user score: %w", err)
	}

	return nil
}

// ApplyReaction resolves a reaction submission against the stored row and
// adjusts the post's counters, all inside one transaction. The counters are
// floored at zero.
func (r *Repository) ApplyReaction(
	ctx context.Context,
	userID, postID string,
	reactionType domain.ReactionType,
) (domain.ReactionTransition, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.ReactionTransition{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existingID, current, err := lockCurrentReaction(ctx, tx, userID, postID)
	if err != nil {
		return domain.ReactionTransition{}, err
	}

	transition := domain.ResolveReaction(current, reactionType)

	switch transition.Op {
	case domain.ReactionOpCreate:
		ib := sqlbuilder.InsertInto("post_reactions")
		ib.Cols("id", "user_id", "post_id", "type", "created_at")
		ib.Values(uuid.NewString(), userID, postID, string(reactionType), time.Now())
		query, args := ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return domain.ReactionTransition{}, fmt.Errorf("inserting reaction: %w", err)
		}

	case domain.ReactionOpDelete:
		db := sqlbuilder.DeleteFrom("post_reactions")
		db.Where(db.Equal("id", existingID))
		query, args := db.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return domain.ReactionTransition{}, fmt.Errorf("deleting reaction: %w", err)
		}

	case domain.ReactionOpSwitch:
		ub := sqlbuilder.Update("post_reactions")
		ub.Set(ub.Assign("type", string(reactionType)))
		ub.Where(ub.Equal("id", existingID))
		query, args := ub.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return domain.ReactionTransition{}, fmt.Errorf("updating reaction type: %w", err)
		}
	}

	if err := adjustPostCounters(ctx, tx, postID, transition); err != nil {
		return domain.ReactionTransition{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.ReactionTransition{}, fmt.Errorf("committing transaction: %w", err)
	}

	return transition, nil
}

// lockCurrentReaction fetches and locks the user's reaction row on the post,
// if any. current is nil when no row exists.
func lockCurrentReaction(
	ctx context.Context, tx *sql.Tx, userID, postID string,
) (existingID string, current *domain.ReactionType, err error) {
	sb := sqlbuilder.Select("id", "type")
	sb.From("post_reactions")
	sb.Where(sb.Equal("user_id", userID), sb.Equal("post_id", postID))
	sb.SQL("FOR UPDATE")

	query, args := sb.Build()
	row := tx.QueryRowContext(ctx, query, args...)

	var reactionType string
	if err := row.Scan(&existingID, &reactionType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("fetching current reaction: %w", err)
	}

	rt := domain.ReactionType(reactionType)
	return existingID, &rt, nil
}

func adjustPostCounters(
	ctx context.Context, tx *sql.Tx, postID string, transition domain.ReactionTransition,
) error {
	ub := sqlbuilder.Update("posts")

	var assignments []string
	if transition.LikeDelta != 0 {
		assignments = append(assignments,
			"like_count = GREATEST(0, like_count + "+ub.Args.Add(transition.LikeDelta)+")")
	}
	if transition.DislikeDelta != 0 {
		assignments = append(assignments,
			"dislike_count = GREATEST(0, dislike_count + "+ub.Args.Add(transition.DislikeDelta)+")")
	}
	ub.Set(assignments...)
	ub.Where(ub.Equal("id", postID))

	query, args := ub.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("adjusting post counters: %w", err)
	}

	return nil
}

func (r *Repository) CountUserReactionsSince(
	ctx context.Context, userID string, since time.Time,
) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("post_reactions")
	sb.Where(sb.Equal("user_id", userID), sb.GreaterEqualThan("created_at", since))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting user reactions: %w", err)
	}
	return count, nil
}

func (r *Repository) CountPostReactionsSince(
	ctx context.Context, postID string, since time.Time,
) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("post_reactions")
	sb.Where(sb.Equal("post_id", postID), sb.GreaterEqualThan("created_at", since))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting post reactions: %w", err)
	}
	return count, nil
}

func (r *Repository) IncrementPostViews(ctx context.Context, postID string) error {
	ub := sqlbuilder.Update("posts")
	ub.Set("view_count = view_count + 1")
	ub.Where(ub.Equal("id", postID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("incrementing post views: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if affected == 0 {
		return datasources.ErrPostNotFound
	}

	return nil
}
