package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizbank/trivia-api/internal/question"
)

// QuestionRepository is the Postgres-backed question store.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// List returns every question, id-ascending.
func (r *QuestionRepository) List(ctx context.Context) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// ListByCategory returns every question tagged with categoryID, id-ascending.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE category = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// Get fetches a single question by id.
func (r *QuestionRepository) Get(ctx context.Context, id int64) (question.Question, error) {
	var q question.Question
	err := r.pool.QueryRow(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return question.Question{}, question.ErrNotFound
		}
		return question.Question{}, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

// Insert persists a new question and returns it with its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, params question.CreateParams) (question.Question, error) {
	var q question.Question
	err := r.pool.QueryRow(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id, question, answer, category, difficulty
	`, params.Question, params.Answer, params.Category, params.Difficulty).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		return question.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

// Delete removes a question by id.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return question.ErrNotFound
	}
	return nil
}

func scanQuestions(rows pgx.Rows) ([]question.Question, error) {
	var questions []question.Question
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}
