package storage

import (
	"context"
	"fmt"

	"vidquiz/ent"
	"vidquiz/ent/quizquestion"
)

// questionRepo implements QuestionRepo backed by ent.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) SaveBatch(ctx context.Context, batch Batch) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, row := range batch.Rows {
		create := tx.QuizQuestion.Create().
			SetQuestionID(row.QuestionID).
			SetCourseID(batch.CourseID).
			SetVideoURL(batch.VideoURL).
			SetTimestamp(row.Timestamp).
			SetQuestion(row.Question).
			SetType(row.Type).
			SetCorrectAnswer(row.CorrectAnswer).
			SetExplanation(row.Explanation).
			SetHasVisualAsset(row.HasVisualAsset)
		if row.Options != nil {
			create.SetOptions(*row.Options)
		}
		if row.Metadata != nil {
			create.SetMetadata(*row.Metadata)
		}

		q, err := create.Save(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("save question %s: %w", row.QuestionID, err))
		}

		for _, b := range row.Boxes {
			_, err := tx.QuestionBox.Create().
				SetQuestion(q).
				SetX(b.X).
				SetY(b.Y).
				SetWidth(b.Width).
				SetHeight(b.Height).
				SetLabel(b.Label).
				SetCorrect(b.Correct).
				SetConfidence(b.Confidence).
				Save(ctx)
			if err != nil {
				return rollback(tx, fmt.Errorf("save box for question %s: %w", row.QuestionID, err))
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

func (r *questionRepo) List(ctx context.Context, courseID string, limit int) ([]StoredQuestion, error) {
	q := r.client.QuizQuestion.Query().
		Order(ent.Asc(quizquestion.FieldTimestamp))
	if courseID != "" {
		q = q.Where(quizquestion.CourseID(courseID))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	out := make([]StoredQuestion, 0, len(rows))
	for _, row := range rows {
		out = append(out, StoredQuestion{
			QuestionID:     row.QuestionID,
			CourseID:       row.CourseID,
			VideoURL:       row.VideoURL,
			Timestamp:      row.Timestamp,
			Question:       row.Question,
			Type:           row.Type,
			CorrectAnswer:  row.CorrectAnswer,
			HasVisualAsset: row.HasVisualAsset,
			CreatedAt:      row.CreatedAt,
		})
	}
	return out, nil
}

func (r *questionRepo) Count(ctx context.Context, courseID string) (int, error) {
	q := r.client.QuizQuestion.Query()
	if courseID != "" {
		q = q.Where(quizquestion.CourseID(courseID))
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}
