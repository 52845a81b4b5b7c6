package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/thomashuynhqn/Survey-API/app"
	"github.com/thomashuynhqn/Survey-API/httpx"
	"github.com/thomashuynhqn/Survey-API/model"
)

const saveAnswersFailed = "Failed to save answers. Please try again."

type saveAnswersRequest struct {
	Answers json.RawMessage `json:"answers"`
}

// SaveAnswers applies a batch of answer submissions as idempotent upserts
// keyed by (question_id, question_name), all inside one transaction. A
// later batch for the same key overwrites the stored value and refreshes
// its timestamp.
func SaveAnswers(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := saveAnswersRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.BadRequest(w, r, "request.parse_body", "Invalid payload. 'answers' must be an array.")
			return
		}

		var answers []model.AnswerSubmission
		if json.Unmarshal(req.Answers, &answers) != nil || answers == nil {
			httpx.BadRequest(w, r, "request.parse_answers", "Invalid payload. 'answers' must be an array.")
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.InternalError(w, r, "db.save_answers.begin_tx", err, saveAnswersFailed)
			return
		}
		defer tx.Rollback()

		stmt, err := tx.PrepareContext(r.Context(), `
			INSERT INTO answer (question_id, question_name, value, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (question_id, question_name)
			DO UPDATE SET value = excluded.value, created_at = excluded.created_at`)
		if err != nil {
			httpx.InternalError(w, r, "db.save_answers.prepare", err, saveAnswersFailed)
			return
		}
		defer stmt.Close()

		for _, answer := range answers {
			value, err := model.EncodeValue(answer.Value)
			if err != nil {
				httpx.InternalError(w, r, "db.save_answers.encode_value", err, saveAnswersFailed)
				return
			}

			_, err = stmt.ExecContext(r.Context(), answer.QuestionID, answer.QuestionName, value, time.Now())
			if err != nil {
				httpx.InternalError(w, r, "db.save_answers.upsert", err, saveAnswersFailed)
				return
			}
		}

		err = tx.Commit()
		if err != nil {
			httpx.InternalError(w, r, "db.save_answers.commit", err, saveAnswersFailed)
			return
		}

		httpx.OK(w, r, model.SaveAnswersResult{
			Message: "Answers saved successfully.",
			Count:   len(answers),
		})
	}
}
