package routes

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/thomashuynhqn/Survey-API/app"
	"github.com/thomashuynhqn/Survey-API/httpx"
	"github.com/thomashuynhqn/Survey-API/model"
)

// ListQuestions reads the questions-to-answers left join and folds it into
// one object per question, answers nested underneath.
func ListQuestions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT
				q.id, q.name, q.title, q.is_required, q.choices, q.visible_if,
				q.other_text, q.group_id, q.has_other, q.question_type_id,
				qt.name, q.created_at,
				a.id, a.question_name, a.value, a.created_at
			FROM question q
			INNER JOIN question_type qt ON (q.question_type_id = qt.id)
			LEFT OUTER JOIN answer a ON (q.id = a.question_id)
			ORDER BY q.id ASC`)
		if err != nil {
			httpx.InternalError(w, r, "db.get_questions", err, "")
			return
		}
		defer rows.Close()

		joined := []model.QuestionAnswerRow{}
		for rows.Next() {
			row := model.QuestionAnswerRow{}
			err = rows.Scan(
				&row.ID, &row.Name, &row.Title, &row.IsRequired, &row.Choices,
				&row.VisibleIf, &row.OtherText, &row.GroupID, &row.HasOther,
				&row.QuestionTypeID, &row.Type, &row.CreatedAt,
				&row.AnswerID, &row.AnswerName, &row.AnswerValue, &row.AnswerCreatedAt,
			)
			if err != nil {
				httpx.InternalError(w, r, "db.get_questions.scan", err, "")
				return
			}

			joined = append(joined, row)
		}

		httpx.OK(w, r, model.AssembleQuestions(joined))
	}
}

func GetQuestionById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.BadRequest(w, r, "request.get_url_param.id", "Missing ID parameter")
			return
		}

		q := model.QuestionInfo{}
		var isRequired, hasOther int64
		err = app.QueryRowContext(r.Context(), `
			SELECT
				q.id, q.name, q.title, q.is_required, q.choices, q.visible_if,
				q.other_text, q.group_id, q.has_other, q.question_type_id,
				qt.name, q.created_at
			FROM question q
			INNER JOIN question_type qt ON (q.question_type_id = qt.id)
			WHERE q.id = ?`,
			questionId,
		).Scan(
			&q.ID, &q.Name, &q.Title, &isRequired, &q.Choices, &q.VisibleIf,
			&q.OtherText, &q.GroupID, &hasOther, &q.QuestionTypeID,
			&q.Type, &q.CreatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			httpx.NotFound(w, r, "db.get_question", "No data found",
				fmt.Sprintf("No question found with ID %d", questionId))
			return
		}
		if err != nil {
			httpx.InternalError(w, r, "db.get_question", err, "")
			return
		}
		q.IsRequired = isRequired != 0
		q.HasOther = hasOther != 0

		httpx.OK(w, r, q)
	}
}
