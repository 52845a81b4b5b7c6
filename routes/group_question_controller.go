package routes

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/thomashuynhqn/Survey-API/app"
	"github.com/thomashuynhqn/Survey-API/httpx"
	"github.com/thomashuynhqn/Survey-API/model"
)

func ListGroupQuestions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, name, campaign_id, created_at
			FROM group_question`)
		if err != nil {
			httpx.InternalError(w, r, "db.get_group_questions", err, "")
			return
		}
		defer rows.Close()

		groups := []model.GroupQuestionSummary{}
		for rows.Next() {
			g := model.GroupQuestionSummary{}
			err = rows.Scan(&g.ID, &g.Name, &g.CampaignID, &g.CreatedAt)
			if err != nil {
				httpx.InternalError(w, r, "db.get_group_questions.scan", err, "")
				return
			}

			groups = append(groups, g)
		}

		httpx.OK(w, r, groups)
	}
}

func GetGroupQuestionById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.BadRequest(w, r, "request.get_url_param.id", "Missing ID parameter")
			return
		}

		g := model.GroupQuestion{}
		err = app.QueryRowContext(r.Context(), `
			SELECT id, name, campaign_id, survey_json, data, created_at
			FROM group_question
			WHERE id = ?`,
			groupId,
		).Scan(&g.ID, &g.Name, &g.CampaignID, &g.SurveyJSON, &g.Data, &g.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			httpx.NotFound(w, r, "db.get_group_question",
				fmt.Sprintf("GroupQuestion with ID %d not found", groupId), "")
			return
		}
		if err != nil {
			httpx.InternalError(w, r, "db.get_group_question", err, "")
			return
		}

		httpx.OK(w, r, g)
	}
}

type groupQuestionRequest struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	CampaignID int64           `json:"campaignId"`
	SurveyJSON json.RawMessage `json:"surveyJson"`
	Data       json.RawMessage `json:"data"`
}

// SaveGroupQuestion creates a question group, or updates it when the body
// carries the id of an existing one. The survey definition and auxiliary
// payload are stored as opaque JSON text.
func SaveGroupQuestion(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := groupQuestionRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil || req.Name == "" || req.CampaignID == 0 || len(req.SurveyJSON) == 0 {
			httpx.BadRequest(w, r, "group_question.parse_body", "Missing required fields")
			return
		}

		response := map[string]any{
			"name":       req.Name,
			"campaignId": req.CampaignID,
			"surveyJson": req.SurveyJSON,
			"data":       req.Data,
		}

		if req.ID != 0 {
			var exists bool
			err = app.QueryRowContext(r.Context(), `
				SELECT 1 FROM group_question WHERE id = ?`,
				req.ID,
			).Scan(&exists)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				httpx.InternalError(w, r, "db.get_group_question", err, "")
				return
			}

			if exists {
				_, err = app.ExecContext(r.Context(), `
					UPDATE group_question
					SET name = ?, campaign_id = ?, survey_json = ?, data = ?
					WHERE id = ?`,
					req.Name, req.CampaignID, string(req.SurveyJSON), rawOrNull(req.Data), req.ID,
				)
				if err != nil {
					httpx.InternalError(w, r, "db.update_group_question", err, "")
					return
				}

				response["id"] = req.ID
				response["message"] = "GroupQuestion updated successfully"
				httpx.OK(w, r, response)
				return
			}
		}

		var groupId int64
		err = app.QueryRowContext(r.Context(), `
			INSERT INTO group_question (name, campaign_id, survey_json, data, created_at)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id`,
			req.Name, req.CampaignID, string(req.SurveyJSON), rawOrNull(req.Data), time.Now(),
		).Scan(&groupId)
		if err != nil {
			httpx.InternalError(w, r, "db.insert_group_question", err, "")
			return
		}

		response["id"] = groupId
		response["message"] = "GroupQuestion created successfully"
		httpx.OK(w, r, response)
	}
}

func rawOrNull(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
