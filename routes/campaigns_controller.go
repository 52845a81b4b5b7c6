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

func ListCampaigns(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, name, description, created_at
			FROM campaign`)
		if err != nil {
			httpx.InternalError(w, r, "db.get_campaigns", err, "")
			return
		}
		defer rows.Close()

		campaigns := []model.Campaign{}
		for rows.Next() {
			c := model.Campaign{}
			err = rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
			if err != nil {
				httpx.InternalError(w, r, "db.get_campaigns.scan", err, "")
				return
			}

			campaigns = append(campaigns, c)
		}

		httpx.OK(w, r, campaigns)
	}
}

func GetCampaignById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.BadRequest(w, r, "request.get_url_param.id", "Missing ID parameter")
			return
		}

		c := model.Campaign{}
		err = app.QueryRowContext(r.Context(), `
			SELECT id, name, description, created_at
			FROM campaign
			WHERE id = ?`,
			campaignId,
		).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			httpx.NotFound(w, r, "db.get_campaign", "No data found",
				fmt.Sprintf("No campaign found with ID %d", campaignId))
			return
		}
		if err != nil {
			httpx.InternalError(w, r, "db.get_campaign", err, "")
			return
		}

		httpx.OK(w, r, c)
	}
}
