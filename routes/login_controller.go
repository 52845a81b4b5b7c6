package routes

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"

	"github.com/thomashuynhqn/Survey-API/app"
	"github.com/thomashuynhqn/Survey-API/httpx"
	"github.com/thomashuynhqn/Survey-API/model"
)

type googleLoginRequest struct {
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	GoogleID  string  `json:"googleId"`
	AvatarURL *string `json:"avatarUrl"`
}

// GoogleLogin trusts Google-issued identity claims, finds or creates the
// matching user and issues a bearer token.
func GoogleLogin(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := googleLoginRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil || req.Email == "" || req.Name == "" || req.GoogleID == "" {
			httpx.BadRequest(w, r, "login.google.parse_body", "Missing required fields")
			return
		}

		user := model.User{}
		err = app.QueryRowContext(r.Context(), `
			SELECT id, name, email, picture_url
			FROM user
			WHERE email = ?`,
			req.Email,
		).Scan(&user.ID, &user.Name, &user.Email, &user.AvatarURL)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			err = app.QueryRowContext(r.Context(), `
				INSERT INTO user (name, email, google_id, picture_url, created_at)
				VALUES (?, ?, ?, ?, ?)
				RETURNING id`,
				req.Name, req.Email, req.GoogleID, req.AvatarURL, time.Now(),
			).Scan(&user.ID)
			if err != nil {
				httpx.InternalError(w, r, "db.insert_user", err, "")
				return
			}
			user.Name = req.Name
			user.Email = req.Email
			user.AvatarURL = req.AvatarURL
		case err != nil:
			httpx.InternalError(w, r, "db.get_user", err, "")
			return
		}

		token, err := issueToken(app, user)
		if err != nil {
			httpx.InternalError(w, r, "login.google.sign_token", err, "")
			return
		}

		httpx.OK(w, r, model.LoginResult{
			User:    user,
			Token:   token,
			Message: "Login successful.",
		})
	}
}

type passwordLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordLogin verifies local credentials against the stored bcrypt hash
// and issues a bearer token.
func PasswordLogin(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := passwordLoginRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil || req.Email == "" || req.Password == "" {
			httpx.BadRequest(w, r, "login.parse_body", "Missing email or password")
			return
		}

		user := model.User{}
		var hash sql.NullString
		err = app.QueryRowContext(r.Context(), `
			SELECT id, name, email, password_hash, picture_url
			FROM user
			WHERE email = ?`,
			req.Email,
		).Scan(&user.ID, &user.Name, &user.Email, &hash, &user.AvatarURL)
		if errors.Is(err, sql.ErrNoRows) {
			httpx.NotFound(w, r, "login.get_user", "User not found", "")
			return
		}
		if err != nil {
			httpx.InternalError(w, r, "db.get_user", err, "")
			return
		}

		err = bcrypt.CompareHashAndPassword([]byte(hash.String), []byte(req.Password))
		if err != nil {
			httpx.Unauthorized(w, r, "login.password", "Invalid credentials")
			return
		}

		token, err := issueToken(app, user)
		if err != nil {
			httpx.InternalError(w, r, "login.sign_token", err, "")
			return
		}

		httpx.OK(w, r, model.LoginResult{
			User:    user,
			Token:   token,
			Message: "Login successful.",
		})
	}
}

func issueToken(app app.App, user model.User) (string, error) {
	_, token, err := app.TokenAuth.Encode(map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(app.TokenTTL).Unix(),
	})
	return token, err
}
