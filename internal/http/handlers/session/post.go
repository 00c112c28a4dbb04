package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

func Login(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, auth Authenticator) {
	op := pkg + "Login"

	log = log.With(slog.String("op", op))

	var req dto.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrValidation.Error())
		return
	}
	defer r.Body.Close()

	token, logged, err := auth.Login(ctx, req.Login, req.Password)
	if err != nil {
		log.Warn("failed to login user", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	response := dto.LoginResponse{
		Token: token,
		ID:    logged.ID,
		Login: logged.Login,
		Name:  logged.Name,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
