package user

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

func Register(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ur UserRegistrar) {
	op := pkg + "Register"

	log = log.With(slog.String("op", op))

	var req dto.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrValidation.Error())
		return
	}
	defer r.Body.Close()

	registered, err := ur.Register(ctx, req.Login, req.Name, req.Password)
	if err != nil {
		log.Warn("failed to register user", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	response := map[string]any{
		"id":    registered.ID,
		"login": registered.Login,
		"name":  registered.Name,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
