package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lifehub/internal/config"
	"lifehub/internal/http/handlers/blogs"
	"lifehub/internal/http/handlers/files"
	"lifehub/internal/http/handlers/notes"
	"lifehub/internal/http/handlers/session"
	"lifehub/internal/http/handlers/todos"
	"lifehub/internal/http/handlers/user"
	"lifehub/internal/http/middleware"
	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"

	"github.com/gorilla/mux"
)

func StartServer(
	ctx context.Context,
	cfg *config.HTTPServer,
	log *slog.Logger,
	authService AuthService,
	noteService NoteService,
	todoService TodoService,
	fileService FileService,
	blogService BlogService,
) error {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))

	setupRoutes(r, log, authService, noteService, todoService, fileService, blogService)

	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      r,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupRoutes(
	r *mux.Router,
	log *slog.Logger,
	auth AuthService,
	ns NoteService,
	ts TodoService,
	fs FileService,
	bs BlogService,
) {
	// POST register
	r.HandleFunc("/api/users/register", func(w http.ResponseWriter, r *http.Request) {
		user.Register(r.Context(), log, w, r, auth)
	}).Methods(http.MethodPost)

	// POST login
	r.HandleFunc("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		session.Login(r.Context(), log, w, r, auth)
	}).Methods(http.MethodPost)

	// POST logout
	r.HandleFunc("/api/users/logout", func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		session.Logout(r.Context(), log, w, r, token, auth)
	}).Methods(http.MethodPost)

	// GET public blog feed
	r.HandleFunc("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		blogs.ListPublic(r.Context(), log, w, r, bs)
	}).Methods(http.MethodGet)

	// GET public blog image
	r.HandleFunc("/api/blogs/{id}/images/{position}", func(w http.ResponseWriter, r *http.Request) {
		blogs.Image(r.Context(), log, w, r, mux.Vars(r)["id"], mux.Vars(r)["position"], bs)
	}).Methods(http.MethodGet)

	protected := r.NewRoute().Subrouter()

	protected.Use(middleware.Auth(log, auth))

	// notes
	protected.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		notes.List(r.Context(), log, w, r, ns)
	}).Methods(http.MethodGet)

	protected.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		notes.Create(r.Context(), log, w, r, ns)
	}).Methods(http.MethodPost)

	protected.HandleFunc("/api/notes/count", func(w http.ResponseWriter, r *http.Request) {
		notes.Count(r.Context(), log, w, r, ns)
	}).Methods(http.MethodGet)

	protected.HandleFunc("/api/notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		notes.Update(r.Context(), log, w, r, mux.Vars(r)["id"], ns)
	}).Methods(http.MethodPut)

	protected.HandleFunc("/api/notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		notes.Delete(r.Context(), log, w, r, mux.Vars(r)["id"], ns)
	}).Methods(http.MethodDelete)

	// todos
	protected.HandleFunc("/api/todos", func(w http.ResponseWriter, r *http.Request) {
		todos.List(r.Context(), log, w, r, ts)
	}).Methods(http.MethodGet)

	protected.HandleFunc("/api/todos", func(w http.ResponseWriter, r *http.Request) {
		todos.Create(r.Context(), log, w, r, ts)
	}).Methods(http.MethodPost)

	protected.HandleFunc("/api/todos/count", func(w http.ResponseWriter, r *http.Request) {
		todos.Count(r.Context(), log, w, r, ts)
	}).Methods(http.MethodGet)

	protected.HandleFunc("/api/todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		todos.SetCompleted(r.Context(), log, w, r, mux.Vars(r)["id"], ts)
	}).Methods(http.MethodPut)

	protected.HandleFunc("/api/todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		todos.Delete(r.Context(), log, w, r, mux.Vars(r)["id"], ts)
	}).Methods(http.MethodDelete)

	// files
	protected.HandleFunc("/api/files", func(w http.ResponseWriter, r *http.Request) {
		files.List(r.Context(), log, w, r, fs)
	}).Methods(http.MethodGet)

	protected.HandleFunc("/api/files", func(w http.ResponseWriter, r *http.Request) {
		files.Upload(r.Context(), log, w, r, fs)
	}).Methods(http.MethodPost)

	protected.HandleFunc("/api/files/count", func(w http.ResponseWriter, r *http.Request) {
		files.Count(r.Context(), log, w, r, fs)
	}).Methods(http.MethodGet)

	protected.HandleFunc("/api/files/{id}/download", func(w http.ResponseWriter, r *http.Request) {
		files.Download(r.Context(), log, w, r, mux.Vars(r)["id"], fs)
	}).Methods(http.MethodGet)

	protected.HandleFunc("/api/files/{id}", func(w http.ResponseWriter, r *http.Request) {
		files.Delete(r.Context(), log, w, r, mux.Vars(r)["id"], fs)
	}).Methods(http.MethodDelete)

	// blogs
	protected.HandleFunc("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		blogs.Create(r.Context(), log, w, r, bs)
	}).Methods(http.MethodPost)

	protected.HandleFunc("/api/blogs/my-blogs", func(w http.ResponseWriter, r *http.Request) {
		blogs.ListOwn(r.Context(), log, w, r, bs)
	}).Methods(http.MethodGet)

	protected.HandleFunc("/api/blogs/count", func(w http.ResponseWriter, r *http.Request) {
		blogs.Count(r.Context(), log, w, r, bs)
	}).Methods(http.MethodGet)

	protected.HandleFunc("/api/blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		blogs.GetByID(r.Context(), log, w, r, mux.Vars(r)["id"], bs)
	}).Methods(http.MethodGet)

	protected.HandleFunc("/api/blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		blogs.Update(r.Context(), log, w, r, mux.Vars(r)["id"], bs)
	}).Methods(http.MethodPut)

	protected.HandleFunc("/api/blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		blogs.Delete(r.Context(), log, w, r, mux.Vars(r)["id"], bs)
	}).Methods(http.MethodDelete)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})
}
