package app

import (
	"context"
	"fmt"
	"log/slog"

	"lifehub/internal/cache/redis"
	"lifehub/internal/config"
	"lifehub/internal/dbs/postgres"
	"lifehub/internal/lifecycle"
	countsrepo "lifehub/internal/repositories/cache/counts"
	sessionrepo "lifehub/internal/repositories/cache/session"
	blogrepo "lifehub/internal/repositories/db/blog"
	filerepo "lifehub/internal/repositories/db/file"
	noterepo "lifehub/internal/repositories/db/note"
	todorepo "lifehub/internal/repositories/db/todo"
	userrepo "lifehub/internal/repositories/db/user"
	blobrepo "lifehub/internal/repositories/storage/blob"
	authservice "lifehub/internal/services/auth"
	blogservice "lifehub/internal/services/blog"
	fileservice "lifehub/internal/services/file"
	noteservice "lifehub/internal/services/note"
	todoservice "lifehub/internal/services/todo"
	userservice "lifehub/internal/services/user"
)

type App struct {
	AuthService AuthService
	NoteService NoteService
	TodoService TodoService
	FileService FileService
	BlogService BlogService
}

func NewApp(
	ctx context.Context,
	log *slog.Logger,
	dbCfg config.DB,
	cacheCfg config.Cache,
	blobCfg config.BlobStorage,
	authCfg config.Auth,
) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     dbCfg.Addr,
		Port:     dbCfg.Port,
		User:     dbCfg.User,
		Password: dbCfg.Password,
		DB:       dbCfg.DB})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{Addr: cacheCfg.Addr, Password: cacheCfg.Password, DB: cacheCfg.DB})
	if err != nil {
		log.Error("failed connect to cache", "err", err)
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	blobStorage, err := blobrepo.NewRepository(blobCfg.Path)
	if err != nil {
		log.Error("failed to init blob storage", "err", err)
		return nil, fmt.Errorf("failed to init blob storage: %w", err)
	}

	lifecycleManager := lifecycle.New(log, blobStorage, lifecycle.Config{
		FilesNamespace:    blobCfg.FilesDir,
		ImagesNamespace:   blobCfg.BlogImagesDir,
		MaxFileSize:       blobCfg.MaxFileSize,
		MaxImageSize:      blobCfg.MaxImageSize,
		MaxImages:         blobCfg.MaxBlogImages,
		AllowedImageTypes: []string{"image/png", "image/jpg", "image/jpeg", "image/gif"},
	})

	sessionCacheRepo := sessionrepo.New(cache, cacheCfg.SessionTTL)

	countsCacheRepo := countsrepo.New(cache, cacheCfg.CountsTTL)

	userRepo := userrepo.NewRepository(db)

	userService := userservice.New(log, userRepo, userRepo)

	authService := authservice.New(log, userService, userService, sessionCacheRepo, authCfg.JWTSecret, authCfg.TokenTTL)

	noteService := noteservice.New(log, noterepo.NewRepository(db), countsCacheRepo)

	todoService := todoservice.New(log, todorepo.NewRepository(db), countsCacheRepo)

	fileService := fileservice.New(log, filerepo.NewRepository(db), lifecycleManager, countsCacheRepo)

	blogService := blogservice.New(log, blogrepo.NewRepository(db), lifecycleManager, countsCacheRepo)

	return &App{
		AuthService: authService,
		NoteService: noteService,
		TodoService: todoService,
		FileService: fileService,
		BlogService: blogService,
	}, nil
}
