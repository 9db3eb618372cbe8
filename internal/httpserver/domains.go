package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	contentHTTP "creator-studio/internal/content/delivery/http"
	contentRepo "creator-studio/internal/content/repository"
	contentFile "creator-studio/internal/content/repository/file"
	contentUC "creator-studio/internal/content/usecase"
	goalHTTP "creator-studio/internal/goal/delivery/http"
	goalRepo "creator-studio/internal/goal/repository"
	goalFile "creator-studio/internal/goal/repository/file"
	goalUC "creator-studio/internal/goal/usecase"
	"creator-studio/internal/middleware"
	pillarHTTP "creator-studio/internal/pillar/delivery/http"
	pillarFile "creator-studio/internal/pillar/repository/file"
	pillarUC "creator-studio/internal/pillar/usecase"
	scheduleHTTP "creator-studio/internal/schedule/delivery/http"
	scheduleUC "creator-studio/internal/schedule/usecase"
	taskHTTP "creator-studio/internal/task/delivery/http"
	taskRepo "creator-studio/internal/task/repository"
	taskFile "creator-studio/internal/task/repository/file"
	taskUC "creator-studio/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern followed by every domain:
//  1. Create Repository:   repo := taskFile.New(ctx, srv.store, srv.l, srv.nc)
//  2. Create UseCase:      uc := taskUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := taskHTTP.New(srv.l, uc)
//  4. Register Routes:     taskHTTP.RegisterRoutes(v1, h, mw)
//
// The repository is returned because the schedule views read it too.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, v1 *gin.RouterGroup, mw middleware.Middleware) taskRepo.Repository {
	repo := taskFile.New(ctx, srv.store, srv.l, srv.nc)
	uc := taskUC.New(repo, srv.l)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(v1, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return repo
}

// setupContentDomain initializes the content board and registers its routes.
func (srv HTTPServer) setupContentDomain(ctx context.Context, v1 *gin.RouterGroup, mw middleware.Middleware) contentRepo.Repository {
	repo := contentFile.New(ctx, srv.store, srv.l, srv.nc)
	uc := contentUC.New(repo, srv.l)
	h := contentHTTP.New(srv.l, uc)
	contentHTTP.RegisterRoutes(v1, h, mw)

	srv.l.Infof(ctx, "Content domain registered")
	return repo
}

// setupGoalDomain initializes metric goals and registers their routes.
func (srv HTTPServer) setupGoalDomain(ctx context.Context, v1 *gin.RouterGroup, mw middleware.Middleware) goalRepo.Repository {
	repo := goalFile.New(ctx, srv.store, srv.l, srv.nc)
	uc := goalUC.New(repo, srv.l)
	h := goalHTTP.New(srv.l, uc)
	goalHTTP.RegisterRoutes(v1, h, mw)

	srv.l.Infof(ctx, "Goal domain registered")
	return repo
}

// setupPillarDomain registers pillar CRUD plus the channel-analysis
// suggestion endpoint. Pillar routes predate the v1 prefix and stay
// directly under /api for existing clients.
func (srv HTTPServer) setupPillarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := pillarFile.New(ctx, srv.store, srv.l, srv.nc)

	// A nil *youtube.Client must stay a nil interface so the use case
	// falls back to the starter library.
	var analyzer pillarUC.ChannelAnalyzer
	if srv.yt != nil {
		analyzer = srv.yt
	}

	uc := pillarUC.New(repo, analyzer, srv.l)
	h := pillarHTTP.New(srv.l, uc)
	pillarHTTP.RegisterRoutes(api, h, mw)

	if analyzer == nil {
		srv.l.Infof(ctx, "Pillar domain registered (no YouTube client, suggestions use the starter library)")
		return
	}
	srv.l.Infof(ctx, "Pillar domain registered")
}

// setupScheduleDomain registers the calendar, dashboard and
// notification views over the already-created repositories.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, v1 *gin.RouterGroup, mw middleware.Middleware,
	tasks taskRepo.Repository, content contentRepo.Repository, goals goalRepo.Repository) {
	uc := scheduleUC.New(tasks, content, goals, srv.loc, srv.l)
	h := scheduleHTTP.New(srv.l, uc, srv.parser, srv.nc)
	scheduleHTTP.RegisterRoutes(v1, h, mw)

	srv.l.Infof(ctx, "Schedule views registered")
}
