package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"verdant-agenda/internal/middleware"
	taskHTTP "verdant-agenda/internal/task/delivery/http"
	taskRepo "verdant-agenda/internal/task/repository/firestore"
	taskUC "verdant-agenda/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.firestoreClient, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	mw, err := middleware.New(srv.l, srv.authCfg, srv.rlCfg)
	if err != nil {
		return err
	}

	repo := taskRepo.New(srv.firestoreClient, srv.l)
	uc := taskUC.New(srv.l, repo, srv.llmManager, srv.bounds, srv.temperature, srv.maxTokens)
	h := taskHTTP.New(srv.l, uc)

	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
