/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package api exposes the data layer over HTTP. It plays the role of the
// out-of-scope presentation layer: a thin caller of the hero repository and
// the favorites/teams services, plus the caller-side biometric gating
// policy for team mutations.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/startrack-app/startrack/internal/favorites"
	"github.com/startrack-app/startrack/internal/heroes"
	"github.com/startrack-app/startrack/internal/teams"
	"github.com/startrack-app/startrack/pkg/auth/biometric"
	"github.com/startrack-app/startrack/pkg/logger"
)

const requestIdHeader = "X-Request-Id"

// Dependencies carries everything the handlers need.
type Dependencies struct {
	Heroes    *heroes.Repository
	Favorites *favorites.Service
	Teams     *teams.Service
	Verifier  biometric.Verifier
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(deps Dependencies) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestIdMiddleware())

	hh := &heroHandlers{repo: deps.Heroes}
	fh := &favoriteHandlers{svc: deps.Favorites}
	th := &teamHandlers{svc: deps.Teams, verifier: deps.Verifier}

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/heroes", hh.list)

		v1.GET("/favorites", fh.state)
		v1.POST("/favorites", fh.add)
		v1.GET("/favorites/:heroID", fh.isFavorite)
		v1.DELETE("/favorites/:heroID", fh.remove)

		v1.GET("/teams", th.list)
		v1.POST("/teams", th.create)
		v1.GET("/teams/:teamID", th.get)
		v1.PATCH("/teams/:teamID", th.rename)
		v1.DELETE("/teams/:teamID", th.remove)
		v1.PUT("/teams/:teamID/members/:heroID", th.addMember)
		v1.DELETE("/teams/:teamID/members/:heroID", th.removeMember)
	}

	return engine
}

// requestIdMiddleware tags every request with a correlation id, honoring a
// caller-provided X-Request-Id.
func requestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(requestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		ctx := logger.WithRequestId(c.Request.Context(), requestId)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIdHeader, requestId)
		c.Next()
	}
}
