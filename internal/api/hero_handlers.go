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

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/startrack-app/startrack/internal/heroes"
	"github.com/startrack-app/startrack/pkg/logger"
)

type heroHandlers struct {
	repo *heroes.Repository
}

// list serves the hero catalog. ?refresh=true forces a network fetch. The
// only hard failure in the whole API surface lives here: no network and no
// usable cache.
func (h *heroHandlers) list(c *gin.Context) {
	ctx := c.Request.Context()

	forceRefresh, _ := strconv.ParseBool(c.Query("refresh"))
	result, err := h.repo.Fetch(ctx, forceRefresh)
	if err != nil {
		logger.Logger(ctx).WithError(err).Error("hero catalog unavailable")
		c.JSON(http.StatusBadGateway, gin.H{"error": "hero catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"heroes":    result.Heroes,
		"fromCache": result.FromCache,
	})
}
